package analytics

import "github.com/sahyadri-sports/backoffice/internal/models"

// CategoryStock is the per-category breakdown row of the inventory report.
type CategoryStock struct {
	Category   string `json:"category"`
	InStock    int    `json:"in_stock"`
	LowStock   int    `json:"low_stock"`
	OutOfStock int    `json:"out_of_stock"`
	Total      int    `json:"total"`
}

// CategoryShare feeds the category distribution chart.
type CategoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// StockAlert is one row of the low-stock alert list. Threshold is a fixed
// display constant of 20 while inclusion requires stock < 10; the two cutoffs
// are intentionally different (the alert shows how far below the restock
// level the product has fallen).
type StockAlert struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold"`
	Category  string `json:"category"`
}

type InventoryReport struct {
	TotalSKUs            int             `json:"total_skus"`
	InStock              int             `json:"in_stock"`
	LowStock             int             `json:"low_stock"`
	OutOfStock           int             `json:"out_of_stock"`
	StockData            []CategoryStock `json:"stock_data"`
	CategoryDistribution []CategoryShare `json:"category_distribution"`
	LowStockAlerts       []StockAlert    `json:"low_stock_alerts"`
}

const (
	alertStockCutoff    = 10
	alertDisplayLimit   = 5
	uncategorizedBucket = "Uncategorized"
)

// BuildInventoryReport counts products into the three stock buckets, overall
// and per category. All counts use the stock status derivation, so the report
// and the per-product status can never disagree. Categories appear in
// first-encounter order; an empty category lands in "Uncategorized". The
// alert list holds the first five products with stock under 10, input order
// preserved.
func BuildInventoryReport(products []models.Product) InventoryReport {
	report := InventoryReport{
		TotalSKUs:            len(products),
		StockData:            []CategoryStock{},
		CategoryDistribution: []CategoryShare{},
		LowStockAlerts:       []StockAlert{},
	}

	categoryIdx := map[string]int{}

	for _, p := range products {
		cat := p.Category
		if cat == "" {
			cat = uncategorizedBucket
		}
		idx, ok := categoryIdx[cat]
		if !ok {
			idx = len(report.StockData)
			categoryIdx[cat] = idx
			report.StockData = append(report.StockData, CategoryStock{Category: cat})
		}
		cs := &report.StockData[idx]
		cs.Total++

		switch p.StockStatus() {
		case models.OutOfStock:
			report.OutOfStock++
			cs.OutOfStock++
		case models.LowStock:
			report.LowStock++
			cs.LowStock++
		default:
			report.InStock++
			cs.InStock++
		}

		if p.Stock < alertStockCutoff && len(report.LowStockAlerts) < alertDisplayLimit {
			report.LowStockAlerts = append(report.LowStockAlerts, StockAlert{
				ID:        p.ID,
				Name:      p.Name,
				Stock:     p.Stock,
				Threshold: models.LowStockThreshold,
				Category:  cat,
			})
		}
	}

	for _, cs := range report.StockData {
		report.CategoryDistribution = append(report.CategoryDistribution, CategoryShare{
			Name:  cs.Category,
			Value: cs.Total,
		})
	}

	return report
}
