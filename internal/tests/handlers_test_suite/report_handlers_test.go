package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/sahyadri-sports/backoffice/internal/analytics"
	api "github.com/sahyadri-sports/backoffice/internal/http"
	"github.com/sahyadri-sports/backoffice/internal/models"
)

func TestGetSalesReportHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	now := time.Now()
	c := seedCustomer("Ravi Kumar", "ravi@example.com")
	seedOrder(c.ID, models.OrderDelivered, now, "Cricket Bat", 2, 1500)
	seedOrder(c.ID, models.OrderShipped, now.AddDate(0, 0, -2), "Cricket Ball", 10, 300)
	seedOrder(c.ID, models.OrderCancelled, now, "Tennis Racket", 1, 9000)

	w := doJSON(r, http.MethodGet, "/reports/sales", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var report analytics.SalesReport
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if report.TotalRevenue != 6000 {
		t.Errorf("expected total revenue 6000, got %v", report.TotalRevenue)
	}
	if report.TotalOrders != 2 {
		t.Errorf("expected 2 eligible orders, got %d", report.TotalOrders)
	}
	if report.AvgOrderValue != 3000 {
		t.Errorf("expected avg order value 3000, got %v", report.AvgOrderValue)
	}

	if len(report.DailySales) != 7 {
		t.Fatalf("expected 7 daily entries, got %d", len(report.DailySales))
	}
	today := report.DailySales[6]
	if today.Date != now.Format("2006-01-02") {
		t.Errorf("expected last daily entry to be today, got %s", today.Date)
	}
	if today.Sales != 3000 || today.Orders != 1 {
		t.Errorf("expected today's sales 3000 from 1 order, got %v from %d", today.Sales, today.Orders)
	}

	// Both products made 3000, so the tie keeps first-encounter order.
	if len(report.TopProducts) != 2 {
		t.Fatalf("expected 2 top products, got %d", len(report.TopProducts))
	}
	if report.TopProducts[0].Name != "Cricket Bat" {
		t.Errorf("expected tie broken by encounter order, got %q first", report.TopProducts[0].Name)
	}
}

func TestGetSalesReportHandler_Empty(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/reports/sales", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var report analytics.SalesReport
	json.NewDecoder(w.Body).Decode(&report)

	if report.AvgOrderValue != 0 {
		t.Errorf("expected avg order value 0 with no orders, got %v", report.AvgOrderValue)
	}
	if len(report.DailySales) != 7 {
		t.Errorf("expected zero-seeded 7-day series, got %d entries", len(report.DailySales))
	}
	if len(report.TopProducts) != 0 {
		t.Errorf("expected no top products, got %d", len(report.TopProducts))
	}
}

func TestGetInventoryReportHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	productRepo.Create(models.Product{Name: "Cricket Bat", Category: "Cricket", Price: 1500, Stock: 50})
	productRepo.Create(models.Product{Name: "Cricket Ball", Category: "Cricket", Price: 300, Stock: 8})
	productRepo.Create(models.Product{Name: "Mystery Item", Price: 100, Stock: 0})

	w := doJSON(r, http.MethodGet, "/reports/inventory", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var report analytics.InventoryReport
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if report.TotalSKUs != 3 {
		t.Errorf("expected 3 SKUs, got %d", report.TotalSKUs)
	}
	if report.InStock != 1 || report.LowStock != 1 || report.OutOfStock != 1 {
		t.Errorf("unexpected bucket counts: %+v", report)
	}

	if len(report.StockData) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(report.StockData))
	}
	if report.StockData[0].Category != "Cricket" {
		t.Errorf("expected first-encounter category order, got %q first", report.StockData[0].Category)
	}
	if report.StockData[1].Category != "Uncategorized" {
		t.Errorf("expected empty category bucketed as Uncategorized, got %q", report.StockData[1].Category)
	}

	// Alerts require stock < 10, so the low-stock-but-8 ball and the
	// out-of-stock item both qualify; threshold is the fixed display value.
	if len(report.LowStockAlerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(report.LowStockAlerts))
	}
	if report.LowStockAlerts[0].Name != "Cricket Ball" {
		t.Errorf("expected alerts in input order, got %q first", report.LowStockAlerts[0].Name)
	}
	if report.LowStockAlerts[0].Threshold != 20 {
		t.Errorf("expected threshold 20, got %d", report.LowStockAlerts[0].Threshold)
	}

	if len(report.CategoryDistribution) != 2 {
		t.Fatalf("expected 2 distribution entries, got %d", len(report.CategoryDistribution))
	}
	if report.CategoryDistribution[0].Name != "Cricket" || report.CategoryDistribution[0].Value != 2 {
		t.Errorf("unexpected distribution: %+v", report.CategoryDistribution)
	}
}
