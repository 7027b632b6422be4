package analytics

import (
	"sort"
	"time"

	"github.com/sahyadri-sports/backoffice/internal/models"
)

// ProductSales is one row of the top-products table.
type ProductSales struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Units   int     `json:"units"`
}

// DailySales is one calendar day of the sales report.
type DailySales struct {
	Date    string  `json:"date"`
	Weekday string  `json:"weekday"`
	Sales   float64 `json:"sales"`
	Orders  int     `json:"orders"`
}

type SalesReport struct {
	TotalRevenue  float64        `json:"total_revenue"`
	TotalOrders   int            `json:"total_orders"`
	AvgOrderValue float64        `json:"avg_order_value"`
	DailySales    []DailySales   `json:"daily_sales"`
	TopProducts   []ProductSales `json:"top_products"`
}

const (
	salesReportDays = 7
	topProductsMax  = 5
)

// BuildSalesReport aggregates revenue-eligible orders into the sales report:
// overall revenue and order counts, a zero-seeded trailing 7-day series, and
// the five products with the highest revenue. Ties between products keep
// first-encounter order.
func BuildSalesReport(orders []models.Order, now time.Time) SalesReport {
	report := SalesReport{
		DailySales:  make([]DailySales, 0, salesReportDays),
		TopProducts: []ProductSales{},
	}

	daily := make(map[string]*DailySales, salesReportDays)
	for i := salesReportDays - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		ds := DailySales{Date: d.Format(dateLayout), Weekday: d.Format("Mon")}
		report.DailySales = append(report.DailySales, ds)
		daily[ds.Date] = &report.DailySales[len(report.DailySales)-1]
	}

	perProduct := map[string]*ProductSales{}
	var productOrder []string

	for _, o := range RevenueEligible(orders) {
		report.TotalOrders++

		var orderTotal float64
		for _, it := range o.Items {
			lineTotal := float64(it.Quantity) * it.UnitPrice
			orderTotal += lineTotal
			report.TotalRevenue += lineTotal

			name := it.ProductName
			if name == "" {
				name = "Unknown Product"
			}
			ps, ok := perProduct[name]
			if !ok {
				ps = &ProductSales{Name: name}
				perProduct[name] = ps
				productOrder = append(productOrder, name)
			}
			ps.Revenue += lineTotal
			ps.Units += it.Quantity
		}

		day := o.CreatedAt.In(now.Location()).Format(dateLayout)
		if ds, ok := daily[day]; ok {
			ds.Sales += orderTotal
			ds.Orders++
		}
	}

	// Guard against division by zero when no eligible orders exist.
	if report.TotalOrders > 0 {
		report.AvgOrderValue = report.TotalRevenue / float64(report.TotalOrders)
	}

	ranked := make([]ProductSales, 0, len(productOrder))
	for _, name := range productOrder {
		ranked = append(ranked, *perProduct[name])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})
	if len(ranked) > topProductsMax {
		ranked = ranked[:topProductsMax]
	}
	report.TopProducts = ranked

	return report
}
