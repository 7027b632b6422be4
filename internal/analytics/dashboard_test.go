package analytics

import (
	"testing"
	"time"

	"github.com/sahyadri-sports/backoffice/internal/models"
)

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestDashboardStats_CancelledExcludedFromSales(t *testing.T) {
	orders := []models.Order{
		order("ORD-1", models.OrderDelivered, testNow, item("Ball", 1, 100)),
		order("ORD-2", models.OrderCancelled, testNow, item("Bat", 1, 50)),
	}

	stats := DashboardStats(orders, nil, testNow)
	if stats.TotalSales != 100 {
		t.Errorf("expected total sales 100, got %v", stats.TotalSales)
	}
	// Cancellation affects money, not order-count history.
	if stats.OrdersThisWeek != 2 {
		t.Errorf("expected 2 orders this week, got %d", stats.OrdersThisWeek)
	}
}

func TestDashboardStats_WeekWindow(t *testing.T) {
	orders := []models.Order{
		order("ORD-1", models.OrderPending, testNow.AddDate(0, 0, -7)),
		order("ORD-2", models.OrderPending, testNow.AddDate(0, 0, -8)),
		order("ORD-3", models.OrderPending, testNow.Add(-time.Hour)),
	}

	stats := DashboardStats(orders, nil, testNow)
	// The lower bound is inclusive: exactly seven days ago still counts.
	if stats.OrdersThisWeek != 2 {
		t.Errorf("expected 2 orders this week, got %d", stats.OrdersThisWeek)
	}
}

func TestDashboardStats_StockCounts(t *testing.T) {
	products := []models.Product{
		{Name: "A", Stock: 0},
		{Name: "B", Stock: 1},
		{Name: "C", Stock: 19},
		{Name: "D", Stock: 20},
		{Name: "E", Stock: 500},
	}

	stats := DashboardStats(nil, products, testNow)
	if stats.ProductsInStock != 2 {
		t.Errorf("expected 2 products in stock, got %d", stats.ProductsInStock)
	}
	if stats.LowStockItems != 2 {
		t.Errorf("expected 2 low stock items, got %d", stats.LowStockItems)
	}
}

func TestDashboardStats_EmptyInputs(t *testing.T) {
	stats := DashboardStats(nil, nil, testNow)
	if stats != (Stats{}) {
		t.Errorf("expected zeroed stats for empty inputs, got %+v", stats)
	}
}

func TestDailyChartSeries_FullWindow(t *testing.T) {
	// All activity on a single day must still produce one point per day.
	orders := []models.Order{
		order("ORD-1", models.OrderDelivered, testNow, item("Ball", 2, 10)),
		order("ORD-2", models.OrderDelivered, testNow, item("Bat", 1, 30)),
	}

	series := DailyChartSeries(orders, 90, testNow)
	if len(series) != 90 {
		t.Fatalf("expected 90 points, got %d", len(series))
	}
	for i := 1; i < len(series); i++ {
		if series[i-1].Date >= series[i].Date {
			t.Fatalf("series not ascending at %d: %s >= %s", i, series[i-1].Date, series[i].Date)
		}
	}
	last := series[len(series)-1]
	if last.Date != testNow.Format("2006-01-02") {
		t.Errorf("expected last point to be today, got %s", last.Date)
	}
	if last.Sales != 50 {
		t.Errorf("expected 50 sales today, got %d", last.Sales)
	}
	var rest int
	for _, p := range series[:len(series)-1] {
		rest += p.Sales
	}
	if rest != 0 {
		t.Errorf("expected zero sales outside today, got %d", rest)
	}
}

func TestDailyChartSeries_SkipsCancelledAndOutOfWindow(t *testing.T) {
	orders := []models.Order{
		order("ORD-1", models.OrderCancelled, testNow, item("Ball", 1, 100)),
		order("ORD-2", models.OrderDelivered, testNow.AddDate(0, 0, -30), item("Bat", 1, 40)),
	}

	series := DailyChartSeries(orders, 7, testNow)
	if len(series) != 7 {
		t.Fatalf("expected 7 points, got %d", len(series))
	}
	for _, p := range series {
		if p.Sales != 0 {
			t.Errorf("expected zero sales on %s, got %d", p.Date, p.Sales)
		}
	}
}

func TestDailyChartSeries_RoundsAtOutput(t *testing.T) {
	// Two items of 0.3 each accumulate to 0.6 and round to 1; rounding each
	// line separately would give 0.
	orders := []models.Order{
		order("ORD-1", models.OrderDelivered, testNow,
			item("Sticker", 1, 0.3), item("Sticker", 1, 0.3)),
	}

	series := DailyChartSeries(orders, 1, testNow)
	if len(series) != 1 {
		t.Fatalf("expected 1 point, got %d", len(series))
	}
	if series[0].Sales != 1 {
		t.Errorf("expected rounded sales 1, got %d", series[0].Sales)
	}
}
