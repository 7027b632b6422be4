package analytics

import (
	"math"
	"time"

	"github.com/sahyadri-sports/backoffice/internal/models"
)

const dateLayout = "2006-01-02"

// Stats backs the KPI cards on the dashboard landing page.
type Stats struct {
	TotalSales      float64 `json:"total_sales"`
	OrdersThisWeek  int     `json:"orders_this_week"`
	ProductsInStock int     `json:"products_in_stock"`
	LowStockItems   int     `json:"low_stock_items"`
}

// DashboardStats computes the KPI cards. Total sales excludes Cancelled
// orders; the weekly order count does not. In-stock and low-stock counts both
// follow the stock status derivation, so "in stock" means stock >= 20 here
// exactly as it does on the inventory report.
func DashboardStats(orders []models.Order, products []models.Product, now time.Time) Stats {
	var s Stats

	for _, o := range RevenueEligible(orders) {
		s.TotalSales += OrderTotal(o.Items)
	}

	weekAgo := now.AddDate(0, 0, -7)
	for _, o := range orders {
		if !o.CreatedAt.Before(weekAgo) {
			s.OrdersThisWeek++
		}
	}

	for _, p := range products {
		switch p.StockStatus() {
		case models.InStock:
			s.ProductsInStock++
		case models.LowStock:
			s.LowStockItems++
		}
	}
	return s
}

// ChartPoint is one calendar day of the dashboard revenue chart. Sales is
// rounded to whole currency units at output; accumulation stays unrounded.
type ChartPoint struct {
	Date  string `json:"date"`
	Sales int    `json:"sales"`
}

// DailyChartSeries buckets revenue-eligible order items into local calendar
// days over the trailing windowDays days (today inclusive). Every day in the
// window appears, zero-valued when quiet, so chart lines stay continuous.
// The result is sorted ascending by date.
func DailyChartSeries(orders []models.Order, windowDays int, now time.Time) []ChartPoint {
	daily := make(map[string]float64, windowDays)
	for i := 0; i < windowDays; i++ {
		daily[now.AddDate(0, 0, -i).Format(dateLayout)] = 0
	}

	for _, o := range RevenueEligible(orders) {
		day := o.CreatedAt.In(now.Location()).Format(dateLayout)
		if _, ok := daily[day]; !ok {
			continue
		}
		daily[day] += OrderTotal(o.Items)
	}

	series := make([]ChartPoint, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(dateLayout)
		series = append(series, ChartPoint{
			Date:  day,
			Sales: int(math.Round(daily[day])),
		})
	}
	return series
}
