package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sahyadri-sports/backoffice/internal/analytics"
)

const defaultChartWindowDays = 90

// GetDashboardStatsHandler godoc
// @Summary Dashboard KPI cards
// @Tags dashboard
// @Produce json
// @Success 200 {object} analytics.Stats
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/stats [get]
// @Security BearerAuth
func GetDashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	var stats analytics.Stats
	if cachedView("dashboard:stats", &stats) {
		writeJSON(w, http.StatusOK, stats)
		return
	}

	orders, err := orderRepo.GetAllWithItems()
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	stats = analytics.DashboardStats(orders, products, time.Now())
	cacheView("dashboard:stats", stats)
	writeJSON(w, http.StatusOK, stats)
}

// GetDashboardChartHandler godoc
// @Summary Daily revenue series for the dashboard chart
// @Tags dashboard
// @Produce json
// @Param days query int false "Window size in days (default 90)"
// @Success 200 {array} analytics.ChartPoint
// @Failure 400 {string} string "Invalid window"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/chart [get]
// @Security BearerAuth
func GetDashboardChartHandler(w http.ResponseWriter, r *http.Request) {
	days := defaultChartWindowDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 366 {
			http.Error(w, "days must be between 1 and 366", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	cacheKey := fmt.Sprintf("dashboard:chart:%d", days)
	var series []analytics.ChartPoint
	if cachedView(cacheKey, &series) {
		writeJSON(w, http.StatusOK, series)
		return
	}

	orders, err := orderRepo.GetAllWithItems()
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}

	series = analytics.DailyChartSeries(orders, days, time.Now())
	cacheView(cacheKey, series)
	writeJSON(w, http.StatusOK, series)
}
