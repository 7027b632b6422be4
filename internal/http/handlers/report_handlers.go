package handlers

import (
	"net/http"
	"time"

	"github.com/sahyadri-sports/backoffice/internal/analytics"
)

// GetSalesReportHandler godoc
// @Summary Sales report
// @Tags reports
// @Produce json
// @Success 200 {object} analytics.SalesReport
// @Failure 500 {string} string "Internal error"
// @Router /reports/sales [get]
// @Security BearerAuth
func GetSalesReportHandler(w http.ResponseWriter, r *http.Request) {
	var report analytics.SalesReport
	if cachedView("reports:sales", &report) {
		writeJSON(w, http.StatusOK, report)
		return
	}

	orders, err := orderRepo.GetAllWithItems()
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}

	report = analytics.BuildSalesReport(orders, time.Now())
	cacheView("reports:sales", report)
	writeJSON(w, http.StatusOK, report)
}

// GetInventoryReportHandler godoc
// @Summary Inventory report
// @Tags reports
// @Produce json
// @Success 200 {object} analytics.InventoryReport
// @Failure 500 {string} string "Internal error"
// @Router /reports/inventory [get]
// @Security BearerAuth
func GetInventoryReportHandler(w http.ResponseWriter, r *http.Request) {
	var report analytics.InventoryReport
	if cachedView("reports:inventory", &report) {
		writeJSON(w, http.StatusOK, report)
		return
	}

	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	report = analytics.BuildInventoryReport(products)
	cacheView("reports:inventory", report)
	writeJSON(w, http.StatusOK, report)
}
