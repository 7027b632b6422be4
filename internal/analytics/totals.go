// Package analytics turns flat collections of catalog and order rows into the
// view-models behind the dashboard and report screens. Every function here is
// pure and synchronous: callers fetch the rows, the engine only reads them.
package analytics

import "github.com/sahyadri-sports/backoffice/internal/models"

// OrderTotal sums quantity * unit price over the items of one order.
// An order's monetary total is always derived this way, never stored.
func OrderTotal(items []models.OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	return total
}

// OrderUnits sums the quantities of an order's items.
func OrderUnits(items []models.OrderItem) int {
	var units int
	for _, it := range items {
		units += it.Quantity
	}
	return units
}

// RevenueEligible filters out Cancelled orders. It is the single money policy:
// every revenue aggregate operates on this filtered set. Order counts are a
// matter of history, not money, and are deliberately not filtered.
func RevenueEligible(orders []models.Order) []models.Order {
	eligible := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status != models.OrderCancelled {
			eligible = append(eligible, o)
		}
	}
	return eligible
}
