package analytics

import (
	"testing"
	"time"

	"github.com/sahyadri-sports/backoffice/internal/models"
)

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderItem
		want  float64
	}{
		{name: "empty items", items: nil, want: 0},
		{
			name: "two lines",
			items: []models.OrderItem{
				{Quantity: 2, UnitPrice: 10},
				{Quantity: 1, UnitPrice: 5},
			},
			want: 25,
		},
		{
			name:  "single line with cents",
			items: []models.OrderItem{{Quantity: 3, UnitPrice: 19.99}},
			want:  59.97,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrderTotal(tt.items); got != tt.want {
				t.Errorf("expected total %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOrderTotal_OrderIndependent(t *testing.T) {
	items := []models.OrderItem{
		{Quantity: 2, UnitPrice: 10},
		{Quantity: 1, UnitPrice: 5},
		{Quantity: 4, UnitPrice: 2.5},
	}
	reversed := []models.OrderItem{items[2], items[1], items[0]}

	if OrderTotal(items) != OrderTotal(reversed) {
		t.Errorf("total changed with item ordering: %v vs %v", OrderTotal(items), OrderTotal(reversed))
	}
	if OrderUnits(items) != OrderUnits(reversed) {
		t.Errorf("units changed with item ordering: %d vs %d", OrderUnits(items), OrderUnits(reversed))
	}
}

func TestRevenueEligible(t *testing.T) {
	orders := []models.Order{
		{ID: "ORD-1", Status: models.OrderDelivered},
		{ID: "ORD-2", Status: models.OrderCancelled},
		{ID: "ORD-3", Status: models.OrderPending},
		{ID: "ORD-4", Status: models.OrderCancelled},
	}

	eligible := RevenueEligible(orders)
	if len(eligible) != 2 {
		t.Fatalf("expected 2 eligible orders, got %d", len(eligible))
	}
	if eligible[0].ID != "ORD-1" || eligible[1].ID != "ORD-3" {
		t.Errorf("eligible orders out of order: %v, %v", eligible[0].ID, eligible[1].ID)
	}
}

func TestRevenueEligible_Empty(t *testing.T) {
	if got := RevenueEligible(nil); len(got) != 0 {
		t.Errorf("expected empty result for nil input, got %v", got)
	}
}

// order is a fixture helper shared by the analytics tests.
func order(id string, status models.OrderStatus, createdAt time.Time, items ...models.OrderItem) models.Order {
	return models.Order{ID: id, Status: status, CreatedAt: createdAt, Items: items}
}

func item(product string, qty int, price float64) models.OrderItem {
	return models.OrderItem{ProductName: product, Quantity: qty, UnitPrice: price}
}
