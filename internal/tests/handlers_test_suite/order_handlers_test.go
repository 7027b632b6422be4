package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	api "github.com/sahyadri-sports/backoffice/internal/http"
	handler "github.com/sahyadri-sports/backoffice/internal/http/handlers"
	"github.com/sahyadri-sports/backoffice/internal/models"
)

func TestGetOrdersHandler_DerivedTotals(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	c := seedCustomer("Ravi Kumar", "ravi@example.com")
	seedOrder(c.ID, models.OrderDelivered, time.Now(), "Cricket Bat", 2, 1500)

	w := doJSON(r, http.MethodGet, "/orders", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var rows []handler.OrderRow
	if err := json.NewDecoder(w.Body).Decode(&rows); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 order, got %d", len(rows))
	}

	row := rows[0]
	if row.Total != 3000 {
		t.Errorf("expected total 3000 derived from items, got %v", row.Total)
	}
	if row.Items != 2 {
		t.Errorf("expected 2 items, got %d", row.Items)
	}
	if row.Customer != "Ravi Kumar" {
		t.Errorf("expected joined customer name, got %q", row.Customer)
	}
	if row.Email != "ravi@example.com" {
		t.Errorf("expected joined customer email, got %q", row.Email)
	}
}

func TestGetOrdersHandler_EmptyOrderFallbacks(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	// An order with no items and no resolvable customer still renders a row.
	orderRepo.Create(models.Order{
		CustomerID: "missing-customer",
		Status:     models.OrderPending,
		Payment:    models.PaymentPending,
		CreatedAt:  time.Now(),
	})

	w := doJSON(r, http.MethodGet, "/orders", nil)
	var rows []handler.OrderRow
	json.NewDecoder(w.Body).Decode(&rows)

	if len(rows) != 1 {
		t.Fatalf("expected 1 order, got %d", len(rows))
	}
	if rows[0].Customer != "Unknown" || rows[0].Email != "Unknown" {
		t.Errorf("expected Unknown fallbacks, got %q / %q", rows[0].Customer, rows[0].Email)
	}
	if rows[0].Items != 1 {
		t.Errorf("expected item count floor of 1, got %d", rows[0].Items)
	}
	if rows[0].Total != 0 {
		t.Errorf("expected total 0, got %v", rows[0].Total)
	}
	if rows[0].Shipping != "Standard" {
		t.Errorf("expected shipping fallback 'Standard', got %q", rows[0].Shipping)
	}
}

func TestCreateOrderHandler_NewCustomer(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/orders", handler.OrderCreateRequest{
		Customer:    "Walk In",
		TotalAmount: 750,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var row handler.OrderRow
	if err := json.NewDecoder(w.Body).Decode(&row); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if row.Customer != "Walk In" {
		t.Errorf("expected customer 'Walk In', got %q", row.Customer)
	}
	if row.Total != 750 {
		t.Errorf("expected total 750, got %v", row.Total)
	}
	if row.Status != "Pending" {
		t.Errorf("expected defaulted status Pending, got %q", row.Status)
	}

	// The customer was created on the fly with a placeholder email.
	c, err := customerRepo.FindByName("Walk In")
	if err != nil {
		t.Fatalf("expected customer to be created: %v", err)
	}
	if c.Email != "WalkIn@example.com" {
		t.Errorf("expected placeholder email, got %q", c.Email)
	}
}

func TestCreateOrderHandler_ExistingCustomer(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	seedCustomer("Regular", "regular@example.com")

	w := doJSON(r, http.MethodPost, "/orders", handler.OrderCreateRequest{
		Customer:    "Regular",
		TotalAmount: 200,
		Status:      "Processing",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	customers, _ := customerRepo.GetAll()
	if len(customers) != 1 {
		t.Errorf("expected no duplicate customer, got %d", len(customers))
	}
}

func TestCreateOrderHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	tests := []struct {
		name    string
		payload handler.OrderCreateRequest
	}{
		{"Missing customer", handler.OrderCreateRequest{TotalAmount: 100}},
		{"Zero amount", handler.OrderCreateRequest{Customer: "X"}},
		{"Bad status", handler.OrderCreateRequest{Customer: "X", TotalAmount: 100, Status: "Lost"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/orders", tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}
		})
	}
}

func TestUpdateOrderHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	c := seedCustomer("Ravi Kumar", "ravi@example.com")
	order := seedOrder(c.ID, models.OrderPending, time.Now(), "Cricket Bat", 1, 1500)

	w := doJSON(r, http.MethodPut, "/orders/"+order.ID, handler.OrderUpdateRequest{
		Status:        "Shipped",
		PaymentStatus: "Paid",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var row handler.OrderRow
	json.NewDecoder(w.Body).Decode(&row)
	if row.Status != "Shipped" {
		t.Errorf("expected status Shipped, got %q", row.Status)
	}
	if row.Payment != "Paid" {
		t.Errorf("expected payment Paid, got %q", row.Payment)
	}
}

func TestUpdateOrderHandler_InvalidStatus(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	c := seedCustomer("Ravi Kumar", "ravi@example.com")
	order := seedOrder(c.ID, models.OrderPending, time.Now(), "Cricket Bat", 1, 1500)

	w := doJSON(r, http.MethodPut, "/orders/"+order.ID, handler.OrderUpdateRequest{
		Status:        "Teleported",
		PaymentStatus: "Paid",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestDeleteOrderHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	c := seedCustomer("Ravi Kumar", "ravi@example.com")
	order := seedOrder(c.ID, models.OrderDelivered, time.Now(), "Cricket Bat", 1, 1500)

	w := doJSON(r, http.MethodDelete, "/orders/"+order.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, "/orders/"+order.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}
