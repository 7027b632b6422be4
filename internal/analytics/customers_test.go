package analytics

import (
	"testing"
	"time"

	"github.com/sahyadri-sports/backoffice/internal/models"
)

func TestCustomerSummaries(t *testing.T) {
	customers := []models.Customer{
		{
			ID:     "c1",
			Name:   "Asha",
			Email:  "asha@example.com",
			Phone:  "+91 98 7654 3210",
			Status: models.CustomerVIP,
			Orders: []models.Order{
				order("ORD-1", models.OrderDelivered, testNow.AddDate(0, 0, -3), item("Ball", 2, 50)),   // 100
				order("ORD-2", models.OrderCancelled, testNow.AddDate(0, 0, -1), item("Bat", 1, 500)),   // not spent
				order("ORD-3", models.OrderPending, testNow.AddDate(0, 0, -10), item("Shoes", 1, 250)), // 250
			},
		},
		{
			ID:     "c2",
			Name:   "Ravi",
			Email:  "ravi@example.com",
			Status: models.CustomerActive,
		},
	}

	summaries := CustomerSummaries(customers)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	asha := summaries[0]
	// Cancelled orders count toward history but never toward spend.
	if asha.Orders != 3 {
		t.Errorf("expected 3 orders, got %d", asha.Orders)
	}
	if asha.TotalSpent != 350 {
		t.Errorf("expected total spent 350, got %v", asha.TotalSpent)
	}
	// The cancelled order is still the most recent one.
	if want := testNow.AddDate(0, 0, -1).Format("2006-01-02"); asha.LastOrder != want {
		t.Errorf("expected last order %s, got %s", want, asha.LastOrder)
	}

	ravi := summaries[1]
	if ravi.Orders != 0 || ravi.TotalSpent != 0 {
		t.Errorf("expected zero aggregates, got %+v", ravi)
	}
	if ravi.LastOrder != NeverOrdered {
		t.Errorf("expected %q, got %q", NeverOrdered, ravi.LastOrder)
	}
	if ravi.Phone != "N/A" {
		t.Errorf("expected phone fallback N/A, got %q", ravi.Phone)
	}
}

func TestCustomerSummaries_Empty(t *testing.T) {
	if got := CustomerSummaries(nil); len(got) != 0 {
		t.Errorf("expected no summaries, got %v", got)
	}
}

func TestCustomerSummaries_LastOrderPicksMax(t *testing.T) {
	times := []time.Time{
		testNow.AddDate(0, 0, -5),
		testNow.AddDate(0, 0, -2),
		testNow.AddDate(0, 0, -9),
	}
	c := models.Customer{ID: "c1", Name: "Asha", Orders: []models.Order{
		order("ORD-1", models.OrderDelivered, times[0]),
		order("ORD-2", models.OrderDelivered, times[1]),
		order("ORD-3", models.OrderDelivered, times[2]),
	}}

	summaries := CustomerSummaries([]models.Customer{c})
	if want := times[1].Format("2006-01-02"); summaries[0].LastOrder != want {
		t.Errorf("expected last order %s, got %s", want, summaries[0].LastOrder)
	}
}
