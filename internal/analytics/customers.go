package analytics

import "github.com/sahyadri-sports/backoffice/internal/models"

// CustomerSummary is the customers screen row: stored fields plus aggregates
// derived from the customer's orders.
type CustomerSummary struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Phone      string                `json:"phone"`
	Orders     int                   `json:"orders"`
	TotalSpent float64               `json:"total_spent"`
	Status     models.CustomerStatus `json:"status"`
	LastOrder  string                `json:"last_order"`
	AvatarURL  string                `json:"avatar_url,omitempty"`
}

// NeverOrdered is the last-order sentinel for customers with no orders.
const NeverOrdered = "Never"

// CustomerSummaries derives per-customer aggregates. Total spent counts only
// revenue-eligible orders, matching the dashboard and sales report; the order
// count and last-order date cover every order including Cancelled ones.
func CustomerSummaries(customers []models.Customer) []CustomerSummary {
	summaries := make([]CustomerSummary, 0, len(customers))
	for _, c := range customers {
		s := CustomerSummary{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			Orders:    len(c.Orders),
			Status:    c.Status,
			LastOrder: NeverOrdered,
			AvatarURL: c.AvatarURL,
		}
		if s.Phone == "" {
			s.Phone = "N/A"
		}

		for _, o := range RevenueEligible(c.Orders) {
			s.TotalSpent += OrderTotal(o.Items)
		}

		for _, o := range c.Orders {
			day := o.CreatedAt.Format(dateLayout)
			if s.LastOrder == NeverOrdered || day > s.LastOrder {
				s.LastOrder = day
			}
		}

		summaries = append(summaries, s)
	}
	return summaries
}
