package models

import "time"

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "Active"
	CustomerInactive CustomerStatus = "Inactive"
	CustomerVIP      CustomerStatus = "VIP"
)

// Customer status is stored, unlike product stock status.
type Customer struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone,omitempty"`
	Status    CustomerStatus `json:"status"`
	AvatarURL string         `json:"avatar_url,omitempty"`
	CreatedAt time.Time      `json:"created_at"`

	// Orders is populated only by the joined customer fetch.
	Orders []Order `json:"orders,omitempty"`
}
