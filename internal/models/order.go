package models

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentFailed  PaymentStatus = "Failed"
)

// OrderItem is a single line of an order. UnitPrice is the price at the time
// of sale, not the product's current price.
type OrderItem struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Order carries its items when fetched through the joined paths. Its monetary
// total is always recomputed from the items, never stored.
type Order struct {
	ID             string        `json:"id"`
	CustomerID     string        `json:"customer_id"`
	CustomerName   string        `json:"customer_name,omitempty"`
	CustomerEmail  string        `json:"customer_email,omitempty"`
	Status         OrderStatus   `json:"status"`
	Payment        PaymentStatus `json:"payment"`
	ShippingMethod string        `json:"shipping_method"`
	CreatedAt      time.Time     `json:"created_at"`
	Items          []OrderItem   `json:"items,omitempty"`
}
