package repo

import "github.com/sahyadri-sports/backoffice/internal/models"

// OrderRepository defines the interface for order data operations.
type OrderRepository interface {
	Create(order models.Order) (models.Order, error)
	AddItem(item models.OrderItem) (models.OrderItem, error)
	// GetAllWithItems returns every order with customer name/email and line
	// items (carrying product names) populated, newest first.
	GetAllWithItems() ([]models.Order, error)
	GetByID(id string) (models.Order, error)
	// Update modifies the mutable fields of an order: status and payment.
	Update(order models.Order) (models.Order, error)
	Delete(id string) error
}
