package repo

import "github.com/sahyadri-sports/backoffice/internal/models"

// CustomerRepository defines the interface for customer data operations.
type CustomerRepository interface {
	Create(customer models.Customer) (models.Customer, error)
	GetAll() ([]models.Customer, error)
	// GetAllWithOrders returns every customer with their orders and order
	// items populated, for the customer summaries screen.
	GetAllWithOrders() ([]models.Customer, error)
	GetByID(id string) (models.Customer, error)
	// FindByName does a case-insensitive exact-name lookup, used by the
	// order quick-create flow.
	FindByName(name string) (models.Customer, error)
	Update(customer models.Customer) (models.Customer, error)
	Delete(id string) error
}
