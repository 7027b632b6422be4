package repo

import "github.com/sahyadri-sports/backoffice/internal/models"

// ProductFilter narrows product searches; nil pointer fields are ignored.
type ProductFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	MinStock *int
	MaxStock *int
	Offset   *int
	Limit    *int
}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	GetByName(name string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id string) error
	Filter(filter ProductFilter) ([]models.Product, int, error)
	// AdjustStock applies a delta to the stock level, refusing adjustments
	// that would take stock below zero.
	AdjustStock(id string, delta int) (models.Product, error)
	// FirstInStock returns any product with stock > 0, used by the order
	// quick-create flow to attach a line item.
	FirstInStock() (models.Product, error)
}
