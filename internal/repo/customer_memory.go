package repo

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sahyadri-sports/backoffice/internal/models"
)

// InMemoryCustomerRepository is an in-memory implementation of CustomerRepository.
// Orders attached through the linked order repository are joined on read.
type InMemoryCustomerRepository struct {
	customers []models.Customer
	orderRepo *InMemoryOrderRepository
}

func NewInMemoryCustomerRepository() *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{customers: []models.Customer{}}
}

// LinkOrderRepo wires the order repository used to populate customer orders.
func (r *InMemoryCustomerRepository) LinkOrderRepo(orders *InMemoryOrderRepository) {
	r.orderRepo = orders
}

func (r *InMemoryCustomerRepository) Create(c models.Customer) (models.Customer, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.customers = append(r.customers, c)
	return c, nil
}

func (r *InMemoryCustomerRepository) GetAll() ([]models.Customer, error) {
	return r.customers, nil
}

func (r *InMemoryCustomerRepository) GetAllWithOrders() ([]models.Customer, error) {
	result := make([]models.Customer, len(r.customers))
	for i, c := range r.customers {
		if r.orderRepo != nil {
			c.Orders = r.orderRepo.ordersForCustomer(c.ID)
		}
		result[i] = c
	}
	return result, nil
}

func (r *InMemoryCustomerRepository) GetByID(id string) (models.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) FindByName(name string) (models.Customer, error) {
	for _, c := range r.customers {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) Update(c models.Customer) (models.Customer, error) {
	for i, existing := range r.customers {
		if existing.ID == c.ID {
			r.customers[i] = c
			return c, nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) Delete(id string) error {
	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) Clear() {
	r.customers = []models.Customer{}
}
