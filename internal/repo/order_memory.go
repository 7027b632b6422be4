package repo

import (
	"sort"

	"github.com/google/uuid"
	"github.com/sahyadri-sports/backoffice/internal/models"
)

// InMemoryOrderRepository is an in-memory implementation of OrderRepository.
type InMemoryOrderRepository struct {
	orders       []models.Order
	items        []models.OrderItem
	customerRepo *InMemoryCustomerRepository
	productRepo  *InMemoryProductRepository
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{}
}

// LinkRepos wires the repositories used to join customer and product fields.
func (r *InMemoryOrderRepository) LinkRepos(customers *InMemoryCustomerRepository, products *InMemoryProductRepository) {
	r.customerRepo = customers
	r.productRepo = products
}

func (r *InMemoryOrderRepository) Create(o models.Order) (models.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.Items = nil
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *InMemoryOrderRepository) AddItem(item models.OrderItem) (models.OrderItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	found := false
	for _, o := range r.orders {
		if o.ID == item.OrderID {
			found = true
			break
		}
	}
	if !found {
		return models.OrderItem{}, ErrOrderNotFound
	}
	r.items = append(r.items, item)
	return item, nil
}

func (r *InMemoryOrderRepository) itemsForOrder(orderID string) []models.OrderItem {
	var items []models.OrderItem
	for _, it := range r.items {
		if it.OrderID == orderID {
			if it.ProductName == "" && r.productRepo != nil {
				if p, err := r.productRepo.GetByID(it.ProductID); err == nil {
					it.ProductName = p.Name
				}
			}
			items = append(items, it)
		}
	}
	return items
}

func (r *InMemoryOrderRepository) ordersForCustomer(customerID string) []models.Order {
	var orders []models.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			o.Items = r.itemsForOrder(o.ID)
			orders = append(orders, o)
		}
	}
	return orders
}

func (r *InMemoryOrderRepository) GetAllWithItems() ([]models.Order, error) {
	result := make([]models.Order, len(r.orders))
	for i, o := range r.orders {
		o.Items = r.itemsForOrder(o.ID)
		if r.customerRepo != nil {
			if c, err := r.customerRepo.GetByID(o.CustomerID); err == nil {
				o.CustomerName = c.Name
				o.CustomerEmail = c.Email
			}
		}
		result[i] = o
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *InMemoryOrderRepository) GetByID(id string) (models.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			o.Items = r.itemsForOrder(o.ID)
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Update(order models.Order) (models.Order, error) {
	for i, o := range r.orders {
		if o.ID == order.ID {
			o.Status = order.Status
			o.Payment = order.Payment
			r.orders[i] = o
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Delete(id string) error {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			var kept []models.OrderItem
			for _, it := range r.items {
				if it.OrderID != id {
					kept = append(kept, it)
				}
			}
			r.items = kept
			return nil
		}
	}
	return ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Clear() {
	r.orders = nil
	r.items = nil
}
