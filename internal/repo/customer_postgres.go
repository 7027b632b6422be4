package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	models "github.com/sahyadri-sports/backoffice/internal/models"
)

type PostgresCustomerRepository struct {
	db *sql.DB
}

func NewPostgresCustomerRepository(db *sql.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

const customerColumns = `id, name, email, COALESCE(phone, ''), status, COALESCE(avatar_url, ''), created_at`

func scanCustomer(row interface{ Scan(...any) error }) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Status, &c.AvatarURL, &c.CreatedAt)
	return c, err
}

func (r *PostgresCustomerRepository) Create(c models.Customer) (models.Customer, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `INSERT INTO customers (id, name, email, phone, status, avatar_url, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Email, c.Phone, c.Status, c.AvatarURL, c.CreatedAt)
	return c, err
}

func (r *PostgresCustomerRepository) GetAll() ([]models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *PostgresCustomerRepository) GetAllWithOrders() ([]models.Customer, error) {
	customers, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	orderRows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.customer_id, o.status, o.payment_status, o.shipping_method, o.created_at,
		       i.id, i.product_id, i.quantity, i.unit_price
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		ORDER BY o.created_at`)
	if err != nil {
		return nil, err
	}
	defer orderRows.Close()

	ordersByCustomer := map[string][]models.Order{}
	orderIdx := map[string]int{}

	for orderRows.Next() {
		var o models.Order
		var itemID, productID sql.NullString
		var quantity sql.NullInt64
		var unitPrice sql.NullFloat64
		if err := orderRows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.Payment, &o.ShippingMethod, &o.CreatedAt,
			&itemID, &productID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		list := ordersByCustomer[o.CustomerID]
		idx, seen := orderIdx[o.ID]
		if !seen {
			idx = len(list)
			orderIdx[o.ID] = idx
			list = append(list, o)
		}
		if itemID.Valid {
			list[idx].Items = append(list[idx].Items, models.OrderItem{
				ID:        itemID.String,
				OrderID:   o.ID,
				ProductID: productID.String,
				Quantity:  int(quantity.Int64),
				UnitPrice: unitPrice.Float64,
			})
		}
		ordersByCustomer[o.CustomerID] = list
	}
	if err := orderRows.Err(); err != nil {
		return nil, err
	}

	for i := range customers {
		customers[i].Orders = ordersByCustomer[customers[i].ID]
	}
	return customers, nil
}

func (r *PostgresCustomerRepository) GetByID(id string) (models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, ErrCustomerNotFound
	}
	return c, err
}

func (r *PostgresCustomerRepository) FindByName(name string) (models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE name ILIKE $1 LIMIT 1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, ErrCustomerNotFound
	}
	return c, err
}

func (r *PostgresCustomerRepository) Update(c models.Customer) (models.Customer, error) {
	query := `UPDATE customers SET name = $1, email = $2, phone = NULLIF($3, ''), status = $4 WHERE id = $5`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, c.Name, c.Email, c.Phone, c.Status, c.ID)
	if err != nil {
		return models.Customer{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (r *PostgresCustomerRepository) Delete(id string) error {
	query := `DELETE FROM customers WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
