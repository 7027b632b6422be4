package models

// StockStatus is derived from the current stock level, never stored.
type StockStatus string

const (
	InStock    StockStatus = "In Stock"
	LowStock   StockStatus = "Low Stock"
	OutOfStock StockStatus = "Out of Stock"
)

// LowStockThreshold is the stock level at which a product counts as fully stocked.
const LowStockThreshold = 20

// Product represents a product entity in the catalog.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Brand     string  `json:"brand"`
	SKU       string  `json:"sku"`
	Manager   string  `json:"manager"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

// StockStatus recomputes the stock status from the current stock level.
func (p Product) StockStatus() StockStatus {
	switch {
	case p.Stock == 0:
		return OutOfStock
	case p.Stock < LowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}
