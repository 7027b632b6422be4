package handlers

import (
	"encoding/json"

	"github.com/sahyadri-sports/backoffice/internal/models"
)

type ProductRequest struct {
	Id       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Brand    string  `json:"brand"`
	SKU      string  `json:"sku"`
	Manager  string  `json:"manager"`
}

type ProductResponse struct {
	Id       string             `json:"id"`
	Name     string             `json:"name"`
	Category string             `json:"category"`
	Price    float64            `json:"price"`
	Stock    int                `json:"stock"`
	Brand    string             `json:"brand"`
	SKU      string             `json:"sku"`
	Manager  string             `json:"manager"`
	Status   models.StockStatus `json:"status"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type StockAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type CustomerRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Status string `json:"status,omitempty"`
}

// OrderRow is the order list view row; total and items are derived from the
// order's line items, never read from storage.
type OrderRow struct {
	Id       string  `json:"id"`
	Customer string  `json:"customer"`
	Email    string  `json:"email"`
	Date     string  `json:"date"`
	Total    float64 `json:"total"`
	Status   string  `json:"status"`
	Items    int     `json:"items"`
	Payment  string  `json:"payment"`
	Shipping string  `json:"shipping"`
}

type OrderCreateRequest struct {
	Customer    string  `json:"customer"`
	Email       string  `json:"email,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Status      string  `json:"status,omitempty"`
	TotalAmount float64 `json:"total_amount"`
}

type OrderUpdateRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	CustomerName  string `json:"customer_name,omitempty"`
}

type SettingUpdateRequest struct {
	Value json.RawMessage `json:"value"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterAsAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}
