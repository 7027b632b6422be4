package handlers

import (
	"strings"

	"github.com/sahyadri-sports/backoffice/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.Stock < 0 {
		errs = append(errs, ProductValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	return errs
}

func validateCustomer(c CustomerRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if !strings.Contains(c.Email, "@") {
		errs = append(errs, ProductValidationError{Field: "Email", Description: "A valid email is required"})
	}
	if c.Status != "" && !validCustomerStatus(models.CustomerStatus(c.Status)) {
		errs = append(errs, ProductValidationError{Field: "Status", Description: "Status must be Active, Inactive or VIP"})
	}
	return errs
}

func validCustomerStatus(s models.CustomerStatus) bool {
	switch s {
	case models.CustomerActive, models.CustomerInactive, models.CustomerVIP:
		return true
	}
	return false
}

func validOrderStatus(s models.OrderStatus) bool {
	switch s {
	case models.OrderPending, models.OrderProcessing, models.OrderShipped,
		models.OrderDelivered, models.OrderCancelled:
		return true
	}
	return false
}

func validPaymentStatus(s models.PaymentStatus) bool {
	switch s {
	case models.PaymentPaid, models.PaymentPending, models.PaymentFailed:
		return true
	}
	return false
}
