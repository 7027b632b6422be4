package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sahyadri-sports/backoffice/internal/analytics"
	models "github.com/sahyadri-sports/backoffice/internal/models"
	repo "github.com/sahyadri-sports/backoffice/internal/repo"
)

// GetCustomersHandler godoc
// @Summary List customers with derived order aggregates
// @Tags customers
// @Produce json
// @Success 200 {array} analytics.CustomerSummary
// @Failure 500 {string} string "Internal error"
// @Router /customers [get]
// @Security BearerAuth
func GetCustomersHandler(w http.ResponseWriter, r *http.Request) {
	var summaries []analytics.CustomerSummary
	if cachedView("customers", &summaries) {
		writeJSON(w, http.StatusOK, summaries)
		return
	}

	customers, err := customerRepo.GetAllWithOrders()
	if err != nil {
		http.Error(w, "could not fetch customers", http.StatusInternalServerError)
		return
	}

	summaries = analytics.CustomerSummaries(customers)
	cacheView("customers", summaries)
	writeJSON(w, http.StatusOK, summaries)
}

// CreateCustomerHandler godoc
// @Summary Create a new customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body CustomerRequest true "Customer to add"
// @Success 201 {object} models.Customer
// @Failure 400 {object} map[string]string
// @Router /customers [post]
// @Security BearerAuth
func CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCustomer(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	status := models.CustomerStatus(req.Status)
	if req.Status == "" {
		status = models.CustomerActive
	}

	customer := models.Customer{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	created, err := customerRepo.Create(customer)
	if err != nil {
		http.Error(w, "could not create customer", http.StatusInternalServerError)
		return
	}
	invalidateViews()

	writeJSON(w, http.StatusCreated, created)
}

// UpdateCustomerHandler godoc
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body CustomerRequest true "Updated customer"
// @Success 200 {object} models.Customer
// @Failure 400 {object} map[string]any
// @Failure 404 {string} string "Not found"
// @Router /customers/{id} [put]
// @Security BearerAuth
func UpdateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCustomer(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	existing, err := customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch customer", http.StatusInternalServerError)
		return
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	if req.Status != "" {
		existing.Status = models.CustomerStatus(req.Status)
	}

	updated, err := customerRepo.Update(existing)
	if err != nil {
		http.Error(w, "could not update customer", http.StatusInternalServerError)
		return
	}
	invalidateViews()

	writeJSON(w, http.StatusOK, updated)
}

// DeleteCustomerHandler godoc
// @Summary Delete a customer
// @Tags customers
// @Param id path string true "Customer ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /customers/{id} [delete]
// @Security BearerAuth
func DeleteCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := customerRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete customer", http.StatusInternalServerError)
		return
	}
	invalidateViews()
	w.WriteHeader(http.StatusNoContent)
}
