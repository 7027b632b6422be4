package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	models "github.com/sahyadri-sports/backoffice/internal/models"
	repo "github.com/sahyadri-sports/backoffice/internal/repo"
)

// ImportProductsHandler godoc
// @Summary Bulk import products from CSV
// @Description Reads a CSV body with header name,category,price,stock,brand,sku.
// @Description Rows whose name already exists are skipped, or overwrite the
// @Description existing product when mode=update.
// @Tags products
// @Accept text/csv
// @Produce json
// @Param mode query string false "Duplicate handling: skip (default) or update"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid CSV"
// @Router /products/import [post]
// @Security BearerAuth
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = "skip"
	}
	if mode != "skip" && mode != "update" {
		http.Error(w, "mode must be skip or update", http.StatusBadRequest)
		return
	}

	reader := csv.NewReader(r.Body)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		http.Error(w, "could not read CSV header", http.StatusBadRequest)
		return
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"name", "price", "stock"} {
		if _, ok := col[required]; !ok {
			http.Error(w, fmt.Sprintf("missing required column %q", required), http.StatusBadRequest)
			return
		}
	}

	field := func(record []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	result := ImportProductsResult{Errors: []ProductValidationError{}}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Errors = append(result.Errors, ProductValidationError{
				Field:       fmt.Sprintf("line %d", line),
				Description: "malformed CSV row",
			})
			continue
		}

		price, priceErr := strconv.ParseFloat(field(record, "price"), 64)
		stock, stockErr := strconv.Atoi(field(record, "stock"))
		req := ProductRequest{
			Name:     field(record, "name"),
			Category: field(record, "category"),
			Price:    price,
			Stock:    stock,
			Brand:    field(record, "brand"),
			SKU:      field(record, "sku"),
		}
		if priceErr != nil {
			result.Errors = append(result.Errors, ProductValidationError{
				Field:       fmt.Sprintf("line %d: Price", line),
				Description: "Price must be a number",
			})
			continue
		}
		if stockErr != nil {
			result.Errors = append(result.Errors, ProductValidationError{
				Field:       fmt.Sprintf("line %d: Stock", line),
				Description: "Stock must be an integer",
			})
			continue
		}
		if validationErrors := validateProduct(req); len(validationErrors) > 0 {
			for _, ve := range validationErrors {
				ve.Field = fmt.Sprintf("line %d: %s", line, ve.Field)
				result.Errors = append(result.Errors, ve)
			}
			continue
		}

		if req.Brand == "" {
			req.Brand = "Generic"
		}
		if req.SKU == "" {
			req.SKU = fmt.Sprintf("SKU-%06d", time.Now().UnixMilli()%1000000)
		}

		existing, err := productRepo.GetByName(req.Name)
		switch {
		case err == nil && mode == "skip":
			continue
		case err == nil: // mode == "update"
			existing.Category = req.Category
			existing.Price = req.Price
			existing.Stock = req.Stock
			existing.Brand = req.Brand
			existing.UpdatedAt = time.Now().Format(time.RFC3339)
			if _, err := productRepo.Update(existing); err != nil {
				result.Errors = append(result.Errors, ProductValidationError{
					Field:       fmt.Sprintf("line %d", line),
					Description: "could not update existing product",
				})
				continue
			}
		case errors.Is(err, repo.ErrProductNotFound):
			_, err := productRepo.Create(models.Product{
				Name:      req.Name,
				Category:  req.Category,
				Price:     req.Price,
				Stock:     req.Stock,
				Brand:     req.Brand,
				SKU:       req.SKU,
				CreatedAt: time.Now().Format(time.RFC3339),
				UpdatedAt: time.Now().Format(time.RFC3339),
			})
			if err != nil {
				result.Errors = append(result.Errors, ProductValidationError{
					Field:       fmt.Sprintf("line %d", line),
					Description: "could not create product",
				})
				continue
			}
		default:
			http.Error(w, "could not import products", http.StatusInternalServerError)
			return
		}
		result.ImportedProductsCount++
	}
	if result.ImportedProductsCount > 0 {
		invalidateViews()
	}

	writeJSON(w, http.StatusOK, result)
}
