package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	api "github.com/sahyadri-sports/backoffice/internal/http"
	handler "github.com/sahyadri-sports/backoffice/internal/http/handlers"
	"github.com/sahyadri-sports/backoffice/internal/models"
	"github.com/sahyadri-sports/backoffice/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	token        string
	productRepo  *repo.InMemoryProductRepository
	customerRepo *repo.InMemoryCustomerRepository
	orderRepo    *repo.InMemoryOrderRepository
	settingsRepo *repo.InMemorySettingsRepository
)

func init() {
	setupTestRepos("secret123")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret123")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	customerRepo = repo.NewInMemoryCustomerRepository()
	handler.SetCustomerRepo(customerRepo)

	orderRepo = repo.NewInMemoryOrderRepository()
	handler.SetOrderRepo(orderRepo)
	orderRepo.LinkRepos(customerRepo, productRepo)
	customerRepo.LinkOrderRepo(orderRepo)

	settingsRepo = repo.NewInMemorySettingsRepository()
	handler.SetSettingsRepo(settingsRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})
}

func clearAll() {
	productRepo.Clear()
	customerRepo.Clear()
	orderRepo.Clear()
	settingsRepo.Clear()
}

// addrCounter hands every rate-limited request its own client address so the
// per-IP limiter never throttles the suite.
var addrCounter int64

func nextAddr() string {
	n := atomic.AddInt64(&addrCounter, 1)
	return fmt.Sprintf("10.1.%d.%d:5000", n/250, n%250)
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.UserLogin{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.RemoteAddr = nextAddr()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.RemoteAddr = nextAddr()
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", p)
}

func createCustomer(r http.Handler, c handler.CustomerRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/customers", c)
}

// seedOrder writes an order with one line item straight into the repositories,
// so tests control the creation date that the analytics endpoints bucket by.
func seedOrder(customerID string, status models.OrderStatus, createdAt time.Time, productName string, qty int, unitPrice float64) models.Order {
	product, err := productRepo.GetByName(productName)
	if err != nil {
		product, _ = productRepo.Create(models.Product{
			Name:  productName,
			Price: unitPrice,
			Stock: 100,
		})
	}

	order, _ := orderRepo.Create(models.Order{
		CustomerID: customerID,
		Status:     status,
		Payment:    models.PaymentPaid,
		CreatedAt:  createdAt,
	})
	orderRepo.AddItem(models.OrderItem{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  qty,
		UnitPrice: unitPrice,
	})
	return order
}

func seedCustomer(name, email string) models.Customer {
	c, _ := customerRepo.Create(models.Customer{
		Name:      name,
		Email:     email,
		Status:    models.CustomerActive,
		CreatedAt: time.Now().UTC(),
	})
	return c
}
