package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/sahyadri-sports/backoffice/docs"
	"github.com/sahyadri-sports/backoffice/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	// Public routes.
	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
		r.Post("/refresh", handlers.RefreshTokenHandler)
	})

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/search", handlers.FilterProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)

	r.Get("/swagger/*", httpSwagger.Handler())

	// Routes requiring a valid bearer token.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Post("/products/{id}/adjust", handlers.AdjustStockHandler)
		r.Post("/products/import", handlers.ImportProductsHandler)

		r.Get("/customers", handlers.GetCustomersHandler)
		r.Post("/customers", handlers.CreateCustomerHandler)
		r.Put("/customers/{id}", handlers.UpdateCustomerHandler)
		r.Delete("/customers/{id}", handlers.DeleteCustomerHandler)

		r.Get("/orders", handlers.GetOrdersHandler)
		r.Post("/orders", handlers.CreateOrderHandler)
		r.Put("/orders/{id}", handlers.UpdateOrderHandler)
		r.Delete("/orders/{id}", handlers.DeleteOrderHandler)

		r.Get("/dashboard/stats", handlers.GetDashboardStatsHandler)
		r.Get("/dashboard/chart", handlers.GetDashboardChartHandler)
		r.Get("/reports/sales", handlers.GetSalesReportHandler)
		r.Get("/reports/inventory", handlers.GetInventoryReportHandler)

		r.Get("/settings", handlers.GetSettingsHandler)
		r.Put("/settings/{key}", handlers.UpdateSettingHandler)

		r.Post("/admin/users", handlers.RegisterAsAdminHandler)
	})

	return r
}
