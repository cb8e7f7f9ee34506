package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ricardomoraes/minimart-inventory/internal/http/handlers"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter wires every route. Login, refresh, health, swagger and the
// SKU scanner lookup stay public; everything else sits behind the session gate.
func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.With(RateLimitMiddleware).Post("/login", handlers.LoginHandler)
	r.Post("/refresh", handlers.RefreshHandler)
	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/products/sku/{sku}", handlers.GetProductBySKUHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/logout", handlers.LogoutHandler)

		r.Post("/products", handlers.CreateProductHandler)
		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/low-stock", handlers.LowStockHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)

		r.Post("/purchases", handlers.CreatePurchaseHandler)
		r.Get("/purchases", handlers.GetPurchasesHandler)

		r.Post("/sales", handlers.CreateSaleHandler)
		r.Get("/sales", handlers.GetSalesHandler)
		r.Get("/sales/export", handlers.ExportSalesHandler)

		r.Get("/dashboard", handlers.DashboardHandler)
		r.Get("/reports", handlers.ReportHandler)
	})

	return r
}
