// Package rest wires the JSON REST API. All routes are registered on a
// method-qualified http.ServeMux; authentication happens in the middleware
// chain, authorization in the services.
package rest

import "net/http"

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Report  *ReportHandler
	Health  *HealthHandler
}

// NewRouter builds the route table.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", deps.Auth.Login)
	mux.HandleFunc("GET /api/auth/me", deps.Auth.Me)

	// Catalog. The literal "categories" segment must be registered next to
	// the {id} pattern; the mux prefers the more specific route.
	mux.HandleFunc("GET /api/products", deps.Product.List)
	mux.HandleFunc("POST /api/products", deps.Product.Create)
	mux.HandleFunc("GET /api/products/categories", deps.Product.Categories)
	mux.HandleFunc("GET /api/products/{id}", deps.Product.Get)
	mux.HandleFunc("PUT /api/products/{id}", deps.Product.Update)
	mux.HandleFunc("DELETE /api/products/{id}", deps.Product.Delete)
	mux.HandleFunc("GET /api/products/{id}/history", deps.Product.History)

	// Reports
	mux.HandleFunc("GET /api/reports/stats", deps.Report.Stats)
	mux.HandleFunc("GET /api/reports/category-stats", deps.Report.CategoryStats)
	mux.HandleFunc("GET /api/reports/low-stock", deps.Report.LowStock)
	mux.HandleFunc("GET /api/reports/recent-activity", deps.Report.RecentActivity)

	// Probes
	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /ready", deps.Health.Ready)

	return mux
}
