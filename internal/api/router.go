package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blood-donation-service/internal/api/handlers"
	"blood-donation-service/internal/platform/metrics"
)

// Dependencies for NewRouter. Metrics and Gatherer may be nil; /metrics is
// only mounted when Gatherer is set.
type Deps struct {
	Donors    handlers.DonorService
	Inventory handlers.InventoryService
	Store     handlers.Pinger
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
}

type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	donorHandler := &handlers.DonorHandler{Service: deps.Donors, Logger: logger}
	inventoryHandler := &handlers.InventoryHandler{Service: deps.Inventory, Logger: logger}
	healthHandler := &handlers.HealthHandler{Store: deps.Store}

	routes := []route{
		{http.MethodGet, "/health", healthHandler.Health},
		{http.MethodGet, "/api/donors", donorHandler.List},
		{http.MethodPost, "/api/donors", donorHandler.Register},
		{http.MethodGet, "/api/donors/search", donorHandler.Search},
		{http.MethodGet, "/api/donors/{id}", donorHandler.Get},
		{http.MethodGet, "/api/inventory", inventoryHandler.List},
		{http.MethodGet, "/api/inventory/{bloodType}", inventoryHandler.Get},
	}
	if deps.Gatherer != nil {
		routes = append(routes, route{
			http.MethodGet, "/metrics",
			promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}).ServeHTTP,
		})
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger, deps.Metrics))
	r.Use(recoverMiddleware(logger))

	for _, rt := range routes {
		r.Method(rt.method, rt.pattern, rt.handler)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		handlers.WriteError(w, req, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Allow", allowedMethods(r, req.URL.Path))
		handlers.WriteError(w, req, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

// allowedMethods lists the methods registered for path, for the Allow header.
func allowedMethods(routes chi.Routes, path string) string {
	candidates := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}

	allowed := make([]string, 0, 2)
	for _, m := range candidates {
		if routes.Match(chi.NewRouteContext(), m, path) {
			allowed = append(allowed, m)
		}
	}
	return strings.Join(allowed, ", ")
}
