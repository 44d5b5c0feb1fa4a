package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"vise-api-go/internal/api/handlers"
	"vise-api-go/internal/api/middleware"
	"vise-api-go/internal/config"
	"vise-api-go/internal/eligibility"
	"vise-api-go/internal/idempotency"
	"vise-api-go/internal/purchase"
	"vise-api-go/internal/redisclient"
	"vise-api-go/internal/registry"
)

// NewRouter creates a new Chi router with all routes and middleware configured
func NewRouter(
	validator *eligibility.Validator,
	reg *registry.Registry,
	processor *purchase.Processor,
	idem *idempotency.Store,
	redis *redisclient.Client,
	cfg *config.Config,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Apply middleware stack
	r.Use(middleware.Recovery(logger))
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Initialize handlers
	clientHandler := handlers.NewClientHandler(validator, reg, logger)
	purchaseHandler := handlers.NewPurchaseHandler(processor, idem, logger)
	statusHandler := handlers.NewStatusHandler(reg, redis, cfg, logger)
	healthHandler := handlers.NewHealthHandler(redis, logger)

	// Root welcome endpoint
	r.Get("/", statusHandler.HandleRoot)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Card application endpoint
		r.Post("/client", clientHandler.HandleSubmit)

		// Diagnostics lookup
		r.Get("/client/{client_id}", clientHandler.HandleGet)

		// Purchase endpoint
		r.Post("/purchase", purchaseHandler.Handle)

		// Status endpoint
		r.Get("/status", statusHandler.Handle)

		// Health and readiness endpoints
		r.Get("/health", healthHandler.HandleHealth)
		r.Get("/ready", healthHandler.HandleReady)

		// Metrics endpoint
		r.Get("/metrics", promhttp.Handler().ServeHTTP)
	})

	return r
}
