package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"vise-api-go/internal/config"
	"vise-api-go/internal/models"
	"vise-api-go/internal/redisclient"
	"vise-api-go/internal/registry"
)

// StatusHandler handles status and root requests
type StatusHandler struct {
	registry  *registry.Registry
	redis     *redisclient.Client
	config    *config.Config
	logger    *zap.Logger
	startedAt time.Time
}

// NewStatusHandler creates a new status handler. Redis may be nil when the
// idempotency cache is disabled.
func NewStatusHandler(reg *registry.Registry, redis *redisclient.Client, cfg *config.Config, logger *zap.Logger) *StatusHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusHandler{
		registry:  reg,
		redis:     redis,
		config:    cfg,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// Handle handles GET /api/v1/status
func (h *StatusHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idemStatus := "disabled"
	if h.redis != nil {
		idemStatus = "up"
		if err := h.redis.Ping(ctx); err != nil {
			idemStatus = "down"
			h.logger.Error("status check: redis down", zap.Error(err))
		}
	}

	response := models.StatusResponse{
		Status:            "active",
		RegisteredClients: h.registry.Count(),
		UptimeSeconds:     time.Since(h.startedAt).Seconds(),
		Version:           h.config.AppVersion,
		Idempotency:       idemStatus,
	}

	h.logger.Debug("status request served",
		zap.Int("registered_clients", response.RegisteredClients),
		zap.String("idempotency", idemStatus),
	)

	respondWithJSON(w, http.StatusOK, response)
}

// HandleRoot handles GET /
func (h *StatusHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome to the VISE API",
		"service": h.config.AppName,
		"version": h.config.AppVersion,
		"status":  "active",
		"endpoints": map[string]string{
			"client":   "/api/v1/client",
			"purchase": "/api/v1/purchase",
			"status":   "/api/v1/status",
			"metrics":  "/api/v1/metrics",
		},
	})
}
