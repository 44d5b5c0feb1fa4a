package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vise-api-go/internal/config"
	"vise-api-go/internal/domain"
	"vise-api-go/internal/models"
	"vise-api-go/internal/registry"
)

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()

	handler.HandleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestReadyHandlerWithoutRedis(t *testing.T) {
	handler := NewHealthHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil)
	w := httptest.NewRecorder()

	handler.HandleReady(w, req)

	// With the idempotency cache disabled there is nothing to wait for
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ready")
}

func TestStatusHandler(t *testing.T) {
	reg := registry.NewRegistry(nil)
	reg.Register(domain.Client{Name: "a", CardType: domain.CardClassic})
	reg.Register(domain.Client{Name: "b", CardType: domain.CardGold})

	cfg := &config.Config{AppName: "vise-api", AppVersion: "test"}
	handler := NewStatusHandler(reg, nil, cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, 2, resp.RegisteredClients)
	assert.Equal(t, "test", resp.Version)
	assert.Equal(t, "disabled", resp.Idempotency)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, 0.0)
}

func TestRootHandler(t *testing.T) {
	cfg := &config.Config{AppName: "vise-api", AppVersion: "test"}
	handler := NewStatusHandler(registry.NewRegistry(nil), nil, cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.HandleRoot(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to the VISE API")
}
