package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vise-api-go/internal/domain"
	"vise-api-go/internal/eligibility"
	"vise-api-go/internal/models"
	"vise-api-go/internal/registry"
)

func newTestClientHandler() (*ClientHandler, *registry.Registry) {
	reg := registry.NewRegistry(nil)
	return NewClientHandler(eligibility.NewValidator(), reg, nil), reg
}

func TestHandleSubmit(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		expectedStatus int
		expectSuccess  bool
		expectMessage  string
	}{
		{
			name:           "valid gold application",
			requestBody:    `{"name":"Juan Torres","country":"Colombia","monthlyIncome":5000,"viseClubMember":true,"cardType":"Gold"}`,
			expectedStatus: http.StatusOK,
			expectSuccess:  true,
			expectMessage:  "client approved for Gold card",
		},
		{
			name:           "gold below income floor is a business rejection",
			requestBody:    `{"name":"Ana Gomez","country":"Colombia","monthlyIncome":400,"viseClubMember":false,"cardType":"Gold"}`,
			expectedStatus: http.StatusOK,
			expectSuccess:  false,
			expectMessage:  "insufficient monthly income for Gold",
		},
		{
			name:           "spanish alias payload",
			requestBody:    `{"nombre":"Juan Torres","pais":"Colombia","ingresoMensual":5000,"miembroClub":true,"tipoTarjeta":"Gold"}`,
			expectedStatus: http.StatusOK,
			expectSuccess:  true,
			expectMessage:  "client approved for Gold card",
		},
		{
			name:           "invalid json",
			requestBody:    `{invalid}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			requestBody:    `{"country":"Colombia","monthlyIncome":5000,"cardType":"Gold"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown card type",
			requestBody:    `{"name":"Juan Torres","monthlyIncome":5000,"cardType":"Diamond"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative income",
			requestBody:    `{"name":"Juan Torres","monthlyIncome":-10,"cardType":"Gold"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestClientHandler()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/client", strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.HandleSubmit(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.RegistrationResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectSuccess, resp.Success)
			assert.Equal(t, tt.expectMessage, resp.Message)
			if tt.expectSuccess {
				assert.Equal(t, "Registered", resp.Status)
				assert.Equal(t, 1, resp.ClientID)
			} else {
				assert.Equal(t, "Rejected", resp.Status)
				assert.Zero(t, resp.ClientID)
			}
		})
	}
}

func TestHandleSubmitRejectionLeavesRegistryUnchanged(t *testing.T) {
	handler, reg := newTestClientHandler()

	body := `{"name":"Ana Gomez","monthlyIncome":400,"cardType":"Gold"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/client", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleSubmit(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, reg.Count())
}

func TestHandleSubmitAssignsSequentialIDs(t *testing.T) {
	handler, _ := newTestClientHandler()

	for want := 1; want <= 3; want++ {
		body := `{"name":"Juan Torres","monthlyIncome":5000,"viseClubMember":true,"cardType":"Gold"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/client", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.HandleSubmit(w, req)

		var resp models.RegistrationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, want, resp.ClientID)
	}
}

func TestHandleGet(t *testing.T) {
	handler, reg := newTestClientHandler()
	clientID := reg.Register(domain.Client{
		Name:           "Juan Torres",
		Country:        "Colombia",
		MonthlyIncome:  5000,
		ViseClubMember: true,
		CardType:       domain.CardGold,
	})

	r := chi.NewRouter()
	r.Get("/api/v1/client/{client_id}", handler.HandleGet)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/client/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var client domain.Client
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &client))
		assert.Equal(t, clientID, client.ID)
		assert.Equal(t, "Juan Torres", client.Name)
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/client/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "client not found")
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/client/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
