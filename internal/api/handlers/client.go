package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"vise-api-go/internal/api/middleware"
	"vise-api-go/internal/domain"
	"vise-api-go/internal/eligibility"
	"vise-api-go/internal/models"
	"vise-api-go/internal/registry"
)

// ClientHandler handles card application and client lookup requests
type ClientHandler struct {
	validator *eligibility.Validator
	registry  *registry.Registry
	logger    *zap.Logger
}

// NewClientHandler creates a new client handler
func NewClientHandler(validator *eligibility.Validator, reg *registry.Registry, logger *zap.Logger) *ClientHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientHandler{
		validator: validator,
		registry:  reg,
		logger:    logger,
	}
}

// HandleSubmit handles POST /api/v1/client
func (h *ClientHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	// Decode JSON body
	var req models.ClientApplicationRequest
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode client application", zap.Error(err))
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app := req.ToDomain()
	if err := app.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			respondWithError(w, http.StatusBadRequest, verr.Error())
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	decision := h.validator.Evaluate(app)
	if !decision.Accepted {
		h.logger.Info("card application rejected",
			zap.String("card_type", app.CardType.String()),
			zap.String("reason", decision.Reason),
		)
		middleware.RegistrationsTotal.WithLabelValues(app.CardType.String(), "rejected").Inc()
		respondWithJSON(w, http.StatusOK, models.RegistrationResponse{
			Success: false,
			Status:  "Rejected",
			Message: decision.Reason,
		})
		return
	}

	clientID := h.registry.Register(domain.Client{
		Name:           app.Name,
		Country:        app.Country,
		MonthlyIncome:  app.MonthlyIncome,
		ViseClubMember: app.ViseClubMember,
		CardType:       app.CardType,
	})

	h.logger.Info("client registered",
		zap.Int("client_id", clientID),
		zap.String("card_type", app.CardType.String()),
	)
	middleware.RegistrationsTotal.WithLabelValues(app.CardType.String(), "registered").Inc()
	middleware.RegisteredClients.Set(float64(h.registry.Count()))

	respondWithJSON(w, http.StatusOK, models.RegistrationResponse{
		Success:  true,
		Status:   "Registered",
		Message:  fmt.Sprintf("client approved for %s card", app.CardType),
		ClientID: clientID,
		Name:     app.Name,
		CardType: app.CardType.String(),
	})
}

// HandleGet handles GET /api/v1/client/{client_id}
func (h *ClientHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "client_id")
	clientID, err := strconv.Atoi(idParam)
	if err != nil || clientID < 1 {
		respondWithError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	client, ok := h.registry.Get(clientID)
	if !ok {
		respondWithError(w, http.StatusNotFound, "client not found")
		return
	}

	respondWithJSON(w, http.StatusOK, client)
}
