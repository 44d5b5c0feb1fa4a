package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"vise-api-go/internal/domain"
	"vise-api-go/internal/idempotency"
	"vise-api-go/internal/models"
	"vise-api-go/internal/purchase"
)

// PurchaseHandler handles purchase submission requests
type PurchaseHandler struct {
	processor *purchase.Processor
	idem      *idempotency.Store
	logger    *zap.Logger
}

// NewPurchaseHandler creates a new purchase handler. The idempotency store
// may be nil, in which case retried submissions are priced again.
func NewPurchaseHandler(processor *purchase.Processor, idem *idempotency.Store, logger *zap.Logger) *PurchaseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PurchaseHandler{
		processor: processor,
		idem:      idem,
		logger:    logger,
	}
}

// Handle handles POST /api/v1/purchase
func (h *PurchaseHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Decode JSON body
	var req models.PurchaseSubmitRequest
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode purchase request", zap.Error(err))
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	purchaseReq := req.ToDomain()
	if err := purchaseReq.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			respondWithError(w, http.StatusBadRequest, verr.Error())
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Replay check: a retried submission must not mint a second transaction
	idemKey := r.Header.Get("Idempotency-Key")
	claimed := false
	if h.idem != nil && idemKey != "" {
		cached, found, err := h.idem.CheckAndClaim(ctx, idemKey)
		if err != nil {
			h.logger.Warn("idempotency check failed, processing anyway",
				zap.Error(err), zap.String("idempotency_key", idemKey))
		} else if found {
			h.logger.Info("replaying stored purchase response",
				zap.String("idempotency_key", idemKey))
			w.Header().Set("Idempotent-Replay", "true")
			respondWithRawJSON(w, http.StatusOK, cached)
			return
		} else {
			claimed = true
		}
	}

	result, err := h.processor.Process(purchaseReq)
	if err != nil {
		h.logger.Error("purchase processing failed",
			zap.Error(err), zap.Int("client_id", purchaseReq.ClientID))
		if claimed {
			h.idem.Release(ctx, idemKey)
		}
		respondWithError(w, http.StatusInternalServerError, "purchase processing failed")
		return
	}

	response := buildPurchaseResponse(result)

	// Business rejections are a normal outcome, not a transport error
	body, err := json.Marshal(response)
	if err != nil {
		h.logger.Error("failed to encode purchase response", zap.Error(err))
		if claimed {
			h.idem.Release(ctx, idemKey)
		}
		respondWithError(w, http.StatusInternalServerError, "purchase processing failed")
		return
	}

	if claimed {
		if err := h.idem.StoreResponse(ctx, idemKey, body); err != nil {
			h.logger.Warn("failed to store idempotent response",
				zap.Error(err), zap.String("idempotency_key", idemKey))
		}
	}

	respondWithRawJSON(w, http.StatusOK, body)
}

func buildPurchaseResponse(result purchase.Result) models.PurchaseResponse {
	if !result.Approved {
		return models.PurchaseResponse{
			Success: false,
			Status:  "Rejected",
			Message: result.Reason,
		}
	}

	detail := &models.PurchaseDetail{
		ClientID:       result.ClientID,
		OriginalAmount: result.OriginalAmount,
		FinalAmount:    result.FinalAmount,
		Benefit:        result.Benefit,
	}
	if result.Discount > 0 {
		discount := result.Discount
		detail.DiscountApplied = &discount
	}

	return models.PurchaseResponse{
		Success:       true,
		Status:        "Approved",
		Message:       "purchase approved",
		TransactionID: result.TransactionID,
		Purchase:      detail,
	}
}
