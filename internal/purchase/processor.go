// Package purchase prices purchases against issued cards and approves or
// rejects them.
package purchase

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"vise-api-go/internal/api/middleware"
	"vise-api-go/internal/domain"
)

// ClientLookup resolves registered clients by id. Satisfied by the registry.
type ClientLookup interface {
	Get(id int) (domain.Client, bool)
}

// Result is the outcome of processing a purchase. Rejection is a normal
// business outcome, not an error.
type Result struct {
	Approved       bool
	Reason         string
	TransactionID  string
	ClientID       int
	OriginalAmount float64
	Discount       float64
	FinalAmount    float64
	Benefit        string
}

// Processor computes the discount stack for purchases.
type Processor struct {
	lookup ClientLookup
	idgen  *TransactionIDGenerator
	logger *zap.Logger
}

// NewProcessor creates a purchase processor
func NewProcessor(lookup ClientLookup, idgen *TransactionIDGenerator, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		lookup: lookup,
		idgen:  idgen,
		logger: logger,
	}
}

// Process resolves the client, accumulates the applicable discount
// percentages in rule order, and mints a transaction reference on
// approval. An unknown client id is the only rejection path; the
// returned error covers internal faults only.
func (p *Processor) Process(req domain.PurchaseRequest) (Result, error) {
	client, ok := p.lookup.Get(req.ClientID)
	if !ok {
		p.logger.Info("purchase rejected: client not found",
			zap.Int("client_id", req.ClientID))
		middleware.PurchasesTotal.WithLabelValues("", "rejected").Inc()
		return Result{
			Approved: false,
			Reason:   "client not found",
			ClientID: req.ClientID,
		}, nil
	}

	var discount float64
	var labels []string
	for _, rule := range discountRules {
		if rule.Applies(client, req) {
			discount += req.Amount * rule.Percent / 100
			labels = append(labels, rule.Label)
		}
	}

	discount = round2(discount)

	txnID, err := p.idgen.Generate()
	if err != nil {
		p.logger.Error("transaction id generation failed", zap.Error(err))
		middleware.PurchasesTotal.WithLabelValues(client.CardType.String(), "error").Inc()
		return Result{}, err
	}

	result := Result{
		Approved:       true,
		TransactionID:  txnID,
		ClientID:       client.ID,
		OriginalAmount: req.Amount,
		Discount:       discount,
		FinalAmount:    round2(req.Amount - discount),
		Benefit:        strings.Join(labels, " + "),
	}

	p.logger.Info("purchase approved",
		zap.Int("client_id", client.ID),
		zap.String("card_type", client.CardType.String()),
		zap.String("transaction_id", txnID),
		zap.Float64("amount", req.Amount),
		zap.Float64("discount", discount),
	)

	middleware.PurchasesTotal.WithLabelValues(client.CardType.String(), "approved").Inc()
	middleware.DiscountAmount.Observe(discount)
	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
