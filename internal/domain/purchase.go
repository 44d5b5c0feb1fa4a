package domain

import "time"

// PurchaseRequest represents a purchase submitted against an issued card.
// It is consumed once by the purchase processor and never stored.
type PurchaseRequest struct {
	ClientID        int       `json:"clientId"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	PurchaseDate    time.Time `json:"purchaseDate"`
	PurchaseCountry string    `json:"purchaseCountry"`
}

// Validate validates purchase data
func (p *PurchaseRequest) Validate() error {
	if p.ClientID < 1 {
		return NewValidationError("clientId", "client id must be positive")
	}
	if p.Amount <= 0 {
		return NewValidationError("amount", "amount must be greater than zero")
	}
	if len(p.Currency) != 3 {
		return NewValidationError("currency", "currency must be a 3-letter code")
	}
	if p.PurchaseDate.IsZero() {
		return NewValidationError("purchaseDate", "purchase date is required")
	}
	return nil
}

// Weekday returns the calendar weekday of the purchase
func (p *PurchaseRequest) Weekday() time.Weekday {
	return p.PurchaseDate.Weekday()
}
