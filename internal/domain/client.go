package domain

import "time"

// Client represents an issued VISE card holder.
// Created by the registry after a successful eligibility decision and
// immutable thereafter — there are no update or delete operations.
type Client struct {
	ID             int       `json:"clientId"`
	Name           string    `json:"name"`
	Country        string    `json:"country"`
	MonthlyIncome  float64   `json:"monthlyIncome"`
	ViseClubMember bool      `json:"viseClubMember"`
	CardType       CardType  `json:"cardType"`
	RegisteredAt   time.Time `json:"registeredAt"`
}

// ClientApplication represents a request to issue a card
type ClientApplication struct {
	Name           string   `json:"name"`
	Country        string   `json:"country"`
	MonthlyIncome  float64  `json:"monthlyIncome"`
	ViseClubMember bool     `json:"viseClubMember"`
	CardType       CardType `json:"cardType"`
}

// Validate validates application data
func (a *ClientApplication) Validate() error {
	if a.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if a.MonthlyIncome < 0 {
		return NewValidationError("monthlyIncome", "monthly income cannot be negative")
	}
	if !a.CardType.IsValid() {
		return NewValidationError("cardType", "unknown card type: "+a.CardType.String())
	}
	return nil
}
