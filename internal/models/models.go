package models

import (
	"time"

	"vise-api-go/internal/domain"
)

// ClientApplicationRequest is the inbound payload for POST /client.
// Localized (Spanish) field names are accepted as aliases and mapped to
// the canonical shape here — the core never sees the alternate names.
type ClientApplicationRequest struct {
	Name           string   `json:"name"`
	Country        string   `json:"country"`
	MonthlyIncome  *float64 `json:"monthlyIncome"`
	ViseClubMember *bool    `json:"viseClubMember"`
	CardType       string   `json:"cardType"`

	// Localized aliases
	Nombre         string   `json:"nombre,omitempty"`
	Pais           string   `json:"pais,omitempty"`
	IngresoMensual *float64 `json:"ingresoMensual,omitempty"`
	MiembroClub    *bool    `json:"miembroClub,omitempty"`
	ViseClub       *bool    `json:"viseClub,omitempty"`
	TipoTarjeta    string   `json:"tipoTarjeta,omitempty"`
}

// ToDomain canonicalizes the request, preferring canonical field names
// over their localized aliases when both are present.
func (r *ClientApplicationRequest) ToDomain() domain.ClientApplication {
	app := domain.ClientApplication{
		Name:     firstNonEmpty(r.Name, r.Nombre),
		Country:  firstNonEmpty(r.Country, r.Pais),
		CardType: domain.CardType(firstNonEmpty(r.CardType, r.TipoTarjeta)),
	}
	if r.MonthlyIncome != nil {
		app.MonthlyIncome = *r.MonthlyIncome
	} else if r.IngresoMensual != nil {
		app.MonthlyIncome = *r.IngresoMensual
	}
	if r.ViseClubMember != nil {
		app.ViseClubMember = *r.ViseClubMember
	} else if r.ViseClub != nil {
		app.ViseClubMember = *r.ViseClub
	} else if r.MiembroClub != nil {
		app.ViseClubMember = *r.MiembroClub
	}
	return app
}

// PurchaseSubmitRequest is the inbound payload for POST /purchase
type PurchaseSubmitRequest struct {
	ClientID        *int       `json:"clientId"`
	Amount          *float64   `json:"amount"`
	Currency        string     `json:"currency"`
	PurchaseDate    *time.Time `json:"purchaseDate"`
	PurchaseCountry string     `json:"purchaseCountry"`

	// Localized aliases
	ClienteID   *int       `json:"clienteId,omitempty"`
	Monto       *float64   `json:"monto,omitempty"`
	Moneda      string     `json:"moneda,omitempty"`
	FechaCompra *time.Time `json:"fechaCompra,omitempty"`
	PaisCompra  string     `json:"paisCompra,omitempty"`
}

// ToDomain canonicalizes the request
func (r *PurchaseSubmitRequest) ToDomain() domain.PurchaseRequest {
	req := domain.PurchaseRequest{
		Currency:        firstNonEmpty(r.Currency, r.Moneda),
		PurchaseCountry: firstNonEmpty(r.PurchaseCountry, r.PaisCompra),
	}
	if r.ClientID != nil {
		req.ClientID = *r.ClientID
	} else if r.ClienteID != nil {
		req.ClientID = *r.ClienteID
	}
	if r.Amount != nil {
		req.Amount = *r.Amount
	} else if r.Monto != nil {
		req.Amount = *r.Monto
	}
	if r.PurchaseDate != nil {
		req.PurchaseDate = *r.PurchaseDate
	} else if r.FechaCompra != nil {
		req.PurchaseDate = *r.FechaCompra
	}
	return req
}

// RegistrationResponse is the outbound payload for POST /client
type RegistrationResponse struct {
	Success  bool   `json:"success"`
	Status   string `json:"status"`
	Message  string `json:"message"`
	ClientID int    `json:"clientId,omitempty"`
	Name     string `json:"name,omitempty"`
	CardType string `json:"cardType,omitempty"`
}

// PurchaseDetail carries the priced purchase on approval
type PurchaseDetail struct {
	ClientID        int      `json:"clientId"`
	OriginalAmount  float64  `json:"originalAmount"`
	DiscountApplied *float64 `json:"discountApplied,omitempty"`
	FinalAmount     float64  `json:"finalAmount"`
	Benefit         string   `json:"benefit,omitempty"`
}

// PurchaseResponse is the outbound payload for POST /purchase
type PurchaseResponse struct {
	Success       bool            `json:"success"`
	Status        string          `json:"status"`
	Message       string          `json:"message"`
	TransactionID string          `json:"transactionId,omitempty"`
	Purchase      *PurchaseDetail `json:"purchase,omitempty"`
}

// StatusResponse is the outbound payload for GET /status
type StatusResponse struct {
	Status            string  `json:"status"`
	RegisteredClients int     `json:"registered_clients"`
	UptimeSeconds     float64 `json:"uptime_seconds"`
	Version           string  `json:"version"`
	Idempotency       string  `json:"idempotency"`
}

// HealthResponse is the outbound payload for health probes
type HealthResponse struct {
	Status string `json:"status"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
