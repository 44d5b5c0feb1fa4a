package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseRequestValidation(t *testing.T) {
	validDate := time.Date(2025, 9, 16, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		req         PurchaseRequest
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid request",
			req: PurchaseRequest{
				ClientID:        1,
				Amount:          250,
				Currency:        "USD",
				PurchaseDate:    validDate,
				PurchaseCountry: "Colombia",
			},
			expectError: false,
		},
		{
			name: "zero client id",
			req: PurchaseRequest{
				ClientID:     0,
				Amount:       250,
				Currency:     "USD",
				PurchaseDate: validDate,
			},
			expectError: true,
			errorMsg:    "clientId",
		},
		{
			name: "zero amount",
			req: PurchaseRequest{
				ClientID:     1,
				Amount:       0,
				Currency:     "USD",
				PurchaseDate: validDate,
			},
			expectError: true,
			errorMsg:    "amount",
		},
		{
			name: "negative amount",
			req: PurchaseRequest{
				ClientID:     1,
				Amount:       -10,
				Currency:     "USD",
				PurchaseDate: validDate,
			},
			expectError: true,
			errorMsg:    "amount",
		},
		{
			name: "bad currency code",
			req: PurchaseRequest{
				ClientID:     1,
				Amount:       250,
				Currency:     "US",
				PurchaseDate: validDate,
			},
			expectError: true,
			errorMsg:    "currency",
		},
		{
			name: "missing purchase date",
			req: PurchaseRequest{
				ClientID: 1,
				Amount:   250,
				Currency: "USD",
			},
			expectError: true,
			errorMsg:    "purchaseDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPurchaseRequestWeekday(t *testing.T) {
	req := PurchaseRequest{
		// 2025-09-16 is a Tuesday
		PurchaseDate: time.Date(2025, 9, 16, 10, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, time.Tuesday, req.Weekday())
}
