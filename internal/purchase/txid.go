package purchase

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// TransactionIDGenerator mints references for approved purchases in the
// shape TXN-<YYYYMMDDHHmm><8 hex>. With a minute-granularity timestamp and
// 32 bits of randomness collisions are possible in theory — acceptable for
// a reference, but do not treat these ids as cryptographically unique.
type TransactionIDGenerator struct{}

// NewTransactionIDGenerator creates a transaction id generator
func NewTransactionIDGenerator() *TransactionIDGenerator {
	return &TransactionIDGenerator{}
}

// Generate returns a fresh transaction reference
func (g *TransactionIDGenerator) Generate() (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate transaction id: %w", err)
	}
	return "TXN-" + time.Now().Format("200601021504") + hex.EncodeToString(suffix), nil
}
