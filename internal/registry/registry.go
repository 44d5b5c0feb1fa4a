// Package registry owns the authoritative set of issued-card records.
package registry

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"vise-api-go/internal/domain"
)

// Registry is the single source of truth for issued cards. Identifier
// assignment and record insertion happen as one atomic unit under the
// write lock, so concurrent registrations never share an id and no
// insertion is lost. Records are volatile: process lifetime only.
type Registry struct {
	mu      sync.RWMutex
	lastID  int
	clients map[int]domain.Client
	logger  *zap.Logger
}

// NewRegistry creates an empty client registry
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		clients: make(map[int]domain.Client),
		logger:  logger,
	}
}

// Register assigns the next identifier to the client, stores the record,
// and returns the assigned id. Ids are strictly increasing from 1.
func (r *Registry) Register(client domain.Client) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	client.ID = r.lastID
	if client.RegisteredAt.IsZero() {
		client.RegisteredAt = time.Now()
	}
	r.clients[client.ID] = client

	r.logger.Debug("client registered",
		zap.Int("client_id", client.ID),
		zap.String("card_type", client.CardType.String()),
	)
	return client.ID
}

// Get looks up a registered client by id
func (r *Registry) Get(id int) (domain.Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[id]
	return client, ok
}

// Count returns the number of registered clients
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.clients)
}
