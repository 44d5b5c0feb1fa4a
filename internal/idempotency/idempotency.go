// Package idempotency deduplicates retried purchase submissions through a
// Redis-backed response cache keyed by the caller's Idempotency-Key header.
package idempotency

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"vise-api-go/internal/redisclient"
)

const lockPlaceholder = "_lock"

// Lua script for atomic replay check + claim acquisition.
// Returns:
//   - The stored response body if this key was already processed
//   - false if the claim was acquired (caller should proceed)
//
// The claim is a placeholder value with a 30s TTL. If the process crashes
// after claiming, the TTL ensures cleanup.
const checkAndClaimScript = `
local key = KEYS[1]

local existing = redis.call('GET', key)
if existing then
    return existing
end

redis.call('SET', key, '_lock', 'EX', 30)
return false
`

// Store caches purchase responses so a retried submission replays the
// original outcome instead of minting a second transaction.
type Store struct {
	redis  *redisclient.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewStore creates an idempotency store
func NewStore(redis *redisclient.Client, ttl time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		redis:  redis,
		ttl:    ttl,
		logger: logger,
	}
}

// CheckAndClaim atomically checks for a stored response and acquires a
// claim if none exists. Returns:
//   - (body, true, nil) if a stored response was found
//   - (nil, false, nil) if the claim was acquired (caller should proceed)
//   - (nil, false, err) on Redis error
func (s *Store) CheckAndClaim(ctx context.Context, requestKey string) ([]byte, bool, error) {
	key := redisclient.IdempotencyKey(requestKey)

	result, err := s.redis.GetRedis().Eval(ctx, checkAndClaimScript, []string{key}).Result()
	if err != nil {
		return nil, false, fmt.Errorf("idempotency check failed: %w", err)
	}

	body, ok := result.(string)
	if !ok {
		return nil, false, nil // Claim acquired, proceed
	}

	// If we only got the claim placeholder back (a concurrent request is
	// still in flight), treat as "not yet processed" — worst case the
	// purchase is priced twice, better than rejecting the request.
	if body == lockPlaceholder {
		return nil, false, nil
	}

	return []byte(body), true, nil
}

// StoreResponse overwrites the claim with the final response body
func (s *Store) StoreResponse(ctx context.Context, requestKey string, body []byte) error {
	key := redisclient.IdempotencyKey(requestKey)
	if err := s.redis.GetRedis().Set(ctx, key, body, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store idempotent response: %w", err)
	}
	return nil
}

// Release drops the claim so a retry can proceed after a processing failure
func (s *Store) Release(ctx context.Context, requestKey string) {
	key := redisclient.IdempotencyKey(requestKey)
	if err := s.redis.GetRedis().Del(ctx, key).Err(); err != nil {
		s.logger.Warn("failed to release idempotency claim",
			zap.String("key", requestKey), zap.Error(err))
	}
}
