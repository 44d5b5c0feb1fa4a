// Package redisclient provides Redis key pattern definitions for the VISE API service.
package redisclient

import "fmt"

// RedisPrefix is the prefix for all Redis keys in the VISE API service
const RedisPrefix = "vise:"

// IdempotencyKey returns the Redis key for a stored purchase response
func IdempotencyKey(requestKey string) string {
	return fmt.Sprintf("%sidempotency:%s", RedisPrefix, requestKey)
}
