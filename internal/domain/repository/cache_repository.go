package repository

import (
	"context"
	"time"
)

// CacheRepository defines byte-level cache access for response caching.
type CacheRepository interface {
	// Get returns the cached value for key, or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key from the cache.
	Delete(ctx context.Context, key string) error
}
