package cache

import (
	"context"
	"time"
)

// Store is a best-effort key-value cache with TTL expiry. A failing
// backend must never fail the caller: Get degrades to a miss and Set
// to a no-op.
type Store interface {
	// Get returns the cached value and whether the key was present
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a value under key for the given TTL
	Set(ctx context.Context, key string, value string, ttl time.Duration)
}

// DisabledStore never contacts a backing store. Get always misses and
// Set is a no-op. Used in the test environment.
type DisabledStore struct{}

// NewDisabledStore creates a disabled cache store
func NewDisabledStore() *DisabledStore {
	return &DisabledStore{}
}

// Get always reports a miss
func (*DisabledStore) Get(ctx context.Context, key string) (string, bool) {
	return "", false
}

// Set does nothing
func (*DisabledStore) Set(ctx context.Context, key string, value string, ttl time.Duration) {
}
