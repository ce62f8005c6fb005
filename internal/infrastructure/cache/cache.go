package cache

import (
	"context"
	"time"
)

// ReferenceCache is a read-through cache for reference data the catalog
// service serves on hot paths. Values are serialized payloads so the memory
// and Redis backends behave identically. Writers invalidate explicitly; a
// missed invalidation is bounded by the entry TTL.
type ReferenceCache interface {
	// Get returns the cached payload and whether it was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
	Close() error
}
