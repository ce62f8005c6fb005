package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const defaultCleanupInterval = 30 * time.Second

// cacheEntry wraps a cached value with expiration time
type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e *cacheEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// MemoryCache implements ReferenceCache with in-process storage. Suitable
// for a single catalog instance; entries do not survive restarts and are
// not shared across replicas.
type MemoryCache struct {
	entries sync.Map // map[string]*cacheEntry
	stopCh  chan struct{}
	stopped int32
}

// NewMemoryCache creates a memory cache and starts its sweeper goroutine
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{stopCh: make(chan struct{})}
	go c.cleanupExpired()
	return c
}

// Get returns the cached payload if present and fresh
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, ok := c.entries.Load(key)
	if !ok {
		return nil, false, nil
	}
	entry := value.(*cacheEntry)
	if entry.isExpired() {
		c.entries.Delete(key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

// Set stores a payload with the given TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.entries.Store(key, &cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
	return nil
}

// Invalidate removes the given keys
func (c *MemoryCache) Invalidate(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		c.entries.Delete(key)
	}
	return nil
}

// Close stops the sweeper goroutine
func (c *MemoryCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

// cleanupExpired periodically removes expired entries so unread keys do not
// pile up between requests
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.entries.Range(func(key, value any) bool {
				if value.(*cacheEntry).isExpired() {
					c.entries.Delete(key)
				}
				return true
			})
		}
	}
}

// Ensure MemoryCache implements ReferenceCache
var _ ReferenceCache = (*MemoryCache)(nil)
