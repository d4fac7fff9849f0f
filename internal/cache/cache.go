// Package cache provides a small in-memory TTL cache for remote lookups that
// change rarely, such as the saved-query catalog.
package cache

import (
	"time"

	"github.com/robfig/go-cache"
)

// CleanupInterval is how often expired cache entries are removed.
const CleanupInterval = 30 * time.Second

// Cache wraps robfig/go-cache. A TTL of 0 disables caching entirely, which
// keeps the gateway stateless when operators want every read to hit the
// remote system.
type Cache struct {
	store *cache.Cache
	ttl   time.Duration
}

// New creates a new Cache instance using in-memory storage.
// If ttl is 0, caching is disabled.
func New(ttl time.Duration) *Cache {
	return &Cache{
		store: cache.New(0, CleanupInterval),
		ttl:   ttl,
	}
}

// Set stores a value with the configured TTL. No-op when caching is disabled.
func (c *Cache) Set(key string, value interface{}) {
	if c.ttl == 0 {
		return
	}

	c.store.Set(key, value, c.ttl)
}

// Get retrieves a value. Returns nil, false when absent, expired, or when
// caching is disabled.
func (c *Cache) Get(key string) (interface{}, bool) {
	if c.ttl == 0 {
		return nil, false
	}

	return c.store.Get(key)
}

// Delete removes a value from the cache.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// IsEnabled returns whether caching is enabled (TTL > 0).
func (c *Cache) IsEnabled() bool {
	return c.ttl > 0
}

// Clear removes all items from the cache.
func (c *Cache) Clear() {
	c.store.Flush()
}
