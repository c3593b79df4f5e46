// Package cache provides a process-wide TTL cache for upstream fetch
// results. Entries are validated at read time; there is no background
// eviction. The key space is bounded by the number of distinct tickers
// and ticker sets queried, so unbounded growth is acceptable.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is how long a cached upstream result stays valid.
const DefaultTTL = 5 * time.Minute

type entry[T any] struct {
	data  T
	added time.Time
}

// Cache is a mutex-guarded TTL cache. The zero value is not usable;
// construct with New.
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[string]entry[T]
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache with the given TTL.
func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached value for key if it is still within the TTL.
// Expired entries are treated as absent and left for overwrite.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.added) >= c.ttl {
		var zero T
		return zero, false
	}
	return e.data, true
}

// Set stores a value under key, replacing any previous entry.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[T]{data: value, added: c.now()}
}

// SetClock replaces the cache's time source. Test hook only.
func (c *Cache[T]) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
