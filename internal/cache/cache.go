package cache

import (
	"sync"
	"time"
)

// EntityType keys the cache by catalog entity. Typed keys make invalidation
// explicit: writers invalidate exactly one entity type, never a string
// prefix.
type EntityType string

const (
	EntityBreed   EntityType = "breed"
	EntityService EntityType = "service"
	EntityGroomer EntityType = "groomer"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache is an in-memory TTL cache for catalog reads. The catalog changes
// rarely and is read on every booking page load.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[EntityType]entry
}

// New creates a cache with the given TTL
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[EntityType]entry),
	}
}

// Get returns the cached value for the entity type, if fresh
func (c *Cache) Get(t EntityType) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[t]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores a value for the entity type
func (c *Cache) Set(t EntityType, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[t] = entry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Invalidate drops the cached value for the entity type
func (c *Cache) Invalidate(t EntityType) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, t)
}
