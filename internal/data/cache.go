package data

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Cache TTLs per data class. PLUTO attributes change on the city's
// release cadence; street widths are effectively static; full analysis
// results expire quickly so rule-table updates surface.
const (
	TTLPluto       = 24 * time.Hour
	TTLStreetWidth = 7 * 24 * time.Hour
	TTLAnalysis    = 1 * time.Hour
)

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// Cache is an in-memory TTL cache shared by the PLUTO client and the
// API layer. Entries are namespaced by prefix ("pluto", "analysis",
// "street_width") so one BBL can key several data classes.
type Cache struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry
}

// NewCache creates a cache and starts its cleanup goroutine.
func NewCache() *Cache {
	c := &Cache{store: make(map[string]*cacheEntry)}
	go c.cleanup()
	return c
}

// Get retrieves a cached value if present and not expired.
func (c *Cache) Get(prefix, id string) (any, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[prefix+":"+id]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

// Set stores a value under prefix:id for the given TTL.
func (c *Cache) Set(prefix, id string, value any, ttl time.Duration) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[prefix+":"+id] = &cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// Delete removes one entry.
func (c *Cache) Delete(prefix, id string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.store, prefix+":"+id)
}

// Clear removes all entries.
func (c *Cache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*cacheEntry)
}

// cleanup periodically removes expired entries.
func (c *Cache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, entry := range c.store {
			if now.After(entry.expiresAt) {
				delete(c.store, key)
			}
		}
		c.mu.Unlock()
	}
}

// RequestKey hashes a request payload into a cache identifier so
// analysis results key on the full input, not just the BBL.
func RequestKey(payload []byte) string {
	hash := sha256.Sum256(payload)
	return hex.EncodeToString(hash[:])
}
