package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pantrylens/backend/internal/domain"
)

// entry is a single cached value with its expiration time
type entry struct {
	Value      interface{}
	Expiration time.Time
}

// MemoryCache is a thread-safe in-memory cache with TTL support, used for
// catalog lookup results so repeated barcode scans don't hit the catalog.
type MemoryCache struct {
	data  map[string]entry
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache and starts its cleanup loop.
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		data: make(map[string]entry),
	}

	// Remove expired entries every 10 minutes
	go c.cleanupExpired()

	return c
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) (interface{}, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	e, exists := c.data[key]
	if !exists || time.Now().After(e.Expiration) {
		return nil, domain.ErrCacheMiss
	}
	return e.Value, nil
}

// Set stores a value in the cache with TTL. Values go through a JSON round
// trip so readers always see the same shape regardless of the cache backend.
func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var stored interface{}
	if err := json.Unmarshal(jsonData, &stored); err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = entry{
		Value:      stored,
		Expiration: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Exists checks if a key exists in the cache and is not expired
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	e, exists := c.data[key]
	if !exists || time.Now().After(e.Expiration) {
		return false, nil
	}
	return true, nil
}

// Size returns the current number of items in the cache
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]entry)
}

func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, e := range c.data {
			if now.After(e.Expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}
