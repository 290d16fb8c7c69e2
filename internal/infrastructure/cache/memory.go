package cache

import (
	"context"
	"sync"
	"time"

	"github.com/dishdecider/backend/internal/domain"
)

// cacheItem represents a single item in the cache with expiration
type cacheItem struct {
	Value      []byte
	Expiration time.Time
}

// MemoryCache is a thread-safe in-memory cache with TTL support
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
	stop  chan struct{}
	once  sync.Once
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]cacheItem),
		stop: make(chan struct{}),
	}

	// Start cleanup goroutine to remove expired entries every 10 minutes
	go cache.cleanupExpired(10 * time.Minute)

	return cache
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	// Check if expired
	if time.Now().After(item.Expiration) {
		return nil, domain.ErrCacheMiss
	}

	return copyBytes(item.Value), nil
}

// Set stores a copy of value in the cache with TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheItem{
		Value:      copyBytes(value),
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

	item, exists := c.data[key]
	if !exists {
		return false, nil
	}

	return !time.Now().After(item.Expiration), nil
}

// Close stops the cleanup goroutine
func (c *MemoryCache) Close() error {
	c.once.Do(func() { close(c.stop) })
	return nil
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.removeExpired(time.Now())
		}
	}
}

func (c *MemoryCache) removeExpired(now time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for key, item := range c.data {
		if now.After(item.Expiration) {
			delete(c.data, key)
		}
	}
}

// Size returns the current number of items in the cache (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheItem)
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
