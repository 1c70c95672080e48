package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// cacheItem represents an item in the memory cache
type cacheItem struct {
	value      []byte
	expiration time.Time
}

// MemoryCache implements Cache using in-process storage
type MemoryCache struct {
	items         map[string]*cacheItem
	mutex         sync.RWMutex
	maxMemory     int64
	currentMemory int64
	hits          int64
	misses        int64
	cleanupTicker *time.Ticker
	cleanupDone   chan struct{}
	closed        bool
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache(config *CacheConfig) *MemoryCache {
	if config == nil {
		config = DefaultCacheConfig()
	}

	interval := config.CleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	c := &MemoryCache{
		items:         make(map[string]*cacheItem),
		maxMemory:     config.MaxMemory,
		cleanupTicker: time.NewTicker(interval),
		cleanupDone:   make(chan struct{}),
	}

	go c.cleanupLoop()

	return c
}

func (c *MemoryCache) cleanupLoop() {
	for {
		select {
		case <-c.cleanupTicker.C:
			c.removeExpired()
		case <-c.cleanupDone:
			return
		}
	}
}

func (c *MemoryCache) removeExpired() {
	now := time.Now()

	c.mutex.Lock()
	defer c.mutex.Unlock()
	for key, item := range c.items {
		if !item.expiration.IsZero() && now.After(item.expiration) {
			c.currentMemory -= int64(len(item.value))
			delete(c.items, key)
		}
	}
}

// Get retrieves a value from cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.closed {
		return nil, ErrCacheClosed
	}

	item, ok := c.items[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		return nil, ErrKeyNotFound
	}

	if !item.expiration.IsZero() && time.Now().After(item.expiration) {
		atomic.AddInt64(&c.misses, 1)
		return nil, ErrKeyNotFound
	}

	atomic.AddInt64(&c.hits, 1)
	return item.value, nil
}

// Set stores a value in cache with TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return ErrCacheClosed
	}

	var expiration time.Time
	if ttl > 0 {
		expiration = time.Now().Add(ttl)
	}

	if existing, ok := c.items[key]; ok {
		c.currentMemory -= int64(len(existing.value))
	}

	size := int64(len(value))
	if c.maxMemory > 0 && c.currentMemory+size > c.maxMemory {
		// Over budget: drop expired entries, then reject the write if still over.
		now := time.Now()
		for k, item := range c.items {
			if !item.expiration.IsZero() && now.After(item.expiration) {
				c.currentMemory -= int64(len(item.value))
				delete(c.items, k)
			}
		}
		if c.currentMemory+size > c.maxMemory {
			return nil
		}
	}

	c.items[key] = &cacheItem{value: value, expiration: expiration}
	c.currentMemory += size
	return nil
}

// Delete removes a value from cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return ErrCacheClosed
	}

	if item, ok := c.items[key]; ok {
		c.currentMemory -= int64(len(item.value))
		delete(c.items, key)
	}
	return nil
}

// Close stops the cleanup goroutine and releases all entries
func (c *MemoryCache) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	c.cleanupTicker.Stop()
	close(c.cleanupDone)
	c.items = make(map[string]*cacheItem)
	c.currentMemory = 0
	return nil
}

// Stats returns cache statistics
func (c *MemoryCache) Stats() CacheStats {
	return CacheStats{
		Hits:   atomic.LoadInt64(&c.hits),
		Misses: atomic.LoadInt64(&c.misses),
	}
}
