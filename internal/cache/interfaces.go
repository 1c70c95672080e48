package cache

import (
	"context"
	"errors"
	"time"
)

// Cache defines the generic cache interface for all cache implementations
type Cache interface {
	// Get retrieves a value from cache by key
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from cache by key
	Delete(ctx context.Context, key string) error

	// Close closes the cache connection
	Close() error

	// Stats returns cache statistics
	Stats() CacheStats
}

// CacheStats holds hit/miss counters for a cache instance
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// CacheType identifies a cache backend
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeRedis  CacheType = "redis"
)

// IsValid reports whether the cache type names a known backend
func (t CacheType) IsValid() bool {
	return t == CacheTypeMemory || t == CacheTypeRedis
}

// CacheConfig holds configuration for cache instances
type CacheConfig struct {
	// TTL is the default time-to-live for cache entries
	TTL time.Duration `json:"ttl"`

	// Prefix is added to all cache keys
	Prefix string `json:"prefix"`

	// Backend specifies the cache backend (memory, redis)
	Backend CacheType `json:"backend"`

	// MaxMemory is the maximum memory usage for memory cache (in bytes)
	MaxMemory int64 `json:"maxMemory"`

	// CleanupInterval for expired item cleanup
	CleanupInterval time.Duration `json:"cleanupInterval"`

	// Redis configuration
	Redis RedisConfig `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address      string        `json:"address"`
	Password     string        `json:"password"`
	Database     int           `json:"database"`
	PoolSize     int           `json:"poolSize"`
	MinIdleConns int           `json:"minIdleConns"`
	MaxConnAge   time.Duration `json:"maxConnAge"`
}

// DefaultCacheConfig returns the default cache configuration
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		TTL:             time.Hour,
		Backend:         CacheTypeMemory,
		MaxMemory:       100 * 1024 * 1024,
		CleanupInterval: 5 * time.Minute,
	}
}

var (
	// ErrKeyNotFound is returned when a key does not exist in the cache
	ErrKeyNotFound = errors.New("cache: key not found")
	// ErrCacheUnavailable is returned when the cache backend cannot be reached
	ErrCacheUnavailable = errors.New("cache: backend unavailable")
	// ErrInvalidCacheType is returned for unknown backend names
	ErrInvalidCacheType = errors.New("cache: invalid cache type")
	// ErrCacheClosed is returned when the cache has been closed
	ErrCacheClosed = errors.New("cache: closed")
)
