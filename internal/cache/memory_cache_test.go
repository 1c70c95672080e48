package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		c := NewMemoryCache(nil)
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

		got, err := c.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, []byte("v"), got)
	})

	t.Run("missing key", func(t *testing.T) {
		c := NewMemoryCache(nil)
		defer c.Close()

		_, err := c.Get(ctx, "absent")
		require.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("expired key", func(t *testing.T) {
		c := NewMemoryCache(nil)
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Nanosecond))
		time.Sleep(5 * time.Millisecond)

		_, err := c.Get(ctx, "k")
		require.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		c := NewMemoryCache(nil)
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
		require.NoError(t, c.Delete(ctx, "k"))

		_, err := c.Get(ctx, "k")
		require.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("closed cache rejects operations", func(t *testing.T) {
		c := NewMemoryCache(nil)
		require.NoError(t, c.Close())

		require.ErrorIs(t, c.Set(ctx, "k", []byte("v"), time.Minute), ErrCacheClosed)
		_, err := c.Get(ctx, "k")
		require.ErrorIs(t, err, ErrCacheClosed)
	})

	t.Run("stats count hits and misses", func(t *testing.T) {
		c := NewMemoryCache(nil)
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
		_, _ = c.Get(ctx, "k")
		_, _ = c.Get(ctx, "absent")

		stats := c.Stats()
		require.Equal(t, int64(1), stats.Hits)
		require.Equal(t, int64(1), stats.Misses)
	})
}

func TestNewCache(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		c, err := NewCache(&CacheConfig{Backend: CacheTypeMemory, CleanupInterval: time.Minute})
		require.NoError(t, err)
		defer c.Close()
		require.IsType(t, &MemoryCache{}, c)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := NewCache(&CacheConfig{Backend: "etcd"})
		require.ErrorIs(t, err, ErrInvalidCacheType)
	})
}
