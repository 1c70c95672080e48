package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("POSTGRES_HOST", "db.internal")
		t.Setenv("POSTGRES_PORT", "5433")
		t.Setenv("CACHE_BACKEND", "redis")
		t.Setenv("CACHE_TTL", "30m")
		t.Setenv("PREVIEW_TIMEOUT", "2s")
		t.Setenv("DEBUG", "true")

		cfg, err := LoadFromEnv()
		require.NoError(t, err)

		require.Equal(t, 9090, cfg.Server.Port)
		require.True(t, cfg.Server.Debug)
		require.Equal(t, "db.internal", cfg.Database.Postgres.Host)
		require.Equal(t, 5433, cfg.Database.Postgres.Port)
		require.Equal(t, "redis", cfg.Cache.Backend)
		require.Equal(t, 30*time.Minute, cfg.Cache.TTL)
		require.Equal(t, 2*time.Second, cfg.Preview.Timeout)
	})

	t.Run("applies defaults for missing values", func(t *testing.T) {
		cfg, err := LoadFromEnv()
		require.NoError(t, err)

		require.Equal(t, "/api", cfg.Server.BaseRoute)
		require.Equal(t, "memory", cfg.Cache.Backend)
		require.Equal(t, 5*time.Second, cfg.Preview.Timeout)
		require.NotEmpty(t, cfg.Preview.UserAgent)
		require.Equal(t, "linkstash-api", cfg.App.Name)
	})

	t.Run("falls back to the default on unparseable values", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "not-a-number")
		t.Setenv("DEBUG", "not-a-boolean")
		t.Setenv("CACHE_TTL", "not-a-duration")

		cfg, err := LoadFromEnv()
		require.NoError(t, err)

		require.Equal(t, 8080, cfg.Server.Port)
		require.False(t, cfg.Server.Debug)
		require.Equal(t, time.Hour, cfg.Cache.TTL)
	})

	t.Run("rejects unknown cache backends", func(t *testing.T) {
		t.Setenv("CACHE_BACKEND", "memcached")

		_, err := LoadFromEnv()
		require.Error(t, err)
		require.Contains(t, err.Error(), "cache backend")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Postgres: PostgreSQLConfig{Host: "localhost"}},
			Cache:    CacheConfig{Backend: "memory"},
			Preview:  PreviewConfig{Timeout: 5 * time.Second},
		}
	}

	require.NoError(t, valid().Validate())

	badPort := valid()
	badPort.Server.Port = -1
	require.Error(t, badPort.Validate())

	noHost := valid()
	noHost.Database.Postgres.Host = ""
	require.Error(t, noHost.Validate())

	badTimeout := valid()
	badTimeout.Preview.Timeout = 0
	require.Error(t, badTimeout.Validate())
}
