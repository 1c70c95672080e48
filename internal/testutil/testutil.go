package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"testing"

	dbi "github.com/linkstash/linkstash/internal/database/interfaces"
	"github.com/linkstash/linkstash/internal/database/postgres"
)

// ShouldRunDatabaseTests reports whether integration tests against a
// real PostgreSQL instance are enabled.
func ShouldRunDatabaseTests() bool {
	return os.Getenv("RUN_DB_TESTS") == "1"
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// PostgresConfig builds a test database configuration from the
// environment.
func PostgresConfig() *dbi.PostgreSQLConfig {
	return &dbi.PostgreSQLConfig{
		Host:               getEnvOrDefault("TEST_PG_HOST", "localhost"),
		Port:               getEnvAsInt("TEST_PG_PORT", 5432),
		Username:           getEnvOrDefault("TEST_PG_USER", "postgres"),
		Password:           getEnvOrDefault("TEST_PG_PASSWORD", "postgres"),
		Database:           getEnvOrDefault("TEST_PG_DATABASE", "linkstash_test"),
		SSLMode:            getEnvOrDefault("TEST_PG_SSLMODE", "disable"),
		ConnectTimeout:     10,
		MaxOpenConnections: 5,
		MaxIdleConnections: 2,
	}
}

// PostgresSuite is a connected client plus a throwaway schema that is
// dropped when the test finishes.
type PostgresSuite struct {
	Client *postgres.Client
	Schema string
}

// SetupPostgres connects to the test database and provisions the full
// Linkstash schema inside an isolated, randomly named Postgres schema.
// The test is skipped when no database is reachable.
func SetupPostgres(t *testing.T) *PostgresSuite {
	t.Helper()

	ctx := context.Background()
	client, err := postgres.NewClient(ctx, PostgresConfig())
	if err != nil {
		t.Skipf("PostgreSQL not available, skipping test: %v", err)
	}

	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	schema := "test_" + hex.EncodeToString(suffix)

	if _, err := client.DB().ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema)); err != nil {
		client.Close()
		t.Fatalf("failed to create test schema: %v", err)
	}

	if _, err := client.DB().ExecContext(ctx, fmt.Sprintf(schemaDDL, schema)); err != nil {
		client.Close()
		t.Fatalf("failed to apply test schema: %v", err)
	}

	t.Cleanup(func() {
		_, _ = client.DB().ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA %s CASCADE", schema))
		client.Close()
	})

	return &PostgresSuite{Client: client, Schema: schema}
}

// schemaDDL mirrors migrations/0001_init.sql with every table name
// prefixed by the test schema.
const schemaDDL = `
	CREATE TABLE %[1]s.workspaces (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE %[1]s.spaces (
		id TEXT PRIMARY KEY,
		workspace_id TEXT NOT NULL REFERENCES %[1]s.workspaces(id),
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		icon VARCHAR(255) NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE %[1]s.collections (
		id TEXT PRIMARY KEY,
		space_id TEXT NOT NULL REFERENCES %[1]s.spaces(id),
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		icon VARCHAR(255) NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0,
		view_mode VARCHAR(20) NOT NULL DEFAULT 'grid',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE %[1]s.bookmarks (
		id TEXT PRIMARY KEY,
		collection_id TEXT NOT NULL REFERENCES %[1]s.collections(id),
		title VARCHAR(500) NOT NULL,
		url TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		favicon TEXT NOT NULL DEFAULT '',
		preview JSONB NOT NULL DEFAULT '{}',
		tags TEXT[] NOT NULL DEFAULT '{}',
		is_pinned BOOLEAN NOT NULL DEFAULT FALSE,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE %[1]s.shares (
		id TEXT PRIMARY KEY,
		workspace_id TEXT NOT NULL REFERENCES %[1]s.workspaces(id),
		view_key VARCHAR(128) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at TIMESTAMPTZ
	);
`
