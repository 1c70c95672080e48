package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	require.Equal(t, "req-123", getRequestID(ctx))

	require.Empty(t, getRequestID(context.Background()))
}

func TestFormatLog(t *testing.T) {
	line := formatLog("INFO", "req-123", "hello %s", "world")
	require.Contains(t, line, "INFO")
	require.Contains(t, line, "req-123")
	require.Contains(t, line, "hello world")

	noID := formatLog("ERROR", "", "plain")
	require.Contains(t, noID, "plain")
	require.NotContains(t, noID, "[]")
}
