package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDRESS", "HTTP_READ_TIMEOUT", "SHUTDOWN_TIMEOUT", "MAX_BATCH_SIZE", "CORS_ALLOWED_ORIGIN"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, 5*time.Second, cfg.HTTPReadTimeout)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, 100, cfg.MaxBatchSize)
	require.Equal(t, "http://localhost:5173", cfg.CORSAllowedOrigin)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("HTTP_WRITE_TIMEOUT", "3s")
	t.Setenv("MAX_BATCH_SIZE", "0")

	cfg := Load()
	require.Equal(t, ":9090", cfg.HTTPAddress)
	require.Equal(t, 3*time.Second, cfg.HTTPWriteTimeout)
	require.Equal(t, 0, cfg.MaxBatchSize)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("HTTP_IDLE_TIMEOUT", "soon")
	t.Setenv("MAX_BATCH_SIZE", "-4")

	cfg := Load()
	require.Equal(t, 60*time.Second, cfg.HTTPIdleTimeout)
	require.Equal(t, 100, cfg.MaxBatchSize)
}
