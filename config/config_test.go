package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("SERVICE_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, defaultServiceTimeout, cfg.ServiceTimeout)
}

func TestLoadServiceTimeout(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("SERVICE_TIMEOUT", "250ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.ServiceTimeout)
}

func TestLoadInvalidServiceTimeoutFallsBack(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("SERVICE_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultServiceTimeout, cfg.ServiceTimeout)
}

func TestNewLogger(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("LOG_LEVEL", "debug")

	logger := NewLogger()
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
