package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventboard/eventboard-api/internal/config"
)

func TestSetup_ValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		t.Run(level, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
			require.NoError(t, err)
			require.NotNil(t, logger)
		})
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	_, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "verbose"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestFromContext(t *testing.T) {
	t.Run("returns stored logger", func(t *testing.T) {
		stored := slog.Default().With("component", "test")
		ctx := WithLogger(context.Background(), stored)
		assert.Same(t, stored, FromContext(ctx))
	})

	t.Run("falls back to default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})
}

func TestFromContextOrDefault(t *testing.T) {
	def := slog.Default().With("component", "fallback")

	t.Run("prefers context logger", func(t *testing.T) {
		stored := slog.Default().With("component", "stored")
		ctx := WithLogger(context.Background(), stored)
		assert.Same(t, stored, FromContextOrDefault(ctx, def))
	})

	t.Run("falls back to provided default", func(t *testing.T) {
		assert.Same(t, def, FromContextOrDefault(context.Background(), def))
	})

	t.Run("nil default falls back to process default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
	})
}
