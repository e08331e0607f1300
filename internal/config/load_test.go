package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventboard/eventboard-api/internal/config"
)

// jwtSecret is long enough to satisfy the min=32 constraint.
const jwtSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("EVENTBOARD_DATABASE_URL", "postgres://localhost:5432/eventboard")
	t.Setenv("EVENTBOARD_AUTH_JWT_SECRET", jwtSecret)
	t.Setenv("EVENTBOARD_SERVER_PORT", "9090")
	t.Setenv("EVENTBOARD_SERVER_LOG_LEVEL", "debug")
	t.Setenv("EVENTBOARD_IMAGE_HOST_API_KEY", "test-key")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/eventboard", cfg.Database.URL)
	assert.Equal(t, jwtSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, "test-key", cfg.ImageHost.APIKey)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("EVENTBOARD_DATABASE_URL", "postgres://localhost:5432/eventboard")
	t.Setenv("EVENTBOARD_AUTH_JWT_SECRET", jwtSecret)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 30, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "https://api.imgbb.com/1/upload", cfg.ImageHost.UploadURL)
	assert.Empty(t, cfg.ImageHost.APIKey)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("EVENTBOARD_AUTH_JWT_SECRET", jwtSecret)

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_ShortJWTSecret(t *testing.T) {
	t.Setenv("EVENTBOARD_DATABASE_URL", "postgres://localhost:5432/eventboard")
	t.Setenv("EVENTBOARD_AUTH_JWT_SECRET", "too-short")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("EVENTBOARD_DATABASE_URL", "postgres://localhost:5432/eventboard")
	t.Setenv("EVENTBOARD_AUTH_JWT_SECRET", jwtSecret)
	t.Setenv("EVENTBOARD_SERVER_LOG_LEVEL", "verbose")

	_, err := config.Load()
	require.Error(t, err)
}
