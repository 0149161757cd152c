package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSecret = "config-test-secret-at-least-32-chars"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TASKDECK_DATABASE_URL", "postgres://user:pw@localhost:5432/taskdeck")
	t.Setenv("TASKDECK_AUTH_JWT_SECRET", validSecret)
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "postgres://user:pw@localhost:5432/taskdeck", cfg.Database.URL)
	assert.Equal(t, validSecret, cfg.Auth.JWTSecret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TASKDECK_SERVER_PORT", "9090")
	t.Setenv("TASKDECK_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TASKDECK_AUTH_TOKEN_LIFETIME_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("TASKDECK_DATABASE_URL", "")
	t.Setenv("TASKDECK_AUTH_JWT_SECRET", validSecret)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_ShortJWTSecret(t *testing.T) {
	t.Setenv("TASKDECK_DATABASE_URL", "postgres://localhost/taskdeck")
	t.Setenv("TASKDECK_AUTH_JWT_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_RejectsBogusLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TASKDECK_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}
