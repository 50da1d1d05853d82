package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "taskforge", cfg.AppName)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Auth.LoginMaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Auth.LoginWindow)
	assert.Equal(t, "./data/journal.db", cfg.Journal.Path)
	assert.True(t, cfg.Migrations.Enabled)
	assert.NotEmpty(t, cfg.Database.URL)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("BCRYPT_COST", "6")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Address())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 6, cfg.Auth.BcryptCost)
	assert.Equal(t, "postgres://u:p@db:5432/app?sslmode=disable", cfg.Database.URL)
}

func TestLoad_DurationFromSeconds(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8*time.Second, cfg.Context.RequestTimeout)
}
