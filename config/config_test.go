package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("MAX_UPLOAD_MB", "")

	cfg := FromEnv()

	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "access_token", cfg.Auth.CookieName)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.False(t, cfg.UPSApi.Enabled())

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DSN")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://crm@localhost/crm")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "not-a-number")
	t.Setenv("UPS_API_BASE_URI", "https://ups.example")
	t.Setenv("UPS_API_CLIENT_ID", "id")
	t.Setenv("UPS_API_CLIENT_SECRET", "secret")

	cfg := FromEnv()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 20, cfg.RateLimit.RequestsPerSecond)
	assert.True(t, cfg.UPSApi.Enabled())
}
