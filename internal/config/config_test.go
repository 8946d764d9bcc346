package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, "./data/ventory.db", cfg.DBPath)
	assert.Equal(t, AuthModeOpen, cfg.AuthMode)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.EnforceOwnership)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestFromEnv_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("AUTH_MODE", AuthModePassword)
	t.Setenv("ENFORCE_OWNERSHIP", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, AuthModePassword, cfg.AuthMode)
	assert.True(t, cfg.EnforceOwnership)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	t.Run("bad auth mode", func(t *testing.T) {
		t.Setenv("AUTH_MODE", "oauth")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "AUTH_MODE")
	})

	t.Run("bad token ttl", func(t *testing.T) {
		t.Setenv("TOKEN_TTL", "soon")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "TOKEN_TTL")
	})

	t.Run("bad ownership flag", func(t *testing.T) {
		t.Setenv("ENFORCE_OWNERSHIP", "maybe")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "ENFORCE_OWNERSHIP")
	})
}
