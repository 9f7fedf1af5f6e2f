package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8088", cfg.App.Port)
	assert.Equal(t, 15, cfg.JWT.AccessTokenExpiryMinutes)
	assert.Equal(t, 7, cfg.JWT.RefreshTokenExpiryDays)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRY_MINUTES", "30")
	t.Setenv("JWT_REFRESH_TOKEN_EXPIRY_DAYS", "30")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 30, cfg.JWT.AccessTokenExpiryMinutes)
	assert.Equal(t, 30, cfg.JWT.RefreshTokenExpiryDays)
}

func TestLoadConfigRejectsBadExpiry(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRY_MINUTES", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_ACCESS_TOKEN_EXPIRY_MINUTES")
}
