package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mediflow/internal/shared/config"
)

func TestValidateRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg := config.Load()
	require.ErrorIs(t, cfg.Validate(), config.ErrMissingJWTSecret)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	cfg := config.Load()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiresIn)
	require.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiresIn)
	require.Equal(t, "/api/v1", cfg.GetAPIBasePath())
	require.Equal(t, ":8080", cfg.GetServerAddress())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "5m")
	t.Setenv("RATE_LIMIT_WHITELISTED_IPS", "10.0.0.1, 10.0.0.2")

	cfg := config.Load()
	require.Equal(t, 5*time.Minute, cfg.JWT.AccessExpiresIn)
	require.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.RateLimit.WhitelistedIPs)
}
