package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "some-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 30*time.Minute, cfg.AccessTTL)
	require.Equal(t, 14*24*time.Hour, cfg.RefreshTTL)
	require.Equal(t, "Authorization", cfg.AccessHeader)
	require.Equal(t, "Authorization-Refresh", cfg.RefreshHeader)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "sucat.db", cfg.DatabaseFile)
}

func TestLoadConfigParsesDurations(t *testing.T) {
	t.Setenv("JWT_SECRET", "some-secret")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("JWT_REFRESH_TTL", "3600")
	t.Setenv("HOUSEKEEPING_INTERVAL", "not-a-duration")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 15*time.Minute, cfg.AccessTTL)
	// Plain integers are read as seconds.
	require.Equal(t, time.Hour, cfg.RefreshTTL)
	// Unparseable values fall back to the default.
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
}
