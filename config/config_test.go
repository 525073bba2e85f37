package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "LOG_LEVEL", "REDIS_URL", "SIM_DEFAULT_MAX_OVERS", "RATING_LOCK_TTL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8088", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 20, cfg.Sim.DefaultMaxOvers)
	assert.Equal(t, 10*time.Second, cfg.Rating.LockTTL)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SIM_DEFAULT_MAX_OVERS", "50")
	t.Setenv("RATING_LOCK_TTL", "2s")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Sim.DefaultMaxOvers)
	assert.Equal(t, 2*time.Second, cfg.Rating.LockTTL)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SIM_DEFAULT_MAX_OVERS", "twenty"},
		{"SIM_DEFAULT_MAX_OVERS", "0"},
		{"RATING_LOCK_TTL", "soon"},
		{"JWT_ACCESS_TOKEN_EXPIRY_MINUTES", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
