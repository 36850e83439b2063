package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "GIN_MODE", "LOG_LEVEL", "AUTH_JWT_SECRET", "REDIS_ADDR", "REDIS_URI", "REDIS_URL", "CACHE_TTL", "SEED_PROFILES", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("SEED_PROFILES", "false")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "s3cret", cfg.AuthJWTSecret)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.False(t, cfg.SeedProfiles)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisAddr)
}

func TestNewRedisRejectsBadURL(t *testing.T) {
	_, err := NewRedis(context.Background(), "redis://%zz")
	assert.Error(t, err)
}
