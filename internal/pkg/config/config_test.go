//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"shareit/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "shareit")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "shareit")
	t.Setenv("JWT_SECRET", "jwt-secret")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults are applied", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "localhost", cfg.DB.Host)
		assert.True(t, cfg.DB.AutoMigrate)
		assert.Equal(t, 5*time.Minute, cfg.Redis.ItemTTL)
		assert.Empty(t, cfg.Redis.Addr)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.InDelta(t, 20.0, cfg.RateLimit.RPS, 0.001)
	})

	t.Run("overrides are read", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("RATE_LIMIT_RPS", "0")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Zero(t, cfg.RateLimit.RPS)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("DB_USER", "")
		require.NoError(t, os.Unsetenv("DB_USER"))
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "shareit")
		t.Setenv("JWT_SECRET", "jwt-secret")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}

func TestDBConfig_BuildDSN(t *testing.T) {
	cfg := config.DBConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "shareit", SSLMode: "disable", TimeZone: "UTC",
	}
	assert.Equal(t, "postgres://u:p@db:5432/shareit?sslmode=disable&timezone=UTC", cfg.BuildDSN())
}

func TestJWTConfig_AccessTTL(t *testing.T) {
	cfg := config.JWTConfig{AccessTokenDuration: "90m"}
	d, err := cfg.AccessTTL()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	cfg.AccessTokenDuration = "soon"
	_, err = cfg.AccessTTL()
	assert.Error(t, err)
}
