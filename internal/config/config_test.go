package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, ":8080", cfg.Addr())
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.RedisURL)
		assert.Empty(t, cfg.S3Bucket)
		assert.True(t, cfg.VerifyEmailDomain)
	})

	t.Run("EnvOverrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9999")
		t.Setenv("JWT_SECRET", "sekret")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")
		t.Setenv("VERIFY_EMAIL_DOMAIN", "false")

		cfg := Load()

		assert.Equal(t, ":9999", cfg.Addr())
		assert.Equal(t, "sekret", cfg.JWTSecret)
		assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
		assert.False(t, cfg.VerifyEmailDomain)
	})
}
