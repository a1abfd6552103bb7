package config_test

import (
	"testing"
	"time"

	"forum/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, ":4000", cfg.AppPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionDuration)
	assert.Equal(t, 5*time.Minute, cfg.SessionActiveDuration)
	assert.True(t, cfg.SessionCookieSecure)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.RabbitMQURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", ":9999")
	t.Setenv("SESSION_DURATION", "1h")
	t.Setenv("SESSION_COOKIE_SECURE", "false")

	cfg := config.Load()

	assert.Equal(t, ":9999", cfg.AppPort)
	assert.Equal(t, time.Hour, cfg.SessionDuration)
	assert.False(t, cfg.SessionCookieSecure)
}
