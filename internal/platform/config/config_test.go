package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		StoreDriver:        StoreDriverMemory,
		MaxBodyBytes:       4096,
		RateLimitPerMinute: 10,
		NotifyTimeout:      time.Second,
	}
}

func TestValidateAcceptsMemoryDriverWithoutDatabase(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRequiresDatabaseURLForPostgres(t *testing.T) {
	cfg := validConfig()
	cfg.StoreDriver = StoreDriverPostgres
	assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL")

	cfg.DatabaseURL = "postgres://localhost/hr"
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.StoreDriver = "sqlite"
	assert.ErrorContains(t, cfg.Validate(), "STORE_DRIVER")
}

func TestValidateEmailSettings(t *testing.T) {
	cfg := validConfig()
	cfg.EmailEnabled = true
	assert.ErrorContains(t, cfg.Validate(), "SMTP_HOST")

	cfg.SMTPHost = "smtp.example.com"
	assert.ErrorContains(t, cfg.Validate(), "HR_NOTIFY_EMAIL")

	cfg.HRNotifyEmail = "hr@example.com"
	assert.NoError(t, cfg.Validate())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "7")
	t.Setenv("NOTIFY_TIMEOUT", "250ms")
	t.Setenv("RUN_SEED", "not-a-bool")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg := Load()
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, 7, cfg.RateLimitPerMinute)
	assert.Equal(t, 250*time.Millisecond, cfg.NotifyTimeout)
	assert.True(t, cfg.RunSeed)
	assert.True(t, cfg.TrustProxyHeaders)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.False(t, cfg.SMTPUseTLS)
	assert.False(t, cfg.UsesPostgres())
}
