package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "LOG_LEVEL", "API_BASE_URL", "REQUEST_TIMEOUT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "") // restored after the test
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 0, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}

func TestNewConfigFromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("API_BASE_URL", "https://erp.example.com")
	t.Setenv("REQUEST_TIMEOUT", "30s")
	t.Setenv("RATE_LIMIT_RPS", "20")
	t.Setenv("RATE_LIMIT_BURST", "10")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "https://erp.example.com", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 20, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Environment:    "dev",
		LogLevel:       "info",
		APIBaseURL:     "http://localhost:8080",
		RequestTimeout: 10 * time.Second,
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown environment", func(c *Config) { c.Environment = "qa" }, "invalid environment 'qa'"},
		{"empty url", func(c *Config) { c.APIBaseURL = "" }, "API_BASE_URL cannot be empty"},
		{"unsupported scheme", func(c *Config) { c.APIBaseURL = "ftp://erp.example.com" }, "must use http or https"},
		{"missing scheme", func(c *Config) { c.APIBaseURL = "erp.example.com" }, "must use http or https"},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }, "request timeout must be positive"},
		{"negative rate limit", func(c *Config) { c.RateLimitRPS = -1 }, "RATE_LIMIT_RPS cannot be negative"},
		{"rate limit without burst", func(c *Config) {
			c.RateLimitRPS = 10
			c.RateLimitBurst = 0
		}, "RATE_LIMIT_BURST must be at least 1"},
		{"burst ignored when unlimited", func(c *Config) { c.RateLimitBurst = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
