package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "ICE", cfg.Order.Department)
	assert.Equal(t, 3, cfg.Order.MaxRetryAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Order.DebounceQuiet)
	assert.Equal(t, 800*time.Millisecond, cfg.Order.DebounceQuietSlow)
	assert.Equal(t, 400, cfg.Pricing.Prices["round-half"])
	assert.Equal(t, 500, cfg.Pricing.Prices["round-full"])
	assert.Equal(t, 360, cfg.Pricing.Prices["polo-half"])
	assert.Equal(t, 400, cfg.Pricing.Prices["polo-full"])
	assert.Equal(t, 400, cfg.Pricing.DefaultPrice)
	assert.Equal(t, 10, cfg.Pricing.OnlineSurcharge)
	assert.Equal(t, []string{"bKash", "Nagad"}, cfg.Payment.Providers)
}

func TestLoad_ProductionBaseURL(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://jersee-ice-backend.onrender.com/api", cfg.API.BaseURL)
}

func TestLoad_ExplicitBaseURLWins(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("API_BASE_URL", "http://10.0.0.5:3000/api")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:3000/api", cfg.API.BaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PRICE_ROUND_FULL", "600")
	t.Setenv("ORDER_MAX_RETRY_ATTEMPTS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 600, cfg.Pricing.Prices["round-full"])
	assert.Equal(t, 5, cfg.Order.MaxRetryAttempts)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
