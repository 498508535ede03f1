package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	localBaseURL      = "http://localhost:3000/api"
	productionBaseURL = "https://jersee-ice-backend.onrender.com/api"
)

type Config struct {
	API     APIConfig
	Order   OrderConfig
	Pricing PricingConfig
	Payment PaymentConfig
	Log     LogConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type OrderConfig struct {
	Department       string
	MaxRetryAttempts int
	// DebounceQuiet is the quiet period for live field checks; the slow
	// variant applies on constrained devices.
	DebounceQuiet     time.Duration
	DebounceQuietSlow time.Duration
	FallbackIDPrefix  string
}

type PricingConfig struct {
	Prices          map[string]int
	DefaultPrice    int
	OnlineSurcharge int
	// TableFile optionally points at a yaml price table that replaces the
	// built-in prices for a deployment.
	TableFile string
}

type PaymentConfig struct {
	Providers    []string
	WalletNumber string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("API_BASE_URL", "")
	v.SetDefault("API_TIMEOUT", "30s")
	v.SetDefault("ORDER_DEPARTMENT", "ICE")
	v.SetDefault("ORDER_MAX_RETRY_ATTEMPTS", 3)
	v.SetDefault("ORDER_DEBOUNCE_QUIET", "500ms")
	v.SetDefault("ORDER_DEBOUNCE_QUIET_SLOW", "800ms")
	v.SetDefault("ORDER_FALLBACK_ID_PREFIX", "ICE-")
	v.SetDefault("PRICE_ROUND_HALF", 400)
	v.SetDefault("PRICE_ROUND_FULL", 500)
	v.SetDefault("PRICE_POLO_HALF", 360)
	v.SetDefault("PRICE_POLO_FULL", 400)
	v.SetDefault("PRICE_DEFAULT", 400)
	v.SetDefault("PRICE_ONLINE_SURCHARGE", 10)
	v.SetDefault("PRICE_TABLE_FILE", "")
	v.SetDefault("PAYMENT_WALLET_NUMBER", "01637964859")
	v.SetDefault("LOG_LEVEL", "info")

	timeout, err := time.ParseDuration(v.GetString("API_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	quiet, err := time.ParseDuration(v.GetString("ORDER_DEBOUNCE_QUIET"))
	if err != nil {
		return nil, err
	}
	quietSlow, err := time.ParseDuration(v.GetString("ORDER_DEBOUNCE_QUIET_SLOW"))
	if err != nil {
		return nil, err
	}

	baseURL := v.GetString("API_BASE_URL")
	if baseURL == "" {
		baseURL = localBaseURL
		if v.GetString("ENVIRONMENT") == "production" {
			baseURL = productionBaseURL
		}
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: baseURL,
			Timeout: timeout,
		},
		Order: OrderConfig{
			Department:        v.GetString("ORDER_DEPARTMENT"),
			MaxRetryAttempts:  v.GetInt("ORDER_MAX_RETRY_ATTEMPTS"),
			DebounceQuiet:     quiet,
			DebounceQuietSlow: quietSlow,
			FallbackIDPrefix:  v.GetString("ORDER_FALLBACK_ID_PREFIX"),
		},
		Pricing: PricingConfig{
			Prices: map[string]int{
				"round-half": v.GetInt("PRICE_ROUND_HALF"),
				"round-full": v.GetInt("PRICE_ROUND_FULL"),
				"polo-half":  v.GetInt("PRICE_POLO_HALF"),
				"polo-full":  v.GetInt("PRICE_POLO_FULL"),
			},
			DefaultPrice:    v.GetInt("PRICE_DEFAULT"),
			OnlineSurcharge: v.GetInt("PRICE_ONLINE_SURCHARGE"),
			TableFile:       v.GetString("PRICE_TABLE_FILE"),
		},
		Payment: PaymentConfig{
			Providers:    []string{"bKash", "Nagad"},
			WalletNumber: v.GetString("PAYMENT_WALLET_NUMBER"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
