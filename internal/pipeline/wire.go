package pipeline

import (
	"go.uber.org/zap"

	"jerseyform/internal/api"
	"jerseyform/internal/config"
	"jerseyform/internal/pricing"
)

// NewModule wires the price table, API client and pipeline from
// configuration.
func NewModule(cfg *config.Config, notifier Notifier, logger *zap.Logger) (*Pipeline, error) {
	table := pricing.NewTable(cfg.Pricing.Prices, cfg.Pricing.DefaultPrice, cfg.Pricing.OnlineSurcharge)
	if cfg.Pricing.TableFile != "" {
		loaded, err := pricing.LoadTable(cfg.Pricing.TableFile)
		if err != nil {
			return nil, err
		}
		table = loaded
	}

	client := api.NewClient(cfg.API, logger)

	return New(table, client, notifier, logger, cfg.Order), nil
}
