package exchange

import (
	"fmt"
	"strings"

	"github.com/ducminhle1904/crypto-signal-bot/internal/exchange/bybit"
	"github.com/ducminhle1904/crypto-signal-bot/internal/exchange/coinex"
)

// Config holds configuration for creating market-data sources.
type Config struct {
	Name   string        // Exchange name (coinex, bybit)
	CoinEx *CoinExConfig // CoinEx-specific config
	Bybit  *BybitConfig  // Bybit-specific config
}

// CoinExConfig holds CoinEx-specific configuration.
type CoinExConfig struct {
	BaseURL string // override for tests, empty for production
}

// BybitConfig holds Bybit-specific configuration.
type BybitConfig struct {
	APIKey    string
	APISecret string
	Category  string
	Testnet   bool
}

// NewMarketDataSource creates a market-data source for the configured
// exchange.
func NewMarketDataSource(config Config) (MarketDataSource, error) {
	switch strings.ToLower(strings.TrimSpace(config.Name)) {
	case "coinex", "":
		baseURL := ""
		if config.CoinEx != nil {
			baseURL = config.CoinEx.BaseURL
		}
		return coinex.NewClient(baseURL), nil
	case "bybit":
		cfg := bybit.Config{}
		if config.Bybit != nil {
			cfg = bybit.Config{
				APIKey:    config.Bybit.APIKey,
				APISecret: config.Bybit.APISecret,
				Category:  config.Bybit.Category,
				Testnet:   config.Bybit.Testnet,
			}
		}
		return bybit.NewClient(cfg), nil
	default:
		return nil, fmt.Errorf("exchange %q is not supported (supported: coinex, bybit)", config.Name)
	}
}
