package bybit

import (
	bybit_api "github.com/bybit-exchange/bybit.go.api"
)

// Client wraps the Bybit API client for market-data access. Kline
// endpoints are public, so keys are optional; when present they only
// raise the rate limit.
type Client struct {
	httpClient *bybit_api.Client
	category   string
	testnet    bool
}

// Config holds the configuration for the Bybit client.
type Config struct {
	APIKey    string
	APISecret string
	Category  string // "spot", "linear" or "inverse"
	Testnet   bool
}

// NewClient creates a new Bybit client.
func NewClient(config Config) *Client {
	baseURL := bybit_api.MAINNET
	if config.Testnet {
		baseURL = bybit_api.TESTNET
	}

	category := config.Category
	if category == "" {
		category = "spot"
	}

	httpClient := bybit_api.NewBybitHttpClient(
		config.APIKey,
		config.APISecret,
		bybit_api.WithBaseURL(baseURL),
	)

	return &Client{
		httpClient: httpClient,
		category:   category,
		testnet:    config.Testnet,
	}
}

// GetName returns the exchange name.
func (c *Client) GetName() string {
	return "bybit"
}

// IsTestnet returns whether the client is configured for testnet.
func (c *Client) IsTestnet() bool {
	return c.testnet
}
