package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ducminhle1904/crypto-signal-bot/internal/indicators"
	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

type Config struct {
	Environment string

	Exchange struct {
		Name     string
		APIKey   string
		Secret   string
		Category string
		Testnet  bool
	}

	Monitor struct {
		Pairs     []types.Pair
		DataLimit int
		LogFile   string
		LogDir    string
	}

	Indicators indicators.Params

	Monitoring struct {
		PrometheusPort int
		HealthPort     int
	}

	Notifications struct {
		TelegramToken  string
		TelegramChatID string
	}
}

// Load builds the configuration from environment variables, falling back
// to the defaults of the original deployment: CoinEx, BTC/ETH/LTC USDT on
// 1h candles, 250 candles per fetch, trading_signals.csv.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.Environment = getEnv("ENV", "development")

	cfg.Exchange.Name = getEnv("EXCHANGE_NAME", "coinex")
	cfg.Exchange.APIKey = getEnv("EXCHANGE_API_KEY", "")
	cfg.Exchange.Secret = getEnv("EXCHANGE_SECRET", "")
	cfg.Exchange.Category = getEnv("EXCHANGE_CATEGORY", "spot")
	cfg.Exchange.Testnet = getEnvBool("EXCHANGE_TESTNET", false)

	pairs, err := parsePairs(getEnv("MONITOR_PAIRS", "BTCUSDT:1h,ETHUSDT:1h,LTCUSDT:1h"))
	if err != nil {
		return nil, err
	}
	cfg.Monitor.Pairs = pairs
	cfg.Monitor.DataLimit = getEnvInt("DATA_LIMIT", 250)
	cfg.Monitor.LogFile = getEnv("SIGNAL_LOG_FILE", "trading_signals.csv")
	cfg.Monitor.LogDir = getEnv("SESSION_LOG_DIR", "logs")

	cfg.Indicators = loadIndicatorParams()

	cfg.Monitoring.PrometheusPort = getEnvInt("PROMETHEUS_PORT", 8080)
	cfg.Monitoring.HealthPort = getEnvInt("HEALTH_PORT", 8081)

	cfg.Notifications.TelegramToken = getEnv("TELEGRAM_TOKEN", "")
	cfg.Notifications.TelegramChatID = getEnv("TELEGRAM_CHAT_ID", "")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadIndicatorParams() indicators.Params {
	p := indicators.DefaultParams()
	p.RSIPeriod = getEnvInt("RSI_PERIOD", p.RSIPeriod)
	p.EMAFastPeriod = getEnvInt("EMA_FAST_PERIOD", p.EMAFastPeriod)
	p.EMASlowPeriod = getEnvInt("EMA_SLOW_PERIOD", p.EMASlowPeriod)
	p.MACDFast = getEnvInt("MACD_FAST", p.MACDFast)
	p.MACDSlow = getEnvInt("MACD_SLOW", p.MACDSlow)
	p.MACDSignal = getEnvInt("MACD_SIGNAL", p.MACDSignal)
	p.BBPeriod = getEnvInt("BB_PERIOD", p.BBPeriod)
	p.BBStdDev = getEnvFloat("BB_STDDEV", p.BBStdDev)
	p.RSIOversold = getEnvFloat("RSI_OVERSOLD", p.RSIOversold)
	p.RSIOverbought = getEnvFloat("RSI_OVERBOUGHT", p.RSIOverbought)
	return p
}

// parsePairs parses "BTCUSDT:1h,ETHUSDT:4h" into pair configs.
func parsePairs(raw string) ([]types.Pair, error) {
	var pairs []types.Pair
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid pair entry %q (expected SYMBOL:INTERVAL)", entry)
		}
		pairs = append(pairs, types.Pair{Symbol: strings.ToUpper(parts[0]), Interval: parts[1]})
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no monitored pairs configured")
	}
	return pairs, nil
}

func (c *Config) validate() error {
	if c.Monitor.DataLimit < 2 {
		return fmt.Errorf("DATA_LIMIT must be at least 2, got %d", c.Monitor.DataLimit)
	}
	if min := c.Indicators.MinCandles(); c.Monitor.DataLimit < min {
		return fmt.Errorf("DATA_LIMIT %d below %d candles needed for fully-defined indicators", c.Monitor.DataLimit, min)
	}
	if c.Indicators.EMAFastPeriod >= c.Indicators.EMASlowPeriod {
		return fmt.Errorf("EMA_FAST_PERIOD %d must be below EMA_SLOW_PERIOD %d", c.Indicators.EMAFastPeriod, c.Indicators.EMASlowPeriod)
	}
	if c.Indicators.MACDFast >= c.Indicators.MACDSlow {
		return fmt.Errorf("MACD_FAST %d must be below MACD_SLOW %d", c.Indicators.MACDFast, c.Indicators.MACDSlow)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}
