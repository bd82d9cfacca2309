package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "coinex", cfg.Exchange.Name)
	assert.Equal(t, "spot", cfg.Exchange.Category)
	assert.False(t, cfg.Exchange.Testnet)

	assert.Equal(t, []types.Pair{
		{Symbol: "BTCUSDT", Interval: "1h"},
		{Symbol: "ETHUSDT", Interval: "1h"},
		{Symbol: "LTCUSDT", Interval: "1h"},
	}, cfg.Monitor.Pairs)
	assert.Equal(t, 250, cfg.Monitor.DataLimit)
	assert.Equal(t, "trading_signals.csv", cfg.Monitor.LogFile)
	assert.Equal(t, "logs", cfg.Monitor.LogDir)

	assert.Equal(t, 14, cfg.Indicators.RSIPeriod)
	assert.Equal(t, 50, cfg.Indicators.EMAFastPeriod)
	assert.Equal(t, 200, cfg.Indicators.EMASlowPeriod)
	assert.Equal(t, 30.0, cfg.Indicators.RSIOversold)
	assert.Equal(t, 70.0, cfg.Indicators.RSIOverbought)

	assert.Equal(t, 8080, cfg.Monitoring.PrometheusPort)
	assert.Equal(t, 8081, cfg.Monitoring.HealthPort)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EXCHANGE_NAME", "bybit")
	t.Setenv("EXCHANGE_TESTNET", "true")
	t.Setenv("MONITOR_PAIRS", "solusdt:4h")
	t.Setenv("DATA_LIMIT", "300")
	t.Setenv("RSI_OVERSOLD", "25")
	t.Setenv("PROMETHEUS_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "bybit", cfg.Exchange.Name)
	assert.True(t, cfg.Exchange.Testnet)
	assert.Equal(t, []types.Pair{{Symbol: "SOLUSDT", Interval: "4h"}}, cfg.Monitor.Pairs)
	assert.Equal(t, 300, cfg.Monitor.DataLimit)
	assert.Equal(t, 25.0, cfg.Indicators.RSIOversold)
	assert.Equal(t, 9090, cfg.Monitoring.PrometheusPort)
}

func TestLoad_DataLimitBelowWarmup(t *testing.T) {
	t.Setenv("DATA_LIMIT", "200")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATA_LIMIT")
}

func TestLoad_SmallerParamsLowerTheFloor(t *testing.T) {
	t.Setenv("DATA_LIMIT", "60")
	t.Setenv("EMA_SLOW_PERIOD", "55")

	_, err := Load()
	assert.NoError(t, err)
}

func TestLoad_InvalidPeriodOrdering(t *testing.T) {
	t.Setenv("EMA_FAST_PERIOD", "200")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMA_FAST_PERIOD")

	t.Setenv("EMA_FAST_PERIOD", "")
	t.Setenv("MACD_FAST", "26")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MACD_FAST")
}

func TestParsePairs(t *testing.T) {
	pairs, err := parsePairs("BTCUSDT:1h, ethusdt:15m ,")
	require.NoError(t, err)
	assert.Equal(t, []types.Pair{
		{Symbol: "BTCUSDT", Interval: "1h"},
		{Symbol: "ETHUSDT", Interval: "15m"},
	}, pairs)

	_, err = parsePairs("BTCUSDT")
	assert.Error(t, err)

	_, err = parsePairs("BTCUSDT:")
	assert.Error(t, err)

	_, err = parsePairs("")
	assert.Error(t, err)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_FLOAT", "2.5")
	t.Setenv("TEST_BOOL", "true")

	assert.Equal(t, "value", getEnv("TEST_STR", "fallback"))
	assert.Equal(t, "fallback", getEnv("TEST_UNSET", "fallback"))
	assert.Equal(t, 42, getEnvInt("TEST_INT", 7))
	assert.Equal(t, 7, getEnvInt("TEST_BAD_INT", 7))
	assert.Equal(t, 2.5, getEnvFloat("TEST_FLOAT", 1.0))
	assert.True(t, getEnvBool("TEST_BOOL", false))
	assert.False(t, getEnvBool("TEST_UNSET", false))
}
