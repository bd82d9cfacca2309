package coinex

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

// kline mirrors one entry of the CoinEx v2 spot kline payload. Prices and
// volume arrive as strings.
type kline struct {
	Market    string `json:"market"`
	CreatedAt int64  `json:"created_at"` // candle open time, ms
	Open      string `json:"open"`
	Close     string `json:"close"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Volume    string `json:"volume"`
	Value     string `json:"value"`
}

// periodForInterval maps the bot's canonical interval names onto CoinEx
// period identifiers.
var periodForInterval = map[string]string{
	"1m":  "1min",
	"3m":  "3min",
	"5m":  "5min",
	"15m": "15min",
	"30m": "30min",
	"1h":  "1hour",
	"2h":  "2hour",
	"4h":  "4hour",
	"6h":  "6hour",
	"12h": "12hour",
	"1d":  "1day",
	"1w":  "1week",
}

// GetKlines fetches up to limit candles for the market, returned oldest
// to newest.
func (c *Client) GetKlines(ctx context.Context, symbol, interval string, limit int) ([]types.OHLCV, error) {
	period, ok := periodForInterval[interval]
	if !ok {
		return nil, fmt.Errorf("unsupported interval %q for CoinEx", interval)
	}
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}

	query := url.Values{}
	query.Set("market", symbol)
	query.Set("period", period)
	query.Set("limit", strconv.Itoa(limit))

	var payload []kline
	if err := c.get(ctx, "/spot/kline", query, &payload); err != nil {
		return nil, fmt.Errorf("failed to get klines for %s: %w", symbol, err)
	}

	candles := make([]types.OHLCV, 0, len(payload))
	for i, k := range payload {
		candle, err := k.toOHLCV()
		if err != nil {
			return nil, fmt.Errorf("failed to parse kline %d for %s: %w", i, symbol, err)
		}
		candles = append(candles, candle)
	}

	sort.Slice(candles, func(i, j int) bool {
		return candles[i].Timestamp.Before(candles[j].Timestamp)
	})
	return candles, nil
}

func (k kline) toOHLCV() (types.OHLCV, error) {
	open, err := strconv.ParseFloat(k.Open, 64)
	if err != nil {
		return types.OHLCV{}, fmt.Errorf("invalid open %q: %w", k.Open, err)
	}
	high, err := strconv.ParseFloat(k.High, 64)
	if err != nil {
		return types.OHLCV{}, fmt.Errorf("invalid high %q: %w", k.High, err)
	}
	low, err := strconv.ParseFloat(k.Low, 64)
	if err != nil {
		return types.OHLCV{}, fmt.Errorf("invalid low %q: %w", k.Low, err)
	}
	closePrice, err := strconv.ParseFloat(k.Close, 64)
	if err != nil {
		return types.OHLCV{}, fmt.Errorf("invalid close %q: %w", k.Close, err)
	}
	volume, err := strconv.ParseFloat(k.Volume, 64)
	if err != nil {
		return types.OHLCV{}, fmt.Errorf("invalid volume %q: %w", k.Volume, err)
	}

	return types.OHLCV{
		Timestamp: time.UnixMilli(k.CreatedAt).UTC(),
		Open:      open,
		High:      high,
		Low:       low,
		Close:     closePrice,
		Volume:    volume,
	}, nil
}
