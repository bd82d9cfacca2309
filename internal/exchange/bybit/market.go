package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	bybit_api "github.com/bybit-exchange/bybit.go.api"

	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

// intervalForCanonical maps the bot's canonical interval names onto Bybit
// kline interval identifiers.
var intervalForCanonical = map[string]string{
	"1m":  "1",
	"3m":  "3",
	"5m":  "5",
	"15m": "15",
	"30m": "30",
	"1h":  "60",
	"2h":  "120",
	"4h":  "240",
	"6h":  "360",
	"12h": "720",
	"1d":  "D",
	"1w":  "W",
}

// GetKlines fetches up to limit candles for the symbol, returned oldest
// to newest. Bybit delivers klines newest-first; the result is reordered
// before it is handed to the caller.
func (c *Client) GetKlines(ctx context.Context, symbol, interval string, limit int) ([]types.OHLCV, error) {
	bybitInterval, ok := intervalForCanonical[interval]
	if !ok {
		return nil, fmt.Errorf("unsupported interval %q for Bybit", interval)
	}
	if limit <= 0 {
		limit = 200
	}
	if limit > 1000 {
		limit = 1000
	}

	params := map[string]interface{}{
		"category": c.category,
		"symbol":   symbol,
		"interval": bybitInterval,
		"limit":    limit,
	}

	var candles []types.OHLCV
	err := c.Retry(ctx, func() error {
		result, err := c.httpClient.NewUtaBybitServiceWithParams(params).GetMarketKline(ctx)
		if err != nil {
			return fmt.Errorf("failed to get klines: %w", err)
		}
		candles, err = parseKlineResponse(result)
		return err
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(candles, func(i, j int) bool {
		return candles[i].Timestamp.Before(candles[j].Timestamp)
	})
	return candles, nil
}

// parseKlineResponse converts the raw API response into candles.
func parseKlineResponse(response interface{}) ([]types.OHLCV, error) {
	serverResp, ok := response.(*bybit_api.ServerResponse)
	if !ok {
		return nil, fmt.Errorf("invalid response type")
	}

	if serverResp.RetCode != 0 {
		return nil, &BybitError{Code: serverResp.RetCode, Message: serverResp.RetMsg}
	}

	resultBytes, err := json.Marshal(serverResp.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var klineResult struct {
		Symbol   string     `json:"symbol"`
		Category string     `json:"category"`
		List     [][]string `json:"list"`
	}
	if err := json.Unmarshal(resultBytes, &klineResult); err != nil {
		return nil, fmt.Errorf("failed to unmarshal kline result: %w", err)
	}

	var candles []types.OHLCV
	for _, item := range klineResult.List {
		// Bybit kline format: [startTime, open, high, low, close, volume, turnover]
		if len(item) < 6 {
			continue
		}
		candles = append(candles, types.OHLCV{
			Timestamp: time.UnixMilli(parseInt64(item[0])).UTC(),
			Open:      parseFloat64(item[1]),
			High:      parseFloat64(item[2]),
			Low:       parseFloat64(item[3]),
			Close:     parseFloat64(item[4]),
			Volume:    parseFloat64(item[5]),
		})
	}
	return candles, nil
}

func parseInt64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

func parseFloat64(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
