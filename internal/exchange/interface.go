package exchange

import (
	"context"

	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

// MarketDataSource supplies candle series for analysis. Implementations
// must return candles ordered oldest to newest with no duplicate
// timestamps; a fetch failure is reported as an error, never as a
// partially malformed series.
type MarketDataSource interface {
	GetName() string

	// GetKlines fetches up to limit most recent candles for the symbol at
	// the given interval ("1m", "5m", "15m", "30m", "1h", "4h", "1d").
	GetKlines(ctx context.Context, symbol, interval string, limit int) ([]types.OHLCV, error)
}
