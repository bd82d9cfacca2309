package types

import "time"

// OHLCV is a single candlestick. Series handed to the analysis engine
// must be ordered oldest to newest with strictly increasing timestamps.
type OHLCV struct {
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	Timestamp time.Time
}

// Pair identifies one monitored market and the candle interval it is
// analyzed on (e.g. BTCUSDT on 1h candles).
type Pair struct {
	Symbol   string
	Interval string
}

func (p Pair) String() string {
	return p.Symbol + " (" + p.Interval + ")"
}
