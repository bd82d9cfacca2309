package signal

import (
	"time"

	"github.com/ducminhle1904/crypto-signal-bot/internal/indicators"
	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

// Type is the classification of the latest candle.
type Type string

const (
	Buy      Type = "BUY"
	Sell     Type = "SELL"
	NoSignal Type = "NO_SIGNAL"
)

// Result bundles one classification with the indicator snapshot that
// produced it. It is created per evaluation and never mutated; the
// classifier keeps no copy.
type Result struct {
	Timestamp time.Time
	Pair      types.Pair
	Signal    Type
	Price     indicators.Value
	Snapshot  indicators.Snapshot
}

// Classifier turns an indicator-annotated candle series into a BUY, SELL
// or NO_SIGNAL decision for the latest candle. It is stateless: crossover
// detection compares the two most recent snapshots fresh on every call,
// so re-evaluating an unchanged series never re-emits a signal.
type Classifier struct {
	oversold   float64
	overbought float64
}

// NewClassifier creates a classifier using the thresholds carried by the
// indicator parameterization.
func NewClassifier(params indicators.Params) *Classifier {
	return &Classifier{
		oversold:   params.RSIOversold,
		overbought: params.RSIOverbought,
	}
}

// Evaluate classifies the latest candle of the annotated series.
//
// Fewer than two candles, or any required indicator undefined at the
// latest or previous index, yields NO_SIGNAL carrying whatever defined
// values exist; missing values are never fabricated. A BUY requires the
// RSI extreme and both bullish crossovers on the same candle; SELL is the
// mirror. Crossovers are strict on the latest candle and non-strict on
// the previous one, so a cross fires exactly once, at the candle where
// the strict inequality first holds.
func (c *Classifier) Evaluate(pair types.Pair, data []types.OHLCV, snapshots []indicators.Snapshot) Result {
	res := Result{Pair: pair, Signal: NoSignal}

	n := len(data)
	if len(snapshots) < n {
		n = len(snapshots)
	}
	if n == 0 {
		return res
	}

	latest := snapshots[n-1]
	res.Timestamp = data[n-1].Timestamp
	res.Price = indicators.Defined(data[n-1].Close)
	res.Snapshot = latest

	if n < 2 {
		return res
	}
	previous := snapshots[n-2]

	if !latest.RSI.Valid ||
		!latest.MACDLine.Valid || !latest.MACDSignal.Valid ||
		!latest.EMAFast.Valid || !latest.EMASlow.Valid ||
		!previous.MACDLine.Valid || !previous.MACDSignal.Valid ||
		!previous.EMAFast.Valid || !previous.EMASlow.Valid {
		return res
	}

	macdBullish := latest.MACDLine.Float > latest.MACDSignal.Float &&
		previous.MACDLine.Float <= previous.MACDSignal.Float
	emaBullish := latest.EMAFast.Float > latest.EMASlow.Float &&
		previous.EMAFast.Float <= previous.EMASlow.Float

	macdBearish := latest.MACDLine.Float < latest.MACDSignal.Float &&
		previous.MACDLine.Float >= previous.MACDSignal.Float
	emaBearish := latest.EMAFast.Float < latest.EMASlow.Float &&
		previous.EMAFast.Float >= previous.EMASlow.Float

	switch {
	case latest.RSI.Float < c.oversold && macdBullish && emaBullish:
		res.Signal = Buy
	case latest.RSI.Float > c.overbought && macdBearish && emaBearish:
		res.Signal = Sell
	}
	return res
}
