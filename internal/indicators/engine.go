package indicators

import (
	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

// Snapshot holds every derived value for one candle. A field is undefined
// until its indicator has enough trailing history at that index.
type Snapshot struct {
	RSI        Value
	EMAFast    Value // EMA over Params.EMAFastPeriod (50 by default)
	EMASlow    Value // EMA over Params.EMASlowPeriod (200 by default)
	MACDLine   Value
	MACDSignal Value
	MACDHist   Value
	BBUpper    Value
	BBMiddle   Value
	BBLower    Value
}

// Engine annotates candle series with technical indicators. It holds only
// its parameterization; every Compute call is an independent, pure pass
// over the supplied series, so one Engine is safe to share across
// goroutines analyzing different markets.
type Engine struct {
	params Params
}

// NewEngine creates an indicator engine with the given parameterization.
func NewEngine(params Params) *Engine {
	return &Engine{params: params}
}

// Params returns the engine's parameterization.
func (e *Engine) Params() Params {
	return e.params
}

// Compute produces one Snapshot per candle. Each snapshot is derived only
// from its own candle and earlier ones, so appending candles never changes
// previously computed values. An empty series yields an empty result,
// never an error; short series simply carry undefined fields.
func (e *Engine) Compute(data []types.OHLCV) []Snapshot {
	closes := make([]float64, len(data))
	for i, c := range data {
		closes[i] = c.Close
	}

	rsi := RSISeries(closes, e.params.RSIPeriod)
	emaFast := EMASeries(closes, e.params.EMAFastPeriod)
	emaSlow := EMASeries(closes, e.params.EMASlowPeriod)
	macdLine, macdSignal, macdHist := MACDSeries(closes, e.params.MACDFast, e.params.MACDSlow, e.params.MACDSignal)
	bbUpper, bbMiddle, bbLower := BollingerSeries(closes, e.params.BBPeriod, e.params.BBStdDev)

	snapshots := make([]Snapshot, len(data))
	for i := range data {
		snapshots[i] = Snapshot{
			RSI:        rsi[i],
			EMAFast:    emaFast[i],
			EMASlow:    emaSlow[i],
			MACDLine:   macdLine[i],
			MACDSignal: macdSignal[i],
			MACDHist:   macdHist[i],
			BBUpper:    bbUpper[i],
			BBMiddle:   bbMiddle[i],
			BBLower:    bbLower[i],
		}
	}
	return snapshots
}
