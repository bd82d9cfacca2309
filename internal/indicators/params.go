package indicators

// Params holds every window length and threshold the engine depends on.
// Keeping them in one structure (instead of literals buried in the math)
// lets the engine be tested with alternate parameterizations.
type Params struct {
	RSIPeriod     int     // Wilder RSI window
	EMAFastPeriod int     // short trend EMA (50)
	EMASlowPeriod int     // long trend EMA (200)
	MACDFast      int     // MACD fast EMA (12)
	MACDSlow      int     // MACD slow EMA (26)
	MACDSignal    int     // MACD signal EMA (9)
	BBPeriod      int     // Bollinger SMA window
	BBStdDev      float64 // Bollinger band width in standard deviations
	RSIOversold   float64 // BUY threshold
	RSIOverbought float64 // SELL threshold
}

// DefaultParams returns the standard parameterization:
// RSI(14), EMA(50)/EMA(200), MACD(12,26,9), Bollinger(20, 2σ), 30/70.
func DefaultParams() Params {
	return Params{
		RSIPeriod:     14,
		EMAFastPeriod: 50,
		EMASlowPeriod: 200,
		MACDFast:      12,
		MACDSlow:      26,
		MACDSignal:    9,
		BBPeriod:      20,
		BBStdDev:      2.0,
		RSIOversold:   30,
		RSIOverbought: 70,
	}
}

// MinCandles returns the series length needed before every field of the
// latest snapshot is defined. The slow trend EMA dominates; one extra
// candle gives the classifier a fully-defined previous row as well.
func (p Params) MinCandles() int {
	min := p.RSIPeriod + 1
	for _, n := range []int{p.EMAFastPeriod, p.EMASlowPeriod, p.BBPeriod, p.MACDSlow + p.MACDSignal - 1} {
		if n > min {
			min = n
		}
	}
	return min + 1
}
