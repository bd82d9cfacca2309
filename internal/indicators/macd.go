package indicators

// MACDSeries computes the MACD line, signal line and histogram over the
// whole series. The line is EMA(fast) - EMA(slow) and becomes defined
// with the slow EMA; the signal is an EMA(signal) of the line, seeded
// over the line's first defined values; the histogram is line - signal
// and is defined only where both are.
func MACDSeries(values []float64, fast, slow, signal int) (line, signalLine, histogram []Value) {
	fastEMA := EMASeries(values, fast)
	slowEMA := EMASeries(values, slow)

	line = make([]Value, len(values))
	for i := range values {
		if fastEMA[i].Valid && slowEMA[i].Valid {
			line[i] = Defined(fastEMA[i].Float - slowEMA[i].Float)
		}
	}

	signalLine = emaOverDefined(line, signal)

	histogram = make([]Value, len(values))
	for i := range values {
		if line[i].Valid && signalLine[i].Valid {
			histogram[i] = Defined(line[i].Float - signalLine[i].Float)
		}
	}
	return line, signalLine, histogram
}
