package indicators

// EMASeries computes an exponential moving average over the whole series,
// one output per input. The first defined value, at index period-1, is
// the simple average of the first period inputs; every later value is the
// recursive update EMA[i] = x[i]*α + EMA[i-1]*(1-α) with α = 2/(period+1).
// Indices before period-1 are undefined.
func EMASeries(values []float64, period int) []Value {
	out := make([]Value, len(values))
	if period <= 0 || len(values) < period {
		return out
	}

	alpha := 2.0 / float64(period+1)

	// SMA seed over the first period values.
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	ema := sum / float64(period)
	out[period-1] = Defined(ema)

	for i := period; i < len(values); i++ {
		ema = values[i]*alpha + ema*(1-alpha)
		out[i] = Defined(ema)
	}
	return out
}

// emaOverDefined runs EMASeries over the defined suffix of a Value series.
// The MACD signal line is an EMA of the MACD line, which itself has a
// warm-up prefix; the seed window must start at the first defined input.
func emaOverDefined(values []Value, period int) []Value {
	out := make([]Value, len(values))

	start := -1
	for i, v := range values {
		if v.Valid {
			start = i
			break
		}
	}
	if start < 0 {
		return out
	}

	defined := make([]float64, 0, len(values)-start)
	for _, v := range values[start:] {
		defined = append(defined, v.Float)
	}

	for i, v := range EMASeries(defined, period) {
		out[start+i] = v
	}
	return out
}
