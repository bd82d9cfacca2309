package indicators

// RSISeries computes Wilder's RSI over the whole series, one output per
// input. The first defined value, at index period, seeds the average
// gain/loss with the simple mean of the first period deltas; later values
// use Wilder smoothing: avg = (avg*(period-1) + current) / period.
// When the average loss is zero the RSI saturates at 100.
func RSISeries(values []float64, period int) []Value {
	out := make([]Value, len(values))
	if period <= 0 || len(values) <= period {
		return out
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		delta := values[i] - values[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss -= delta
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = Defined(rsiFromAverages(avgGain, avgLoss))

	for i := period + 1; i < len(values); i++ {
		delta := values[i] - values[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = Defined(rsiFromAverages(avgGain, avgLoss))
	}
	return out
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
