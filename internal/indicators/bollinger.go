package indicators

import "math"

// BollingerSeries computes Bollinger Bands over the whole series. The
// middle band is an SMA over the trailing window, the outer bands sit
// stdDev population standard deviations either side. Indices before
// period-1 are undefined.
func BollingerSeries(values []float64, period int, stdDev float64) (upper, middle, lower []Value) {
	upper = make([]Value, len(values))
	middle = make([]Value, len(values))
	lower = make([]Value, len(values))
	if period <= 0 || len(values) < period {
		return upper, middle, lower
	}

	for i := period - 1; i < len(values); i++ {
		window := values[i-period+1 : i+1]

		sum := 0.0
		for _, v := range window {
			sum += v
		}
		mid := sum / float64(period)

		variance := 0.0
		for _, v := range window {
			diff := v - mid
			variance += diff * diff
		}
		sd := math.Sqrt(variance / float64(period))

		middle[i] = Defined(mid)
		upper[i] = Defined(mid + stdDev*sd)
		lower[i] = Defined(mid - stdDev*sd)
	}
	return upper, middle, lower
}
