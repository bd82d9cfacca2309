package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBollingerSeries_UndefinedDuringWarmup(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	upper, middle, lower := BollingerSeries(values, 3, 2.0)

	for i := 0; i < 2; i++ {
		assert.False(t, upper[i].Valid, "index %d", i)
		assert.False(t, middle[i].Valid, "index %d", i)
		assert.False(t, lower[i].Valid, "index %d", i)
	}
	assert.True(t, middle[2].Valid)
}

func TestBollingerSeries_MiddleIsSMA(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	_, middle, _ := BollingerSeries(values, 3, 2.0)

	require.True(t, middle[2].Valid)
	assert.InDelta(t, 20.0, middle[2].Float, 1e-12)
	require.True(t, middle[3].Valid)
	assert.InDelta(t, 30.0, middle[3].Float, 1e-12)
}

func TestBollingerSeries_BandWidth(t *testing.T) {
	values := []float64{1, 2, 3}
	upper, middle, lower := BollingerSeries(values, 3, 2.0)

	// population stddev of 1,2,3 is sqrt(2/3)
	sd := math.Sqrt(2.0 / 3.0)
	require.True(t, upper[2].Valid)
	assert.InDelta(t, 2.0, middle[2].Float, 1e-12)
	assert.InDelta(t, 2.0+2*sd, upper[2].Float, 1e-12)
	assert.InDelta(t, 2.0-2*sd, lower[2].Float, 1e-12)
}

func TestBollingerSeries_ConstantSeriesCollapses(t *testing.T) {
	values := []float64{5, 5, 5, 5, 5}
	upper, middle, lower := BollingerSeries(values, 3, 2.0)

	for i := 2; i < len(values); i++ {
		require.True(t, middle[i].Valid)
		assert.InDelta(t, 5.0, middle[i].Float, 1e-12)
		assert.InDelta(t, 5.0, upper[i].Float, 1e-12)
		assert.InDelta(t, 5.0, lower[i].Float, 1e-12)
	}
}

func TestBollingerSeries_InsufficientData(t *testing.T) {
	upper, middle, lower := BollingerSeries([]float64{1, 2}, 20, 2.0)
	for i := range upper {
		assert.False(t, upper[i].Valid)
		assert.False(t, middle[i].Valid)
		assert.False(t, lower[i].Valid)
	}
}
