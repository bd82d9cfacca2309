package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSISeries_UndefinedDuringWarmup(t *testing.T) {
	values := make([]float64, 20)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	out := RSISeries(values, 14)

	require.Len(t, out, 20)
	for i := 0; i < 14; i++ {
		assert.False(t, out[i].Valid, "index %d", i)
	}
	assert.True(t, out[14].Valid)
}

func TestRSISeries_SaturatesAt100OnPureGains(t *testing.T) {
	values := make([]float64, 20)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	out := RSISeries(values, 14)

	for i := 14; i < 20; i++ {
		require.True(t, out[i].Valid)
		assert.InDelta(t, 100.0, out[i].Float, 1e-12, "index %d", i)
	}
}

func TestRSISeries_WilderSmoothing(t *testing.T) {
	// period 2 over alternating +1/-1 deltas: seed avgGain=avgLoss=0.5
	// gives RSI 50; the next +1 delta smooths to avgGain 0.75 and
	// avgLoss 0.25, RS=3, RSI=75.
	out := RSISeries([]float64{1, 2, 1, 2}, 2)

	require.Len(t, out, 4)
	assert.False(t, out[0].Valid)
	assert.False(t, out[1].Valid)
	require.True(t, out[2].Valid)
	assert.InDelta(t, 50.0, out[2].Float, 1e-12)
	require.True(t, out[3].Valid)
	assert.InDelta(t, 75.0, out[3].Float, 1e-12)
}

func TestRSISeries_StaysInRange(t *testing.T) {
	values := make([]float64, 120)
	for i := range values {
		// deterministic alternation with drift
		values[i] = 100 + float64(i%7) - float64(i%3)
	}
	out := RSISeries(values, 14)

	for i := 14; i < len(values); i++ {
		require.True(t, out[i].Valid)
		assert.GreaterOrEqual(t, out[i].Float, 0.0)
		assert.LessOrEqual(t, out[i].Float, 100.0)
	}
}

func TestRSISeries_InsufficientData(t *testing.T) {
	out := RSISeries([]float64{1, 2, 3}, 14)
	for i, v := range out {
		assert.False(t, v.Valid, "index %d", i)
	}
}
