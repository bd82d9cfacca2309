package recorder

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/crypto-signal-bot/internal/indicators"
	"github.com/ducminhle1904/crypto-signal-bot/internal/signal"
	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func sampleResult() signal.Result {
	return signal.Result{
		Timestamp: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		Pair:      types.Pair{Symbol: "BTCUSDT", Interval: "1h"},
		Signal:    signal.Buy,
		Price:     indicators.Defined(65432.1),
		Snapshot: indicators.Snapshot{
			RSI:        indicators.Defined(28.456),
			EMAFast:    indicators.Defined(64000.5),
			EMASlow:    indicators.Defined(63000.25),
			MACDLine:   indicators.Defined(12.34567),
			MACDSignal: indicators.Defined(10.11111),
		},
	}
}

func TestNewCSVRecorder_WritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.csv")
	_, err := NewCSVRecorder(path)
	require.NoError(t, err)

	rows := readRows(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, signalHeader, rows[0])
}

func TestNewCSVRecorder_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "signals.csv")
	_, err := NewCSVRecorder(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewCSVRecorder_KeepsExistingLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.csv")
	r, err := NewCSVRecorder(path)
	require.NoError(t, err)
	require.NoError(t, r.Record(sampleResult()))

	// Reopening must not truncate or duplicate the header.
	_, err = NewCSVRecorder(path)
	require.NoError(t, err)

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, signalHeader, rows[0])
}

func TestCSVRecorder_Record(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.csv")
	r, err := NewCSVRecorder(path)
	require.NoError(t, err)

	require.NoError(t, r.Record(sampleResult()))

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"2024-03-15 12:00:00",
		"BTCUSDT",
		"65432.10000000",
		"28.46",
		"12.34567",
		"10.11111",
		"64000.50000000",
		"63000.25000000",
		"BUY",
	}, rows[1])
}

func TestCSVRecorder_RecordUndefinedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.csv")
	r, err := NewCSVRecorder(path)
	require.NoError(t, err)

	res := sampleResult()
	res.Signal = signal.NoSignal
	res.Snapshot.RSI = indicators.Undefined()
	res.Snapshot.EMASlow = indicators.Undefined()
	require.NoError(t, r.Record(res))

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "N/A", rows[1][3])
	assert.Equal(t, "N/A", rows[1][7])
	assert.Equal(t, "NO_SIGNAL", rows[1][8])
}

func TestCSVRecorder_RecordFetchError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.csv")
	r, err := NewCSVRecorder(path)
	require.NoError(t, err)

	at := time.Date(2024, 3, 15, 13, 1, 0, 0, time.UTC)
	require.NoError(t, r.RecordFetchError(types.Pair{Symbol: "ETHUSDT", Interval: "1h"}, at))

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"2024-03-15 13:01:00",
		"ETHUSDT",
		"N/A", "N/A", "N/A", "N/A", "N/A", "N/A",
		"DATA_FETCH_ERROR",
	}, rows[1])
}

func TestCSVRecorder_AppendsAcrossWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.csv")
	r, err := NewCSVRecorder(path)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Record(sampleResult()))
	}

	rows := readRows(t, path)
	assert.Len(t, rows, 4)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "1.23", FormatValue(indicators.Defined(1.234), 2))
	assert.Equal(t, "100.00000", FormatValue(indicators.Defined(100), 5))
	assert.Equal(t, "N/A", FormatValue(indicators.Undefined(), 2))
}
