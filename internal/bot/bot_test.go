package bot

import (
	"context"
	"encoding/csv"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/crypto-signal-bot/internal/config"
	"github.com/ducminhle1904/crypto-signal-bot/internal/indicators"
	"github.com/ducminhle1904/crypto-signal-bot/internal/logger"
	"github.com/ducminhle1904/crypto-signal-bot/internal/monitoring"
	"github.com/ducminhle1904/crypto-signal-bot/internal/notifications"
	"github.com/ducminhle1904/crypto-signal-bot/internal/recorder"
	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

// fakeSource serves a canned candle series or a canned error.
type fakeSource struct {
	candles []types.OHLCV
	err     error
	calls   int
}

func (f *fakeSource) GetName() string { return "fake" }

func (f *fakeSource) GetKlines(ctx context.Context, symbol, interval string, limit int) ([]types.OHLCV, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.candles) {
		return f.candles[len(f.candles)-limit:], nil
	}
	return f.candles, nil
}

func wavyCandles(n int) []types.OHLCV {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	data := make([]types.OHLCV, n)
	for i := range data {
		c := 1000 + 50*math.Sin(float64(i)/9)
		data[i] = types.OHLCV{
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			Open:      c - 1,
			High:      c + 2,
			Low:       c - 2,
			Close:     c,
			Volume:    1000,
		}
	}
	return data
}

func newTestBot(t *testing.T, source *fakeSource) (*SignalBot, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Monitor.Pairs = []types.Pair{{Symbol: "BTCUSDT", Interval: "1h"}}
	cfg.Monitor.DataLimit = 250
	cfg.Indicators = indicators.DefaultParams()

	logPath := filepath.Join(dir, "signals.csv")
	rec, err := recorder.NewCSVRecorder(logPath)
	require.NoError(t, err)

	sessionLog, err := logger.NewLogger(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	t.Cleanup(func() { sessionLog.Close() })

	b := NewSignalBot(cfg, source, rec, notifications.NopNotifier{}, sessionLog, monitoring.NewHealthChecker())
	return b, logPath
}

func countRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestEvaluatePair_NoSignalLeavesLogUntouched(t *testing.T) {
	source := &fakeSource{candles: wavyCandles(250)}
	b, logPath := newTestBot(t, source)

	err := b.EvaluatePair(context.Background(), types.Pair{Symbol: "BTCUSDT", Interval: "1h"})
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)

	// Header only: NO_SIGNAL evaluations are not recorded.
	rows := countRows(t, logPath)
	assert.Len(t, rows, 1)
}

func TestEvaluatePair_FetchErrorRecorded(t *testing.T) {
	source := &fakeSource{err: errors.New("connection refused")}
	b, logPath := newTestBot(t, source)

	err := b.EvaluatePair(context.Background(), types.Pair{Symbol: "BTCUSDT", Interval: "1h"})
	require.Error(t, err)

	rows := countRows(t, logPath)
	require.Len(t, rows, 2)
	assert.Equal(t, "DATA_FETCH_ERROR", rows[1][8])
	assert.Equal(t, "BTCUSDT", rows[1][1])
	assert.Equal(t, "N/A", rows[1][2])
}

func TestEvaluatePair_EmptySeriesTreatedAsFetchError(t *testing.T) {
	source := &fakeSource{candles: nil}
	b, logPath := newTestBot(t, source)

	err := b.EvaluatePair(context.Background(), types.Pair{Symbol: "BTCUSDT", Interval: "1h"})
	require.Error(t, err)

	rows := countRows(t, logPath)
	require.Len(t, rows, 2)
	assert.Equal(t, "DATA_FETCH_ERROR", rows[1][8])
}

func TestEvaluatePair_ShortSeriesIsNoSignal(t *testing.T) {
	source := &fakeSource{candles: wavyCandles(50)}
	b, logPath := newTestBot(t, source)

	err := b.EvaluatePair(context.Background(), types.Pair{Symbol: "BTCUSDT", Interval: "1h"})
	require.NoError(t, err)

	rows := countRows(t, logPath)
	assert.Len(t, rows, 1)
}
