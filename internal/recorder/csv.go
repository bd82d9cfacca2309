package recorder

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ducminhle1904/crypto-signal-bot/internal/indicators"
	"github.com/ducminhle1904/crypto-signal-bot/internal/signal"
	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

// signalHeader is the append-only log schema. It never changes shape;
// undefined values are written as the N/A sentinel.
var signalHeader = []string{
	"Timestamp", "Pair", "Price", "RSI", "MACD_Line", "MACD_Signal", "EMA50", "EMA200", "Signal",
}

const undefinedSentinel = "N/A"

const timestampLayout = "2006-01-02 15:04:05"

// CSVRecorder appends evaluation results to a durable CSV log. The file
// is opened per write so an external rotation or truncation between runs
// is picked up cleanly.
type CSVRecorder struct {
	path string
	mu   sync.Mutex
}

// NewCSVRecorder creates a recorder writing to path, initializing the
// file with a header row when it is missing or empty.
func NewCSVRecorder(path string) (*CSVRecorder, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	r := &CSVRecorder{path: path}
	if err := r.ensureHeader(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the log file path.
func (r *CSVRecorder) Path() string {
	return r.path
}

func (r *CSVRecorder) ensureHeader() error {
	info, err := os.Stat(r.path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat signal log: %w", err)
	}
	return r.appendRow(signalHeader, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
}

// Record appends one evaluation result to the log.
func (r *CSVRecorder) Record(res signal.Result) error {
	row := []string{
		res.Timestamp.Format(timestampLayout),
		res.Pair.Symbol,
		FormatValue(res.Price, 8),
		FormatValue(res.Snapshot.RSI, 2),
		FormatValue(res.Snapshot.MACDLine, 5),
		FormatValue(res.Snapshot.MACDSignal, 5),
		FormatValue(res.Snapshot.EMAFast, 8),
		FormatValue(res.Snapshot.EMASlow, 8),
		string(res.Signal),
	}
	return r.appendRow(row, os.O_CREATE|os.O_WRONLY|os.O_APPEND)
}

// RecordFetchError appends a DATA_FETCH_ERROR row for the pair, so runs
// where the data source returned nothing still leave an audit trail.
func (r *CSVRecorder) RecordFetchError(pair types.Pair, at time.Time) error {
	row := []string{
		at.Format(timestampLayout),
		pair.Symbol,
		undefinedSentinel, undefinedSentinel, undefinedSentinel, undefinedSentinel,
		undefinedSentinel, undefinedSentinel,
		"DATA_FETCH_ERROR",
	}
	return r.appendRow(row, os.O_CREATE|os.O_WRONLY|os.O_APPEND)
}

func (r *CSVRecorder) appendRow(row []string, flags int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, flags, 0644)
	if err != nil {
		return fmt.Errorf("failed to open signal log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		return fmt.Errorf("failed to write signal row: %w", err)
	}
	w.Flush()
	return w.Error()
}

// FormatValue renders an indicator value at fixed precision, or the N/A
// sentinel when it is undefined.
func FormatValue(v indicators.Value, precision int) string {
	if !v.Valid {
		return undefinedSentinel
	}
	return fmt.Sprintf("%.*f", precision, v.Float)
}
