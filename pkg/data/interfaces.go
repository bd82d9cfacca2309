package data

import (
	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

// Provider loads historical candles from a local source for offline
// analysis. The analysis engine itself never touches files; providers sit
// on the caller side of that boundary and are responsible for handing
// over a validated, oldest-to-newest series.
type Provider interface {
	// LoadData loads candles from the specified source.
	LoadData(source string) ([]types.OHLCV, error)

	// ValidateData checks ordering, duplicate timestamps and the OHLC
	// invariants before the series is handed to the engine.
	ValidateData(data []types.OHLCV) error

	// GetName returns the name of the data provider.
	GetName() string
}

// CSVColumnMapping defines the column positions for different CSV formats.
type CSVColumnMapping struct {
	TimestampCol int
	OpenCol      int
	HighCol      int
	LowCol       int
	CloseCol     int
	VolumeCol    int
	MinColumns   int
	DateFormat   string
}

// DefaultCSVFormat matches exchange candle exports:
// timestamp,open,high,low,close,volume with RFC3339-like timestamps.
var DefaultCSVFormat = CSVColumnMapping{
	TimestampCol: 0,
	OpenCol:      1,
	HighCol:      2,
	LowCol:       3,
	CloseCol:     4,
	VolumeCol:    5,
	MinColumns:   6,
	DateFormat:   "2006-01-02 15:04:05",
}
