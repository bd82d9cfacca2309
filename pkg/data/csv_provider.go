package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

// CSVProvider implements Provider for CSV candle files.
type CSVProvider struct {
	format CSVColumnMapping
}

// NewCSVProvider creates a new CSV data provider with the default format.
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{
		format: DefaultCSVFormat,
	}
}

// NewCSVProviderWithFormat creates a CSV data provider with a custom column layout.
func NewCSVProviderWithFormat(format CSVColumnMapping) *CSVProvider {
	return &CSVProvider{
		format: format,
	}
}

// GetName returns the name of the data provider.
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadData loads historical candles from a CSV file.
func (p *CSVProvider) LoadData(source string) ([]types.OHLCV, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", source, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var data []types.OHLCV

	lineNum := 1 // header already consumed
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNum, err)
		}
		lineNum++

		if len(record) < p.format.MinColumns {
			log.Printf("⚠️ Insufficient columns at line %d (expected %d, got %d), skipping", lineNum, p.format.MinColumns, len(record))
			continue
		}

		candle, err := p.parseRecord(record)
		if err != nil {
			log.Printf("⚠️ %v at line %d, skipping", err, lineNum)
			continue
		}

		data = append(data, candle)
	}

	return data, nil
}

func (p *CSVProvider) parseRecord(record []string) (types.OHLCV, error) {
	timestamp, err := time.Parse(p.format.DateFormat, record[p.format.TimestampCol])
	if err != nil {
		// Exchange dumps sometimes carry millisecond epochs instead.
		ms, msErr := strconv.ParseInt(record[p.format.TimestampCol], 10, 64)
		if msErr != nil {
			return types.OHLCV{}, fmt.Errorf("invalid timestamp '%s'", record[p.format.TimestampCol])
		}
		timestamp = time.UnixMilli(ms).UTC()
	}

	open, err := strconv.ParseFloat(record[p.format.OpenCol], 64)
	if err != nil {
		return types.OHLCV{}, fmt.Errorf("invalid open price '%s'", record[p.format.OpenCol])
	}
	high, err := strconv.ParseFloat(record[p.format.HighCol], 64)
	if err != nil {
		return types.OHLCV{}, fmt.Errorf("invalid high price '%s'", record[p.format.HighCol])
	}
	low, err := strconv.ParseFloat(record[p.format.LowCol], 64)
	if err != nil {
		return types.OHLCV{}, fmt.Errorf("invalid low price '%s'", record[p.format.LowCol])
	}
	closePrice, err := strconv.ParseFloat(record[p.format.CloseCol], 64)
	if err != nil {
		return types.OHLCV{}, fmt.Errorf("invalid close price '%s'", record[p.format.CloseCol])
	}
	volume, err := strconv.ParseFloat(record[p.format.VolumeCol], 64)
	if err != nil {
		return types.OHLCV{}, fmt.Errorf("invalid volume '%s'", record[p.format.VolumeCol])
	}

	return types.OHLCV{
		Timestamp: timestamp,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     closePrice,
		Volume:    volume,
	}, nil
}

// ValidateData checks that the series satisfies the engine's input
// contract: strictly increasing timestamps (which also rules out
// duplicates), high/low bracketing open and close, and non-negative
// volume.
func (p *CSVProvider) ValidateData(data []types.OHLCV) error {
	for i, c := range data {
		if i > 0 && !c.Timestamp.After(data[i-1].Timestamp) {
			return fmt.Errorf("candle %d: timestamp %s not after previous %s", i, c.Timestamp, data[i-1].Timestamp)
		}
		if c.High < c.Open || c.High < c.Close {
			return fmt.Errorf("candle %d at %s: high %.8f below open/close", i, c.Timestamp, c.High)
		}
		if c.Low > c.Open || c.Low > c.Close {
			return fmt.Errorf("candle %d at %s: low %.8f above open/close", i, c.Timestamp, c.Low)
		}
		if c.Volume < 0 {
			return fmt.Errorf("candle %d at %s: negative volume %.8f", i, c.Timestamp, c.Volume)
		}
	}
	return nil
}
