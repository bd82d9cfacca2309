package recorder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ducminhle1904/crypto-signal-bot/internal/indicators"
	"github.com/ducminhle1904/crypto-signal-bot/internal/signal"
	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

// WriteAnalysisXLSX exports a fully annotated candle series to an Excel
// workbook: one row per candle with its OHLCV fields and every indicator
// value, plus a summary sheet with the final classification.
func WriteAnalysisXLSX(res signal.Result, data []types.OHLCV, snapshots []indicators.Snapshot, path string) error {
	if len(data) != len(snapshots) {
		return fmt.Errorf("series/snapshot length mismatch: %d vs %d", len(data), len(snapshots))
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const seriesSheet = "Series"
	const summarySheet = "Summary"

	fx.SetSheetName(fx.GetSheetName(0), seriesSheet)
	fx.NewSheet(summarySheet)

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF", Family: "Calibri"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2F4F4F"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSeriesSheet(fx, seriesSheet, data, snapshots, headerStyle); err != nil {
		return err
	}
	if err := writeSummarySheet(fx, summarySheet, res, headerStyle); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func writeSeriesSheet(fx *excelize.File, sheet string, data []types.OHLCV, snapshots []indicators.Snapshot, headerStyle int) error {
	headers := []string{
		"Timestamp", "Open", "High", "Low", "Close", "Volume",
		"RSI", "EMA50", "EMA200", "MACD_Line", "MACD_Signal", "MACD_Hist",
		"BB_Upper", "BB_Middle", "BB_Lower",
	}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := fx.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := fx.SetCellStyle(sheet, "A1", endHeader, headerStyle); err != nil {
		return err
	}

	for i := range data {
		row := i + 2
		snap := snapshots[i]
		values := []interface{}{
			data[i].Timestamp.Format(timestampLayout),
			data[i].Open, data[i].High, data[i].Low, data[i].Close, data[i].Volume,
			cellValue(snap.RSI), cellValue(snap.EMAFast), cellValue(snap.EMASlow),
			cellValue(snap.MACDLine), cellValue(snap.MACDSignal), cellValue(snap.MACDHist),
			cellValue(snap.BBUpper), cellValue(snap.BBMiddle), cellValue(snap.BBLower),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := fx.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummarySheet(fx *excelize.File, sheet string, res signal.Result, headerStyle int) error {
	rows := [][]interface{}{
		{"Pair", res.Pair.String()},
		{"Timestamp", res.Timestamp.Format(timestampLayout)},
		{"Price", cellValue(res.Price)},
		{"RSI(14)", cellValue(res.Snapshot.RSI)},
		{"MACD Line", cellValue(res.Snapshot.MACDLine)},
		{"MACD Signal", cellValue(res.Snapshot.MACDSignal)},
		{"EMA50", cellValue(res.Snapshot.EMAFast)},
		{"EMA200", cellValue(res.Snapshot.EMASlow)},
		{"Signal", string(res.Signal)},
	}
	for i, r := range rows {
		keyCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := fx.SetCellValue(sheet, keyCell, r[0]); err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, valCell, r[1]); err != nil {
			return err
		}
	}
	lastKey, _ := excelize.CoordinatesToCellName(1, len(rows))
	return fx.SetCellStyle(sheet, "A1", lastKey, headerStyle)
}

// cellValue keeps undefined warm-up values visibly distinct in the sheet.
func cellValue(v indicators.Value) interface{} {
	if !v.Valid {
		return undefinedSentinel
	}
	return v.Float
}
