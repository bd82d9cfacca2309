package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/joho/godotenv"

	"github.com/ducminhle1904/crypto-signal-bot/internal/config"
	"github.com/ducminhle1904/crypto-signal-bot/internal/indicators"
	"github.com/ducminhle1904/crypto-signal-bot/internal/recorder"
	"github.com/ducminhle1904/crypto-signal-bot/internal/signal"
	"github.com/ducminhle1904/crypto-signal-bot/pkg/data"
	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

// analyze runs the indicator engine and classifier over a historical
// candle CSV once and prints the annotated tail plus the resulting
// classification. Useful for inspecting what the live bot would have
// decided at the end of a given series.
func main() {
	dataFile := flag.String("data", "", "Path to candle CSV file (required)")
	symbol := flag.String("symbol", "BTCUSDT", "Symbol label for the report")
	interval := flag.String("interval", "1h", "Interval label for the report")
	tail := flag.Int("tail", 10, "Number of trailing candles to print")
	xlsxOut := flag.String("xlsx", "", "Optional path for a full annotated .xlsx export")
	envFile := flag.String("env", ".env", "Path to environment file")
	flag.Parse()

	if *dataFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	if _, err := os.Stat(*envFile); err == nil {
		if err := godotenv.Load(*envFile); err != nil {
			log.Printf("⚠️ Could not load %s: %v", *envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	provider := data.NewCSVProvider()
	candles, err := provider.LoadData(*dataFile)
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}
	if err := provider.ValidateData(candles); err != nil {
		log.Fatalf("Malformed candle series: %v", err)
	}
	log.Printf("Loaded %d candles from %s", len(candles), *dataFile)

	engine := indicators.NewEngine(cfg.Indicators)
	classifier := signal.NewClassifier(cfg.Indicators)

	pair := types.Pair{Symbol: *symbol, Interval: *interval}
	snapshots := engine.Compute(candles)
	res := classifier.Evaluate(pair, candles, snapshots)

	printTail(candles, snapshots, *tail)
	printResult(res)

	if *xlsxOut != "" {
		if err := recorder.WriteAnalysisXLSX(res, candles, snapshots, *xlsxOut); err != nil {
			log.Fatalf("Failed to write Excel export: %v", err)
		}
		log.Printf("✅ Saved annotated series to: %s", *xlsxOut)
	}
}

func printTail(candles []types.OHLCV, snapshots []indicators.Snapshot, tail int) {
	start := len(candles) - tail
	if start < 0 {
		start = 0
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("ANNOTATED SERIES (TAIL)")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Timestamp", "Close", "RSI", "MACD L", "MACD S", "EMA50", "EMA200"})

	for i := start; i < len(candles); i++ {
		snap := snapshots[i]
		t.AppendRow(table.Row{
			candles[i].Timestamp.Format("2006-01-02 15:04"),
			fmt.Sprintf("%.8f", candles[i].Close),
			recorder.FormatValue(snap.RSI, 2),
			recorder.FormatValue(snap.MACDLine, 5),
			recorder.FormatValue(snap.MACDSignal, 5),
			recorder.FormatValue(snap.EMAFast, 8),
			recorder.FormatValue(snap.EMASlow, 8),
		})
	}
	t.Render()
	fmt.Println()
}

func printResult(res signal.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("CLASSIFICATION")
	t.SetStyle(table.StyleRounded)
	t.AppendRows([]table.Row{
		{"Pair", res.Pair.String()},
		{"Timestamp", res.Timestamp.Format("2006-01-02 15:04:05")},
		{"Price", recorder.FormatValue(res.Price, 8)},
		{"Signal", string(res.Signal)},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 12, Align: text.AlignLeft},
	})
	t.Render()
}
