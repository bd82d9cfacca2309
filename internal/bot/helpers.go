package bot

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ducminhle1904/crypto-signal-bot/internal/recorder"
	"github.com/ducminhle1904/crypto-signal-bot/internal/signal"
)

// nextRunIn returns how long to wait until the next evaluation: one
// minute past the next interval boundary, so the candle being analyzed is
// complete. If the current boundary's run time is still ahead (e.g. at
// 10:00:30 for a 1h interval) it is used directly.
func nextRunIn(now time.Time, interval time.Duration) time.Duration {
	const buffer = time.Minute

	candidate := now.Truncate(interval).Add(buffer)
	if !candidate.After(now) {
		candidate = candidate.Add(interval)
	}
	return candidate.Sub(now)
}

// printStartupInfo renders the monitoring configuration at startup.
func (b *SignalBot) printStartupInfo() {
	pairs := make([]string, 0, len(b.cfg.Monitor.Pairs))
	for _, p := range b.cfg.Monitor.Pairs {
		pairs = append(pairs, p.String())
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("SIGNAL BOT CONFIGURATION")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"🏪 Exchange", b.source.GetName()},
		{"📊 Pairs", strings.Join(pairs, ", ")},
		{"🕯️ Data Limit", fmt.Sprintf("%d candles", b.cfg.Monitor.DataLimit)},
		{"📝 Signal Log", b.recorder.Path()},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"📈 RSI", fmt.Sprintf("%d (%.0f/%.0f)", b.cfg.Indicators.RSIPeriod, b.cfg.Indicators.RSIOversold, b.cfg.Indicators.RSIOverbought)},
		{"📈 EMAs", fmt.Sprintf("%d/%d", b.cfg.Indicators.EMAFastPeriod, b.cfg.Indicators.EMASlowPeriod)},
		{"📈 MACD", fmt.Sprintf("%d,%d,%d", b.cfg.Indicators.MACDFast, b.cfg.Indicators.MACDSlow, b.cfg.Indicators.MACDSignal)},
		{"📈 Bollinger", fmt.Sprintf("%d, ±%.1fσ", b.cfg.Indicators.BBPeriod, b.cfg.Indicators.BBStdDev)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 15, WidthMax: 15, Align: text.AlignLeft},
		{Number: 2, WidthMin: 30, WidthMax: 50, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

// printEvaluation renders one evaluation result to the console.
func (b *SignalBot) printEvaluation(res signal.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("%s — %s", res.Pair, res.Timestamp.Format("2006-01-02 15:04:05")))
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"💰 Price", recorder.FormatValue(res.Price, 8)},
		{"📊 RSI(14)", recorder.FormatValue(res.Snapshot.RSI, 2)},
		{"📊 MACD Line", recorder.FormatValue(res.Snapshot.MACDLine, 5)},
		{"📊 MACD Signal", recorder.FormatValue(res.Snapshot.MACDSignal, 5)},
		{"📊 EMA50", recorder.FormatValue(res.Snapshot.EMAFast, 8)},
		{"📊 EMA200", recorder.FormatValue(res.Snapshot.EMASlow, 8)},
	})
	t.AppendSeparator()
	t.AppendRow(table.Row{signalEmoji(res.Signal) + " Signal", string(res.Signal)})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 15, WidthMax: 15, Align: text.AlignLeft},
		{Number: 2, WidthMin: 20, WidthMax: 30, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

func signalEmoji(s signal.Type) string {
	switch s {
	case signal.Buy:
		return "📈"
	case signal.Sell:
		return "📉"
	default:
		return "⏸️"
	}
}
