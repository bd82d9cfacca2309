package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ducminhle1904/crypto-signal-bot/internal/config"
	boterrors "github.com/ducminhle1904/crypto-signal-bot/internal/errors"
	"github.com/ducminhle1904/crypto-signal-bot/internal/exchange"
	"github.com/ducminhle1904/crypto-signal-bot/internal/indicators"
	"github.com/ducminhle1904/crypto-signal-bot/internal/logger"
	"github.com/ducminhle1904/crypto-signal-bot/internal/monitoring"
	"github.com/ducminhle1904/crypto-signal-bot/internal/notifications"
	"github.com/ducminhle1904/crypto-signal-bot/internal/recorder"
	"github.com/ducminhle1904/crypto-signal-bot/internal/signal"
	"github.com/ducminhle1904/crypto-signal-bot/pkg/types"
)

// SignalBot periodically fetches candles for each monitored pair, runs
// the indicator engine and classifier over them, and hands BUY/SELL
// results to the recorder and notifier. All trading-state concerns live
// outside this process; the bot only observes and reports.
type SignalBot struct {
	cfg        *config.Config
	source     exchange.MarketDataSource
	engine     *indicators.Engine
	classifier *signal.Classifier
	recorder   *recorder.CSVRecorder
	notifier   notifications.Notifier
	logger     *logger.Logger
	health     *monitoring.HealthChecker

	wg sync.WaitGroup
}

// NewSignalBot wires the evaluation pipeline together.
func NewSignalBot(
	cfg *config.Config,
	source exchange.MarketDataSource,
	rec *recorder.CSVRecorder,
	notifier notifications.Notifier,
	sessionLog *logger.Logger,
	health *monitoring.HealthChecker,
) *SignalBot {
	return &SignalBot{
		cfg:        cfg,
		source:     source,
		engine:     indicators.NewEngine(cfg.Indicators),
		classifier: signal.NewClassifier(cfg.Indicators),
		recorder:   rec,
		notifier:   notifier,
		logger:     sessionLog,
		health:     health,
	}
}

// Run performs an immediate evaluation of every monitored pair, then
// schedules per-pair evaluation at each candle close (one minute past the
// interval boundary, so the exchange has finalized the candle). Blocks
// until the context is cancelled.
func (b *SignalBot) Run(ctx context.Context) {
	b.printStartupInfo()

	log.Println("--- Starting Initial Analysis ---")
	for _, pair := range b.cfg.Monitor.Pairs {
		if err := b.EvaluatePair(ctx, pair); err != nil {
			log.Printf("❌ Initial analysis failed for %s: %v", pair, err)
		}
	}

	log.Println("--- Scheduling Regular Analysis ---")
	for _, pair := range b.cfg.Monitor.Pairs {
		d, err := intervalDuration(pair.Interval)
		if err != nil {
			log.Printf("❌ Not scheduling %s: %v", pair, err)
			continue
		}
		log.Printf("⏰ Scheduled %s analysis for %s at boundary+1m", pair.Interval, pair)

		b.wg.Add(1)
		go b.scheduleLoop(ctx, pair, d)
	}

	<-ctx.Done()
	b.wg.Wait()
	log.Println("Scheduler stopped")
}

func (b *SignalBot) scheduleLoop(ctx context.Context, pair types.Pair, interval time.Duration) {
	defer b.wg.Done()

	for {
		wait := nextRunIn(time.Now().UTC(), interval)
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if err := b.EvaluatePair(ctx, pair); err != nil {
				log.Printf("❌ Analysis failed for %s: %v", pair, err)
			}
		}
	}
}

// EvaluatePair runs one fetch-compute-classify cycle for a pair.
func (b *SignalBot) EvaluatePair(ctx context.Context, pair types.Pair) error {
	started := time.Now()
	log.Printf("🔍 Running analysis for %s...", pair)

	data, err := b.source.GetKlines(ctx, pair.Symbol, pair.Interval, b.cfg.Monitor.DataLimit)
	if err != nil {
		return b.handleFetchFailure(pair, err)
	}
	if len(data) == 0 {
		return b.handleFetchFailure(pair, fmt.Errorf("no candles returned for %s", pair))
	}
	b.health.SetConnected(true)

	snapshots := b.engine.Compute(data)
	res := b.classifier.Evaluate(pair, data, snapshots)

	b.printEvaluation(res)
	b.logger.LogEvaluation(res)

	monitoring.RecordSignal(pair.Symbol, string(res.Signal), time.Since(started).Seconds())
	if res.Price.Valid {
		monitoring.UpdatePrice(pair.Symbol, res.Price.Float)
	}
	if res.Snapshot.RSI.Valid {
		monitoring.UpdateRSI(pair.Symbol, res.Snapshot.RSI.Float)
	}
	b.health.RecordEvaluation(string(res.Signal), res.Price.Float)

	if res.Signal == signal.NoSignal {
		return nil
	}

	if err := b.recorder.Record(res); err != nil {
		return boterrors.NewRecordError("recorder", "append signal", err)
	}
	log.Printf("✅ Signal %s for %s logged", res.Signal, pair)

	b.notify(res)
	return nil
}

func (b *SignalBot) handleFetchFailure(pair types.Pair, err error) error {
	b.health.SetConnected(false)
	b.health.AddError(err.Error())
	monitoring.RecordFetchError(pair.Symbol)
	b.logger.LogError(fmt.Sprintf("fetch %s", pair), err)

	if recErr := b.recorder.RecordFetchError(pair, time.Now().UTC()); recErr != nil {
		log.Printf("⚠️ Could not record fetch error for %s: %v", pair, recErr)
	}
	return boterrors.NewExchangeError(b.source.GetName(), fmt.Sprintf("get klines for %s", pair), err)
}

func (b *SignalBot) notify(res signal.Result) {
	level := "buy"
	if res.Signal == signal.Sell {
		level = "sell"
	}
	message := fmt.Sprintf("%s %s at %s\nRSI(14): %s | MACD: L:%s S:%s",
		res.Signal, res.Pair,
		recorder.FormatValue(res.Price, 8),
		recorder.FormatValue(res.Snapshot.RSI, 2),
		recorder.FormatValue(res.Snapshot.MACDLine, 5),
		recorder.FormatValue(res.Snapshot.MACDSignal, 5),
	)
	if err := b.notifier.SendAlert(level, message); err != nil {
		log.Printf("⚠️ Failed to send %s notification for %s: %v", res.Signal, res.Pair, err)
	}
}

// intervalDuration converts a canonical interval name to its duration.
func intervalDuration(interval string) (time.Duration, error) {
	durations := map[string]time.Duration{
		"1m":  time.Minute,
		"3m":  3 * time.Minute,
		"5m":  5 * time.Minute,
		"15m": 15 * time.Minute,
		"30m": 30 * time.Minute,
		"1h":  time.Hour,
		"2h":  2 * time.Hour,
		"4h":  4 * time.Hour,
		"6h":  6 * time.Hour,
		"12h": 12 * time.Hour,
		"1d":  24 * time.Hour,
	}
	d, ok := durations[strings.ToLower(interval)]
	if !ok {
		return 0, fmt.Errorf("unsupported interval %q", interval)
	}
	return d, nil
}
