package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ducminhle1904/crypto-signal-bot/internal/bot"
	"github.com/ducminhle1904/crypto-signal-bot/internal/config"
	"github.com/ducminhle1904/crypto-signal-bot/internal/exchange"
	"github.com/ducminhle1904/crypto-signal-bot/internal/logger"
	"github.com/ducminhle1904/crypto-signal-bot/internal/monitoring"
	"github.com/ducminhle1904/crypto-signal-bot/internal/notifications"
	"github.com/ducminhle1904/crypto-signal-bot/internal/recorder"
)

func main() {
	envFile := flag.String("env", ".env", "Path to environment file")
	flag.Parse()

	if err := loadEnvFile(*envFile); err != nil {
		log.Printf("No env file loaded (%v), using process environment", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Println("Initializing the crypto trading signal bot...")

	source, err := exchange.NewMarketDataSource(exchange.Config{
		Name: cfg.Exchange.Name,
		Bybit: &exchange.BybitConfig{
			APIKey:    cfg.Exchange.APIKey,
			APISecret: cfg.Exchange.Secret,
			Category:  cfg.Exchange.Category,
			Testnet:   cfg.Exchange.Testnet,
		},
	})
	if err != nil {
		log.Fatalf("Failed to create market data source: %v", err)
	}

	rec, err := recorder.NewCSVRecorder(cfg.Monitor.LogFile)
	if err != nil {
		log.Fatalf("Failed to initialize signal log: %v", err)
	}
	log.Printf("Logging signals to: %s", rec.Path())

	sessionLog, err := logger.NewLogger(cfg.Monitor.LogDir)
	if err != nil {
		log.Fatalf("Failed to initialize session log: %v", err)
	}
	defer sessionLog.Close()

	var notifier notifications.Notifier = notifications.NopNotifier{}
	if cfg.Notifications.TelegramToken != "" {
		notifier = notifications.NewTelegramNotifier(cfg.Notifications.TelegramToken, cfg.Notifications.TelegramChatID)
		log.Println("Telegram notifications enabled")
	} else {
		log.Println("Telegram notifications disabled (no token configured)")
	}

	health := monitoring.NewHealthChecker()
	startMonitoringServers(cfg, health)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := bot.NewSignalBot(cfg, source, rec, notifier, sessionLog, health)
	b.Run(ctx)

	log.Println("Bot shutdown complete")
}

func loadEnvFile(envFile string) error {
	if _, err := os.Stat(envFile); err == nil {
		return godotenv.Load(envFile)
	}
	return fmt.Errorf("env file %s not found", envFile)
}

func startMonitoringServers(cfg *config.Config, health *monitoring.HealthChecker) {
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", monitoring.NewMetricsHandler())
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Monitoring.PrometheusPort)
		srv := &http.Server{Addr: addr, Handler: metricsMux, ReadHeaderTimeout: 5 * time.Second}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Metrics server error: %v", err)
		}
	}()

	healthMux := http.NewServeMux()
	healthMux.Handle("/health", health)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Monitoring.HealthPort)
		srv := &http.Server{Addr: addr, Handler: healthMux, ReadHeaderTimeout: 5 * time.Second}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Health server error: %v", err)
		}
	}()

	log.Printf("Metrics on :%d/metrics, health on :%d/health", cfg.Monitoring.PrometheusPort, cfg.Monitoring.HealthPort)
}
