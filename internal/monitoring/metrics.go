package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Signal metrics
	signalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signal_bot_signals_total",
			Help: "Total number of evaluations by resulting signal",
		},
		[]string{"symbol", "signal"},
	)

	evaluationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "signal_bot_evaluation_duration_seconds",
			Help:    "Duration of fetch-compute-classify cycles",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"symbol"},
	)

	// Market data metrics
	currentPrice = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "signal_bot_current_price",
			Help: "Latest close price of a monitored symbol",
		},
		[]string{"symbol"},
	)

	currentRSI = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "signal_bot_rsi",
			Help: "Latest RSI value of a monitored symbol",
		},
		[]string{"symbol"},
	)

	// Error metrics
	fetchErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signal_bot_fetch_errors_total",
			Help: "Total number of market data fetch failures",
		},
		[]string{"symbol"},
	)
)

func init() {
	prometheus.MustRegister(signalsTotal)
	prometheus.MustRegister(evaluationDuration)
	prometheus.MustRegister(currentPrice)
	prometheus.MustRegister(currentRSI)
	prometheus.MustRegister(fetchErrorsTotal)
}

// MetricsHandler handles the Prometheus metrics endpoint.
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint.
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordSignal records one evaluation outcome.
func RecordSignal(symbol, signal string, seconds float64) {
	signalsTotal.WithLabelValues(symbol, signal).Inc()
	evaluationDuration.WithLabelValues(symbol).Observe(seconds)
}

// UpdatePrice updates the current price gauge.
func UpdatePrice(symbol string, price float64) {
	currentPrice.WithLabelValues(symbol).Set(price)
}

// UpdateRSI updates the RSI gauge.
func UpdateRSI(symbol string, rsi float64) {
	currentRSI.WithLabelValues(symbol).Set(rsi)
}

// RecordFetchError records a market data fetch failure.
func RecordFetchError(symbol string) {
	fetchErrorsTotal.WithLabelValues(symbol).Inc()
}
