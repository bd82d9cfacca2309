package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

// HealthChecker tracks liveness of the evaluation loop and exposes it as
// a JSON health endpoint.
type HealthChecker struct {
	mu             sync.RWMutex
	lastEvaluation time.Time
	lastSignal     string
	lastPrice      float64
	isConnected    bool
	errors         []string
}

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	LastEvaluation time.Time `json:"last_evaluation"`
	LastSignal     string    `json:"last_signal,omitempty"`
	LastPrice      float64   `json:"last_price"`
	IsConnected    bool      `json:"is_connected"`
	Uptime         string    `json:"uptime"`
	Errors         []string  `json:"errors,omitempty"`
}

// NewHealthChecker creates a new health checker.
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		errors: make([]string, 0),
	}
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "healthy"
	if !h.isConnected || time.Since(h.lastEvaluation) > 24*time.Hour {
		status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if len(h.errors) > 0 {
		status = "unhealthy"
		w.WriteHeader(http.StatusInternalServerError)
	}

	health := HealthStatus{
		Status:         status,
		Timestamp:      time.Now(),
		LastEvaluation: h.lastEvaluation,
		LastSignal:     h.lastSignal,
		LastPrice:      h.lastPrice,
		IsConnected:    h.isConnected,
		Uptime:         time.Since(startTime).String(),
		Errors:         h.errors,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// SetConnected marks the data source as reachable or not.
func (h *HealthChecker) SetConnected(connected bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.isConnected = connected
}

// RecordEvaluation notes a completed evaluation cycle.
func (h *HealthChecker) RecordEvaluation(signal string, price float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastEvaluation = time.Now()
	h.lastSignal = signal
	h.lastPrice = price
	h.errors = h.errors[:0]
}

// AddError records an error surfaced by the evaluation loop. Only the
// most recent few are kept.
func (h *HealthChecker) AddError(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, msg)
	if len(h.errors) > 10 {
		h.errors = h.errors[len(h.errors)-10:]
	}
}
