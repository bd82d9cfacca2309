package bybit

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// RetryConfig holds configuration for retry behavior on transient API
// failures.
type RetryConfig struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	JitterEnabled bool
}

// DefaultRetryConfig returns a default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		InitialDelay:  time.Second,
		MaxDelay:      time.Minute,
		BackoffFactor: 2.0,
		JitterEnabled: true,
	}
}

// RetryableFunc represents a function that can be retried.
type RetryableFunc func() error

// Retry executes a function with the default retry configuration.
func (c *Client) Retry(ctx context.Context, fn RetryableFunc) error {
	return c.RetryWithConfig(ctx, fn, DefaultRetryConfig())
}

// RetryWithConfig executes a function with exponential backoff on
// retryable errors. Non-retryable errors are returned immediately.
func (c *Client) RetryWithConfig(ctx context.Context, fn RetryableFunc, config RetryConfig) error {
	var lastErr error

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == config.MaxRetries || !IsRetryableError(err) {
			break
		}

		delay := calculateDelay(attempt, config)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("request failed after retries: %w", lastErr)
}

// calculateDelay computes the backoff delay for a retry attempt.
func calculateDelay(attempt int, config RetryConfig) time.Duration {
	delay := config.InitialDelay
	if attempt > 0 {
		delay = time.Duration(float64(config.InitialDelay) * math.Pow(config.BackoffFactor, float64(attempt)))
	}
	if delay > config.MaxDelay {
		delay = config.MaxDelay
	}
	if config.JitterEnabled {
		jitter := time.Duration(float64(delay) * 0.1 * (2*rand.Float64() - 1))
		delay += jitter
	}
	return delay
}
