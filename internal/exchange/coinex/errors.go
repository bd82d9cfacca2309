package coinex

import (
	"errors"
	"fmt"
	"net/http"
)

// CoinExError represents a CoinEx API error with enough context to decide
// whether a retry makes sense.
type CoinExError struct {
	StatusCode int    // HTTP status, 0 on transport failure
	Code       int    // CoinEx business error code, 0 if HTTP-level
	Message    string
	Retryable  bool
}

func (e *CoinExError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("CoinEx API error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("CoinEx HTTP error %d: %s", e.StatusCode, e.Message)
}

// Known CoinEx business error codes.
const (
	ErrCodeRateLimitExceeded = 4213
	ErrCodeServiceBusy       = 3007
	ErrCodeMarketNotFound    = 3639
)

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func isRetryableCode(code int) bool {
	return code == ErrCodeRateLimitExceeded || code == ErrCodeServiceBusy
}

// IsRetryableError determines if an error should be retried.
func IsRetryableError(err error) bool {
	var coinexErr *CoinExError
	if errors.As(err, &coinexErr) {
		return coinexErr.Retryable
	}
	return false
}
