package bybit

import (
	"errors"
	"fmt"
	"net/http"
)

// BybitError represents a Bybit API error with additional context.
type BybitError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *BybitError) Error() string {
	return fmt.Sprintf("Bybit API error %d: %s", e.Code, e.Message)
}

// Common Bybit error codes.
const (
	ErrCodeInvalidAPIKey     = 10003
	ErrCodeInvalidSignature  = 10004
	ErrCodeInvalidTimestamp  = 10005
	ErrCodeRateLimitExceeded = 10006
	ErrCodeSymbolNotFound    = 110009
)

// IsRetryableError determines if an error should be retried.
func IsRetryableError(err error) bool {
	var bybitErr *BybitError
	if errors.As(err, &bybitErr) {
		switch bybitErr.Code {
		case ErrCodeRateLimitExceeded,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}
	return false
}
