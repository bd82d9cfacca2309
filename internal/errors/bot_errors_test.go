package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBotError(t *testing.T) {
	underlying := errors.New("connection refused")
	err := NewExchangeError("coinex", "get klines for BTCUSDT", underlying)

	assert.Equal(t, ErrorCategoryExchange, err.Category)
	assert.True(t, err.IsRetryable())
	assert.False(t, err.IsFatal())
	assert.Contains(t, err.Error(), "EXCHANGE:coinex")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, underlying)
}

func TestBotError_Validation(t *testing.T) {
	err := NewValidationError("provider", "check series", errors.New("out of order"))
	assert.False(t, err.IsRetryable())
	assert.Equal(t, ErrorCategoryValidation, err.Category)
}

func TestCategory(t *testing.T) {
	err := NewRecordError("recorder", "append signal", errors.New("disk full"))
	assert.Equal(t, ErrorCategoryRecord, Category(err))

	wrapped := fmt.Errorf("cycle failed: %w", err)
	assert.Equal(t, ErrorCategoryRecord, Category(wrapped))

	assert.Equal(t, ErrorCategory(""), Category(errors.New("plain")))
}
