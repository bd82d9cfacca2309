package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory represents the classes of failure the evaluation
// pipeline can surface.
type ErrorCategory string

const (
	// Critical errors that should stop the bot
	ErrorCategoryFatal         ErrorCategory = "FATAL"
	ErrorCategoryConfiguration ErrorCategory = "CONFIG"

	// Recoverable errors scoped to one evaluation cycle
	ErrorCategoryExchange   ErrorCategory = "EXCHANGE"
	ErrorCategoryNetwork    ErrorCategory = "NETWORK"
	ErrorCategoryValidation ErrorCategory = "VALIDATION"
	ErrorCategoryRecord     ErrorCategory = "RECORD"
	ErrorCategoryNotify     ErrorCategory = "NOTIFY"
)

// BotError is a categorized error with pipeline context.
type BotError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Underlying error
	Retryable  bool
}

func (e *BotError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Category, e.Component, e.Operation, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Component, e.Operation)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *BotError) Unwrap() error {
	return e.Underlying
}

// IsRetryable returns whether the next cycle may succeed without
// intervention.
func (e *BotError) IsRetryable() bool {
	return e.Retryable
}

// IsFatal returns whether this error should stop the bot.
func (e *BotError) IsFatal() bool {
	return e.Category == ErrorCategoryFatal || e.Category == ErrorCategoryConfiguration
}

// NewExchangeError wraps a market data fetch failure.
func NewExchangeError(component, operation string, err error) *BotError {
	return &BotError{
		Category:   ErrorCategoryExchange,
		Component:  component,
		Operation:  operation,
		Underlying: err,
		Retryable:  true,
	}
}

// NewValidationError wraps a malformed-series failure.
func NewValidationError(component, operation string, err error) *BotError {
	return &BotError{
		Category:   ErrorCategoryValidation,
		Component:  component,
		Operation:  operation,
		Underlying: err,
		Retryable:  false,
	}
}

// NewRecordError wraps a signal-log persistence failure.
func NewRecordError(component, operation string, err error) *BotError {
	return &BotError{
		Category:   ErrorCategoryRecord,
		Component:  component,
		Operation:  operation,
		Underlying: err,
		Retryable:  true,
	}
}

// Category extracts the category of a BotError anywhere in the chain,
// or empty when there is none.
func Category(err error) ErrorCategory {
	var botErr *BotError
	if errors.As(err, &botErr) {
		return botErr.Category
	}
	return ""
}
