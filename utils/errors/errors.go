// Package errors provides structured error handling for the scholarly backend.
// It defines error types with codes, messages, causes, and contextual
// information shared across the application layers.
package errors

import (
	"fmt"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

// Error code constants for categorizing application errors.
const (
	ErrCodeDatabase    ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeRateLimit   ErrorCode = "RATE_LIMIT_ERROR"
	ErrCodeExternalAPI ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeFeedParse   ErrorCode = "FEED_PARSE_ERROR"
	ErrCodeAuth        ErrorCode = "AUTH_ERROR"
	ErrCodeTimeout     ErrorCode = "TIMEOUT_ERROR"
	ErrCodeUnknown     ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports
// error unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns a string representation of the AppError.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// DatabaseError creates an AppError for database-related errors.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeDatabase,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// RateLimitError creates an AppError for rate limiting violations.
func RateLimitError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeRateLimit,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ExternalAPIError creates an AppError for external API call failures.
func ExternalAPIError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeExternalAPI,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// FeedParseError creates an AppError for malformed upstream feeds.
// Distinct from ExternalAPIError so callers can tell "upstream down"
// from "upstream returned garbage".
func FeedParseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeFeedParse,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// TimeoutError creates an AppError for timeout-related errors.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeTimeout,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}
