// Package errors provides standardized error handling for the HTTP services.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrCodeMalformedBody     ErrorCode = "MALFORMED_BODY"
	ErrCodeAuthRequired      ErrorCode = "AUTH_REQUIRED"
	ErrCodeAuthInvalid       ErrorCode = "AUTH_INVALID"
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeUpstreamFailed    ErrorCode = "UPSTREAM_FAILED"
	ErrCodeStorageFailed     ErrorCode = "STORAGE_FAILED"
)

// APIError represents a structured application error carried onto HTTP
// error responses.
type APIError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError[%s]: %s", e.Code, e.Message)
}

// Status returns the HTTP status code for the error.
func (e *APIError) Status() int {
	switch e.Code {
	case ErrCodeValidationFailed, ErrCodeMalformedBody:
		return http.StatusBadRequest
	case ErrCodeAuthRequired, ErrCodeAuthInvalid:
		return http.StatusUnauthorized
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeUpstreamFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a non-retryable request validation error.
func NewValidationError(details string) *APIError {
	return &APIError{
		Code:      ErrCodeValidationFailed,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedBodyError creates a non-retryable body parse error.
func NewMalformedBodyError(err error) *APIError {
	return &APIError{
		Code:      ErrCodeMalformedBody,
		Message:   "Request body is not valid JSON",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuthRequiredError creates a non-retryable missing-credentials error.
func NewAuthRequiredError() *APIError {
	return &APIError{
		Code:      ErrCodeAuthRequired,
		Message:   "Authentication required",
		Details:   "Provide a bearer token in the Authorization header",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuthInvalidError creates a non-retryable invalid-credentials error.
func NewAuthInvalidError(details string) *APIError {
	return &APIError{
		Code:      ErrCodeAuthInvalid,
		Message:   "Authentication failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRateLimitError creates a retryable rate limit error. retryAfter is
// surfaced both in metadata and on the Retry-After response header.
func NewRateLimitError(retryAfter int) *APIError {
	return &APIError{
		Code:      ErrCodeRateLimitExceeded,
		Message:   "Rate limit exceeded",
		Retryable: true,
		Metadata:  map[string]interface{}{"retryAfter": retryAfter},
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamError creates a retryable upstream service error.
func NewUpstreamError(service string, err error) *APIError {
	return &APIError{
		Code:      ErrCodeUpstreamFailed,
		Message:   fmt.Sprintf("Upstream service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageError creates a retryable storage error.
func NewStorageError(err error) *APIError {
	return &APIError{
		Code:      ErrCodeStorageFailed,
		Message:   "Storage operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
