// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for validation, upstream failures and pagination

package errors

import (
	"errors"
	"fmt"
)

// Upstream status codes reported by the places API, plus the transport-level
// statuses assigned locally when no API status is available.
const (
	StatusOverQueryLimit = "OVER_QUERY_LIMIT"
	StatusRequestDenied  = "REQUEST_DENIED"
	StatusInvalidRequest = "INVALID_REQUEST"
	StatusNotFound       = "NOT_FOUND"
	StatusUnknown        = "UNKNOWN_ERROR"
	StatusNetworkError   = "NETWORK_ERROR"
	StatusTimeout        = "TIMEOUT"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// UpstreamError represents a failed call to the places API.
// It is never retried by the component that produced it.
type UpstreamError struct {
	// Operation is the upstream call that failed (text_search, place_details)
	Operation string

	// Status is the upstream status code, e.g. OVER_QUERY_LIMIT
	Status string

	// Message is the upstream error message, if any
	Message string

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream %s failed: %s - %s", e.Operation, e.Status, e.Message)
	}
	return fmt.Sprintf("upstream %s failed: %s", e.Operation, e.Status)
}

// Unwrap returns the underlying error
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// TokenNotReadyError is returned when a page token was used before the
// upstream made the next page available.
type TokenNotReadyError struct {
	Token string

	// Message is the upstream's explanation, if it gave one
	Message string
}

// Error implements the error interface
func (e *TokenNotReadyError) Error() string {
	return "page token is not ready yet"
}

// DetailLookupError represents a failed detail lookup for one place.
// It is absorbed by enrichment and only ever logged.
type DetailLookupError struct {
	PlaceID string
	Err     error
}

// Error implements the error interface
func (e *DetailLookupError) Error() string {
	return fmt.Sprintf("detail lookup failed for place %s: %v", e.PlaceID, e.Err)
}

// Unwrap returns the underlying error
func (e *DetailLookupError) Unwrap() error {
	return e.Err
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IsTokenNotReady checks if an error is a TokenNotReadyError
func IsTokenNotReady(err error) bool {
	var tokenErr *TokenNotReadyError
	return errors.As(err, &tokenErr)
}

// IsDetailLookup checks if an error is a DetailLookupError
func IsDetailLookup(err error) bool {
	var lookupErr *DetailLookupError
	return errors.As(err, &lookupErr)
}

// UpstreamStatus returns the upstream status carried by err, or "" if none
func UpstreamStatus(err error) string {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Status
	}
	return ""
}

// StatusOf returns a status label for the outcome of an upstream call:
// "OK" for nil, the upstream status when known, UNKNOWN_ERROR otherwise.
func StatusOf(err error) string {
	if err == nil {
		return "OK"
	}
	if status := UpstreamStatus(err); status != "" {
		return status
	}
	if IsTokenNotReady(err) {
		return StatusInvalidRequest
	}
	return StatusUnknown
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
