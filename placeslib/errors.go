// ABOUTME: Error types and handling for the placeslib library
// ABOUTME: Provides structured errors with context for library operations

package placeslib

import (
	"errors"
	"fmt"

	coreerrors "places-finder-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates invalid input
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeUpstream indicates the places API failed or rejected a call
	ErrorTypeUpstream ErrorType = "upstream"

	// ErrorTypeConfiguration indicates the client was misconfigured
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// ErrClientClosed is returned when operations are attempted on a closed client
var ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsUpstreamError checks if an error is an upstream error
func IsUpstreamError(err error) bool {
	return hasType(err, ErrorTypeUpstream)
}

// UpstreamStatus returns the places API status behind err, or "" if none
func UpstreamStatus(err error) string {
	return coreerrors.UpstreamStatus(err)
}

func hasType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// wrapError converts core errors to library errors
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case coreerrors.IsValidation(err):
		return NewError(ErrorTypeValidation, "invalid search input").WithCause(err)
	case coreerrors.IsUpstream(err), coreerrors.IsTokenNotReady(err):
		return NewError(ErrorTypeUpstream, "places API call failed").WithCause(err)
	default:
		return NewError(ErrorTypeInternal, "search failed").WithCause(err)
	}
}
