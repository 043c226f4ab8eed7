package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "keyword",
		Message: "cannot be empty",
	}

	expected := "validation error on field 'keyword': cannot be empty"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestUpstreamError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *UpstreamError
		expected string
	}{
		{
			name:     "with message",
			err:      &UpstreamError{Operation: "text_search", Status: StatusRequestDenied, Message: "The provided API key is invalid."},
			expected: "upstream text_search failed: REQUEST_DENIED - The provided API key is invalid.",
		},
		{
			name:     "without message",
			err:      &UpstreamError{Operation: "place_details", Status: StatusTimeout},
			expected: "upstream place_details failed: TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("UpstreamError.Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUpstreamError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &UpstreamError{Operation: "text_search", Status: StatusNetworkError, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("UpstreamError should unwrap to its cause")
	}
}

func TestIsUpstream_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("fetch page: %w", &UpstreamError{Operation: "text_search", Status: StatusOverQueryLimit})

	if !IsUpstream(wrapped) {
		t.Error("IsUpstream should return true for wrapped UpstreamError")
	}
	if got := UpstreamStatus(wrapped); got != StatusOverQueryLimit {
		t.Errorf("UpstreamStatus() = %v, want %v", got, StatusOverQueryLimit)
	}
}

func TestUpstreamStatus_NotUpstream(t *testing.T) {
	if got := UpstreamStatus(errors.New("boom")); got != "" {
		t.Errorf("UpstreamStatus() = %q, want empty", got)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil is OK", err: nil, expected: "OK"},
		{name: "upstream status", err: &UpstreamError{Status: StatusOverQueryLimit}, expected: StatusOverQueryLimit},
		{name: "token not ready", err: &TokenNotReadyError{}, expected: StatusInvalidRequest},
		{name: "plain error", err: errors.New("boom"), expected: StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.err); got != tt.expected {
				t.Errorf("StatusOf() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(&ValidationError{Field: "location", Message: "cannot be empty"}) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if IsValidation(errors.New("some other error")) {
		t.Error("IsValidation should return false for non-ValidationError")
	}
}

func TestIsTokenNotReady(t *testing.T) {
	err := WrapError(&TokenNotReadyError{Token: "abc"}, "text search")

	if !IsTokenNotReady(err) {
		t.Error("IsTokenNotReady should return true for wrapped TokenNotReadyError")
	}
	if IsTokenNotReady(&UpstreamError{Status: StatusInvalidRequest}) {
		t.Error("IsTokenNotReady should return false for UpstreamError")
	}
}

func TestDetailLookupError(t *testing.T) {
	cause := &UpstreamError{Operation: "place_details", Status: StatusNotFound}
	err := &DetailLookupError{PlaceID: "place-1", Err: cause}

	if !IsDetailLookup(err) {
		t.Error("IsDetailLookup should return true for DetailLookupError")
	}
	if !IsUpstream(err) {
		t.Error("DetailLookupError should unwrap to the UpstreamError")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	originalErr := errors.New("original error")
	wrapped := WrapError(originalErr, "additional context")

	expected := "additional context: original error"
	if wrapped.Error() != expected {
		t.Errorf("WrapError() = %v, want %v", wrapped.Error(), expected)
	}
	if !errors.Is(wrapped, originalErr) {
		t.Error("Wrapped error should contain original error")
	}
}
