// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"places-finder-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsUpstream(err) || errors.IsTokenNotReady(err) {
		// Upstream messages may echo request details, so they are never exposed
		switch errors.StatusOf(err) {
		case errors.StatusOverQueryLimit:
			return huma.Error429TooManyRequests("Places API quota exceeded")
		case errors.StatusRequestDenied, errors.StatusInvalidRequest:
			return huma.Error502BadGateway("Places API rejected the request")
		default:
			return huma.Error503ServiceUnavailable("Places API unavailable")
		}
	}

	return huma.Error500InternalServerError("Internal server error")
}
