package interfaces

import (
	"context"

	"places-finder-api/core/domain"
)

// PlacesClient wraps the upstream text-search and place-details calls.
// Implementations are stateless request/response mappers: they never retry and
// report failures as *errors.UpstreamError (or *errors.TokenNotReadyError when a
// page token was used too early).
type PlacesClient interface {
	// TextSearch returns up to one page of businesses for keyword in location.
	// pageToken is forwarded verbatim when non-empty.
	TextSearch(ctx context.Context, keyword, location, pageToken string) (domain.SearchPage, error)

	// PlaceDetails resolves website, rating and review count for one place.
	PlaceDetails(ctx context.Context, placeID string) (domain.PlaceDetails, error)
}
