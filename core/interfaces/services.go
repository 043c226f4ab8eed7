// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used by the HTTP layer and the library client

package interfaces

import (
	"context"

	"places-finder-api/core/domain"
)

// SearchService finds, enriches, caches and paginates business search results
type SearchService interface {
	// Search returns one page for the query, served from cache when possible
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error)

	// SearchMultiple returns the first page for keyword in each location
	SearchMultiple(ctx context.Context, keyword string, locations []string) (*domain.MultiSearchResult, error)
}
