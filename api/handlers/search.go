// ABOUTME: Search handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for single and multi-location business search

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"places-finder-api/api/dto/mappers"
	"places-finder-api/api/dto/requests"
	"places-finder-api/api/dto/responses"
	"places-finder-api/core/interfaces"
	"places-finder-api/pkg/featureflags"
)

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService interfaces.SearchService
	flags         featureflags.Manager
}

// NewSearchHandler creates a new search handler. A nil flags manager enables every route.
func NewSearchHandler(searchService interfaces.SearchService, flags featureflags.Manager) *SearchHandler {
	if flags == nil {
		flags = featureflags.NewStaticManager(featureflags.Defaults)
	}
	return &SearchHandler{
		searchService: searchService,
		flags:         flags,
	}
}

// RegisterRoutes registers all search-related routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodPost,
		Path:        "/search",
		Summary:     "Search businesses",
		Description: "Searches businesses by keyword and location. Pass next_page_token back as page_token to load more.",
		Tags:        []string{"Search"},
	}, h.Search)

	if h.flags.IsEnabled(context.Background(), featureflags.MultiLocationSearch) {
		huma.Register(api, huma.Operation{
			OperationID: "searchMultiple",
			Method:      http.MethodPost,
			Path:        "/search-multiple",
			Summary:     "Search businesses in several locations",
			Description: "Returns the first page of results for the keyword in each comma-separated location",
			Tags:        []string{"Search"},
		}, h.SearchMultiple)
	}
}

// SearchInput defines the input for the Search operation
type SearchInput struct {
	Body requests.SearchRequest
}

// SearchOutput defines the output for the Search operation
type SearchOutput struct {
	XCache string `header:"X-Cache" doc:"HIT when served from the result cache"`
	Body   responses.SearchResponse
}

// Search handles the POST /search endpoint
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	resp, err := h.searchService.Search(ctx, input.Body.ToQuery())
	if err != nil {
		return nil, toHumaError(err)
	}

	out := &SearchOutput{
		XCache: "MISS",
		Body:   mappers.ToSearchResponse(resp),
	}
	if resp.Cached {
		out.XCache = "HIT"
	}
	return out, nil
}

// SearchMultipleInput defines the input for the SearchMultiple operation
type SearchMultipleInput struct {
	Body requests.SearchMultipleRequest
}

// SearchMultipleOutput defines the output for the SearchMultiple operation
type SearchMultipleOutput struct {
	Body responses.SearchMultipleResponse
}

// SearchMultiple handles the POST /search-multiple endpoint
func (h *SearchHandler) SearchMultiple(ctx context.Context, input *SearchMultipleInput) (*SearchMultipleOutput, error) {
	keyword, locations := input.Body.Normalize()

	result, err := h.searchService.SearchMultiple(ctx, keyword, locations)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchMultipleOutput{Body: mappers.ToSearchMultipleResponse(result)}, nil
}
