// ABOUTME: Mappers for converting between search domain models and API DTOs
// ABOUTME: Keeps empty lists as [] so clients never see null

package mappers

import (
	"places-finder-api/api/dto/responses"
	"places-finder-api/core/domain"
)

// ToBusinessResponse converts a domain BusinessResult to its DTO
func ToBusinessResponse(b domain.BusinessResult) responses.BusinessResponse {
	return responses.BusinessResponse{
		Name:        b.Name,
		Address:     b.Address,
		PlaceID:     b.PlaceID,
		Rating:      b.Rating,
		ReviewCount: b.ReviewCount,
		Website:     b.Website,
	}
}

// ToBusinessResponses converts a list of businesses, never returning nil
func ToBusinessResponses(businesses []domain.BusinessResult) []responses.BusinessResponse {
	out := make([]responses.BusinessResponse, 0, len(businesses))
	for _, b := range businesses {
		out = append(out, ToBusinessResponse(b))
	}
	return out
}

// ToSearchResponse converts a domain SearchResponse to its DTO
func ToSearchResponse(resp *domain.SearchResponse) responses.SearchResponse {
	if resp == nil {
		return responses.SearchResponse{Businesses: []responses.BusinessResponse{}}
	}
	return responses.SearchResponse{
		Businesses:    ToBusinessResponses(resp.Page.Businesses),
		NextPageToken: resp.Page.NextPageToken,
		Page:          resp.Page.Page,
		Cached:        resp.Cached,
	}
}

// ToSearchMultipleResponse converts a domain MultiSearchResult to its DTO
func ToSearchMultipleResponse(result *domain.MultiSearchResult) responses.SearchMultipleResponse {
	if result == nil {
		return responses.SearchMultipleResponse{Results: map[string][]responses.BusinessResponse{}}
	}
	out := responses.SearchMultipleResponse{
		Results:        make(map[string][]responses.BusinessResponse, len(result.Results)),
		TotalLocations: result.TotalLocations,
		LocationsFound: result.LocationsFound,
		Keyword:        result.Keyword,
	}
	for location, businesses := range result.Results {
		out.Results[location] = ToBusinessResponses(businesses)
	}
	return out
}
