// ABOUTME: Public types for the placeslib API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package placeslib

import "places-finder-api/core/domain"

// Business represents one business found by a search
type Business struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	PlaceID     string   `json:"place_id"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"review_count,omitempty"`
	Website     *string  `json:"website,omitempty"`
}

// Page represents one page of search results
type Page struct {
	Businesses []Business `json:"businesses"`

	// NextPageToken loads the following page via LoadMore; empty on the last page
	NextPageToken string `json:"next_page_token,omitempty"`

	// Number is the 1-based page index, 0 past the last page
	Number int `json:"page"`

	// Cached reports whether the page came from the result cache
	Cached bool `json:"cached"`
}

// HasMore reports whether LoadMore can return another page
func (p *Page) HasMore() bool {
	return p.NextPageToken != ""
}

// MultiResult holds first-page businesses per location
type MultiResult struct {
	Keyword        string                `json:"keyword"`
	Results        map[string][]Business `json:"results"`
	TotalLocations int                   `json:"total_locations"`
	LocationsFound int                   `json:"locations_found"`
}

func businessesToPublic(in []domain.BusinessResult) []Business {
	out := make([]Business, len(in))
	for i, b := range in {
		out[i] = Business{
			Name:        b.Name,
			Address:     b.Address,
			PlaceID:     b.PlaceID,
			Rating:      b.Rating,
			ReviewCount: b.ReviewCount,
			Website:     b.Website,
		}
	}
	return out
}

func responseToPublic(resp *domain.SearchResponse) *Page {
	return &Page{
		Businesses:    businessesToPublic(resp.Page.Businesses),
		NextPageToken: resp.Page.NextPageToken,
		Number:        resp.Page.Page,
		Cached:        resp.Cached,
	}
}

func multiToPublic(result *domain.MultiSearchResult) *MultiResult {
	out := &MultiResult{
		Keyword:        result.Keyword,
		Results:        make(map[string][]Business, len(result.Results)),
		TotalLocations: result.TotalLocations,
		LocationsFound: result.LocationsFound,
	}
	for location, businesses := range result.Results {
		out.Results[location] = businessesToPublic(businesses)
	}
	return out
}
