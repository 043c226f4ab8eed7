// ABOUTME: Request DTOs for business search endpoints
// ABOUTME: Normalizes incoming fields before they reach the search service

package requests

import (
	"strings"

	"places-finder-api/core/domain"
)

// SearchRequest represents the request body for a single-location search
type SearchRequest struct {
	// Keyword is what to search for
	Keyword string `json:"keyword,omitempty" maxLength:"200" doc:"What to search for, e.g. coffee" example:"coffee"`

	// Location is where to search
	Location string `json:"location,omitempty" maxLength:"200" doc:"Where to search, e.g. Seattle" example:"Seattle"`

	// PageToken continues a previous search
	PageToken string `json:"page_token,omitempty" doc:"Token from a previous response to load the next page"`
}

// ToQuery trims the fields and builds the domain query.
// The page token is opaque and passed through untouched.
func (r *SearchRequest) ToQuery() domain.SearchQuery {
	return domain.SearchQuery{
		Keyword:   strings.TrimSpace(r.Keyword),
		Location:  strings.TrimSpace(r.Location),
		PageToken: r.PageToken,
	}
}

// SearchMultipleRequest represents the request body for a multi-location search
type SearchMultipleRequest struct {
	// Keyword is what to search for
	Keyword string `json:"keyword,omitempty" maxLength:"200" doc:"What to search for" example:"pizza"`

	// Locations is a comma-separated list of places to search
	Locations string `json:"locations,omitempty" maxLength:"2000" doc:"Comma-separated locations" example:"Seattle, Portland"`
}

// Normalize trims the keyword and splits the location list
func (r *SearchMultipleRequest) Normalize() (keyword string, locations []string) {
	return strings.TrimSpace(r.Keyword), domain.ParseLocations(r.Locations)
}
