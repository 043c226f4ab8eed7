// ABOUTME: Search domain models for keyword/location queries and paginated results
// ABOUTME: Page tokens are opaque upstream cursors and are stored and forwarded verbatim

package domain

import "strings"

// SearchQuery identifies one page request.
// Two queries are equal iff all three fields are equal; no normalization is applied.
type SearchQuery struct {
	// Keyword is what to look for (e.g. "coffee")
	Keyword string `json:"keyword"`

	// Location is where to look (e.g. "Seattle")
	Location string `json:"location"`

	// PageToken is the opaque continuation token; empty means the first page
	PageToken string `json:"page_token,omitempty"`
}

// IsFirstPage reports whether the query requests the first page
func (q SearchQuery) IsFirstPage() bool {
	return q.PageToken == ""
}

// UpstreamQuery returns the free-text query sent to the places API
func (q SearchQuery) UpstreamQuery() string {
	return strings.TrimSpace(q.Keyword) + " in " + strings.TrimSpace(q.Location)
}

// SearchPage is one raw page returned by the upstream text search
type SearchPage struct {
	Businesses    []BusinessResult
	NextPageToken string
}

// PageResult is one enriched page of businesses.
// An empty NextPageToken marks the terminal page.
type PageResult struct {
	Businesses    []BusinessResult `json:"businesses"`
	NextPageToken string           `json:"next_page_token,omitempty"`

	// Page is the 1-based page index, 0 for the empty result past the last page
	Page int `json:"page"`
}

// HasMore reports whether another page can be requested
func (p PageResult) HasMore() bool {
	return p.NextPageToken != ""
}

// EmptyPage returns the result served for requests beyond the last page
func EmptyPage() PageResult {
	return PageResult{Businesses: []BusinessResult{}}
}

// SearchResponse is a page result plus whether it was served from cache
type SearchResponse struct {
	Page   PageResult
	Cached bool
}

// MultiSearchResult groups first-page businesses by location
type MultiSearchResult struct {
	Keyword        string
	Results        map[string][]BusinessResult
	TotalLocations int
	LocationsFound int
}

// ParseLocations splits a comma-separated location list, dropping blanks
func ParseLocations(raw string) []string {
	parts := strings.Split(raw, ",")
	locations := make([]string, 0, len(parts))
	for _, p := range parts {
		if loc := strings.TrimSpace(p); loc != "" {
			locations = append(locations, loc)
		}
	}
	return locations
}
