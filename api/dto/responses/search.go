// ABOUTME: Response DTOs for business search endpoints
// ABOUTME: Field names match the JSON contract served to the search UI

package responses

// BusinessResponse represents one business in API responses
type BusinessResponse struct {
	Name        string   `json:"name" doc:"Business name"`
	Address     string   `json:"address" doc:"Formatted address"`
	PlaceID     string   `json:"place_id" doc:"Stable upstream identifier"`
	Rating      *float64 `json:"rating,omitempty" doc:"Average rating, absent when unknown"`
	ReviewCount *int     `json:"review_count,omitempty" doc:"Number of reviews, absent when unknown"`
	Website     *string  `json:"website,omitempty" doc:"Website URL, absent when unknown"`
}

// SearchResponse represents one page of search results
type SearchResponse struct {
	Businesses    []BusinessResponse `json:"businesses" doc:"Businesses on this page, in upstream order"`
	NextPageToken string             `json:"next_page_token,omitempty" doc:"Token for the next page; absent on the last page"`
	Page          int                `json:"page" doc:"1-based page number, 0 past the last page"`
	Cached        bool               `json:"cached" doc:"Whether the page was served from cache"`
}

// SearchMultipleResponse represents first-page results for several locations
type SearchMultipleResponse struct {
	Results        map[string][]BusinessResponse `json:"results" doc:"Businesses keyed by location"`
	TotalLocations int                           `json:"total_locations" doc:"Number of distinct locations searched"`
	LocationsFound int                           `json:"locations_found" doc:"Number of locations searched successfully"`
	Keyword        string                        `json:"keyword" doc:"Keyword that was searched"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status string `json:"status" example:"ok" doc:"Service status"`
}
