// ABOUTME: Business domain model represents one place returned by the places search API
// ABOUTME: Details enrich a business with website, rating and review count after lookup

package domain

// BusinessResult represents a single business found by a text search.
// Values are treated as immutable once constructed; WithDetails returns a copy.
type BusinessResult struct {
	// Name is the business display name
	Name string `json:"name"`

	// Address is the formatted street address
	Address string `json:"address"`

	// PlaceID is the stable upstream identifier used for detail lookups
	PlaceID string `json:"place_id"`

	// Rating is the average rating (nil until details are resolved)
	Rating *float64 `json:"rating,omitempty"`

	// ReviewCount is the total number of user ratings (nil until details are resolved)
	ReviewCount *int `json:"review_count,omitempty"`

	// Website is the business website URL (nil until details are resolved)
	Website *string `json:"website,omitempty"`
}

// PlaceDetails contains the fields resolved by a single detail lookup
type PlaceDetails struct {
	Website     *string  `json:"website,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"review_count,omitempty"`
}

// WithDetails returns a copy of the business with the detail fields applied
func (b BusinessResult) WithDetails(d PlaceDetails) BusinessResult {
	b.Website = d.Website
	b.Rating = d.Rating
	b.ReviewCount = d.ReviewCount
	return b
}

// IsEnriched reports whether any detail field has been resolved
func (b BusinessResult) IsEnriched() bool {
	return b.Website != nil || b.Rating != nil || b.ReviewCount != nil
}
