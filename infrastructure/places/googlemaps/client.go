// ABOUTME: Places client backed by the Google Maps Go client library
// ABOUTME: Translates text search and place details calls and classifies upstream failures

package googlemaps

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"places-finder-api/core/domain"
	coreerrors "places-finder-api/core/errors"
	"places-finder-api/core/interfaces"
)

// Config holds the settings for the upstream client
type Config struct {
	// APIKey authenticates every request
	APIKey string

	// BaseURL overrides https://maps.googleapis.com
	BaseURL string

	// HTTPClient performs the requests; nil uses the library default
	HTTPClient *http.Client

	// RequestsPerSecond throttles outgoing calls; 0 keeps the library default
	RequestsPerSecond int

	// RequestTimeout bounds each call; 0 relies on the caller's context
	RequestTimeout time.Duration
}

// mapsAPI is the subset of *maps.Client used here
type mapsAPI interface {
	TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error)
	PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)
}

// Client implements interfaces.PlacesClient
type Client struct {
	api     mapsAPI
	timeout time.Duration
	logger  interfaces.Logger
}

var detailFields = []maps.PlaceDetailsFieldMask{
	maps.PlaceDetailsFieldMaskWebsite,
	maps.PlaceDetailsFieldMaskRatings,
	maps.PlaceDetailsFieldMaskUserRatingsTotal,
}

// NewClient creates a places client
func NewClient(cfg Config, logger interfaces.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("google maps api key is required")
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	opts := []maps.ClientOption{maps.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, maps.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, maps.WithHTTPClient(cfg.HTTPClient))
	}
	if cfg.RequestsPerSecond > 0 {
		opts = append(opts, maps.WithRateLimit(cfg.RequestsPerSecond))
	}

	api, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &Client{api: api, timeout: cfg.RequestTimeout, logger: logger}, nil
}

var _ interfaces.PlacesClient = (*Client)(nil)

// TextSearch runs a free-text search for keyword in location, or continues one with pageToken
func (c *Client) TextSearch(ctx context.Context, keyword, location, pageToken string) (domain.SearchPage, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	query := domain.SearchQuery{Keyword: keyword, Location: location, PageToken: pageToken}
	resp, err := c.api.TextSearch(ctx, &maps.TextSearchRequest{
		Query:     query.UpstreamQuery(),
		PageToken: pageToken,
	})
	if err != nil {
		classified := classify("text_search", err)
		if pageToken != "" && coreerrors.UpstreamStatus(classified) == coreerrors.StatusInvalidRequest {
			// Tokens are rejected with INVALID_REQUEST until they become valid
			notReady := &coreerrors.TokenNotReadyError{Token: pageToken}
			var upstreamErr *coreerrors.UpstreamError
			if errors.As(classified, &upstreamErr) {
				notReady.Message = upstreamErr.Message
			}
			return domain.SearchPage{}, notReady
		}
		c.logger.Debug("Text search failed", map[string]interface{}{
			"query":  query.UpstreamQuery(),
			"status": coreerrors.StatusOf(classified),
		})
		return domain.SearchPage{}, classified
	}

	page := domain.SearchPage{
		Businesses:    make([]domain.BusinessResult, 0, len(resp.Results)),
		NextPageToken: resp.NextPageToken,
	}
	for _, r := range resp.Results {
		page.Businesses = append(page.Businesses, toBusiness(r))
	}
	return page, nil
}

// PlaceDetails fetches website, rating and review count for one place
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (domain.PlaceDetails, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	r, err := c.api.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields:  detailFields,
	})
	if err != nil {
		return domain.PlaceDetails{}, classify("place_details", err)
	}
	return toDetails(r), nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func toBusiness(r maps.PlacesSearchResult) domain.BusinessResult {
	address := r.FormattedAddress
	if address == "" {
		address = r.Vicinity
	}
	return domain.BusinessResult{
		Name:    r.Name,
		Address: address,
		PlaceID: r.PlaceID,
	}
}

// toDetails maps zero values to absent; the API omits fields it has no value for
func toDetails(r maps.PlaceDetailsResult) domain.PlaceDetails {
	var d domain.PlaceDetails
	if r.Website != "" {
		website := r.Website
		d.Website = &website
	}
	if r.Rating > 0 {
		rating := float32ToFloat64(r.Rating)
		d.Rating = &rating
	}
	if r.UserRatingsTotal > 0 {
		reviews := r.UserRatingsTotal
		d.ReviewCount = &reviews
	}
	return d
}

// float32ToFloat64 keeps the decimal the API sent (4.3, not 4.300000190734863)
func float32ToFloat64(f float32) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'f', -1, 32), 64)
	if err != nil {
		return float64(f)
	}
	return v
}

var apiStatuses = map[string]string{
	"OVER_QUERY_LIMIT": coreerrors.StatusOverQueryLimit,
	"OVER_DAILY_LIMIT": coreerrors.StatusOverQueryLimit,
	"REQUEST_DENIED":   coreerrors.StatusRequestDenied,
	"INVALID_REQUEST":  coreerrors.StatusInvalidRequest,
	"NOT_FOUND":        coreerrors.StatusNotFound,
	"UNKNOWN_ERROR":    coreerrors.StatusUnknown,
}

// parseStatus extracts the API status from errors of the form "maps: STATUS - message"
func parseStatus(msg string) (status, detail string, ok bool) {
	rest, found := strings.CutPrefix(msg, "maps: ")
	if !found {
		return "", "", false
	}
	code, detail, _ := strings.Cut(rest, " - ")
	status, ok = apiStatuses[strings.TrimSpace(code)]
	return status, strings.TrimSpace(detail), ok
}

// classify turns a library error into an UpstreamError
func classify(operation string, err error) error {
	if status, detail, ok := parseStatus(err.Error()); ok {
		return &coreerrors.UpstreamError{Operation: operation, Status: status, Message: detail, Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &coreerrors.UpstreamError{Operation: operation, Status: coreerrors.StatusTimeout, Message: "request timed out", Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return &coreerrors.UpstreamError{Operation: operation, Status: coreerrors.StatusTimeout, Message: "request timed out", Err: err}
		}
		return &coreerrors.UpstreamError{Operation: operation, Status: coreerrors.StatusNetworkError, Message: "could not reach places API", Err: err}
	}

	return &coreerrors.UpstreamError{Operation: operation, Status: coreerrors.StatusUnknown, Message: err.Error(), Err: err}
}
