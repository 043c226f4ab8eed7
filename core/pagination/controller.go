// ABOUTME: Pagination controller walks the upstream page-token chain for a search
// ABOUTME: Enforces the page cap and the mandatory delay before a token can be used

package pagination

import (
	"context"
	"errors"
	"time"

	"places-finder-api/core/domain"
	coreerrors "places-finder-api/core/errors"
	"places-finder-api/core/interfaces"
)

// State is the lifecycle position of a search's page chain
type State int

const (
	// StateInitial is a search that has not been given a token yet
	StateInitial State = iota
	// StateHasNext means another page can be requested with the returned token
	StateHasNext
	// StateExhausted means no more pages will be served
	StateExhausted
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateInitial:
		return "INITIAL"
	case StateHasNext:
		return "HAS_NEXT"
	case StateExhausted:
		return "EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}

// Config holds pagination tuning
type Config struct {
	// MaxPages caps how many pages one search may walk
	MaxPages int

	// PageDelay is the minimum age of a token before it is used
	PageDelay time.Duration

	// TokenRetries is how many extra attempts are made while a token is not ready
	TokenRetries int

	// TokenTTL is how long forwarded tokens are remembered
	TokenTTL time.Duration
}

// DefaultConfig returns the default pagination configuration
func DefaultConfig() Config {
	return Config{
		MaxPages:     3,
		PageDelay:    2 * time.Second,
		TokenRetries: 3,
		TokenTTL:     time.Hour,
	}
}

// Page is one fetched page along with the chain state after fetching it
type Page struct {
	Result domain.PageResult
	State  State
}

// Controller fetches pages from the upstream text search
type Controller struct {
	deps     interfaces.Dependencies
	config   Config
	registry *tokenRegistry

	now  func() time.Time
	wait func(ctx context.Context, d time.Duration) error
}

// NewController creates a pagination controller. deps.Places and deps.Cache are required.
func NewController(deps interfaces.Dependencies, config Config) *Controller {
	defaults := DefaultConfig()
	if config.MaxPages <= 0 {
		config.MaxPages = defaults.MaxPages
	}
	if config.PageDelay < 0 {
		config.PageDelay = 0
	}
	if config.TokenRetries < 0 {
		config.TokenRetries = 0
	}
	if config.TokenTTL <= 0 {
		config.TokenTTL = defaults.TokenTTL
	}

	return &Controller{
		deps:     deps,
		config:   config,
		registry: &tokenRegistry{cache: deps.Cache, ttl: config.TokenTTL},
		now:      time.Now,
		wait:     sleepContext,
	}
}

// FetchPage fetches the page identified by query.
// Tokens that are unknown, belong to another search, or lie past the page cap
// yield an empty exhausted page without an upstream call.
func (c *Controller) FetchPage(ctx context.Context, query domain.SearchQuery) (Page, error) {
	if c.deps.Places == nil {
		return Page{}, ErrNoPlacesClient
	}
	logger := c.deps.LoggerOrNop()

	pageNumber := 1
	if !query.IsFirstPage() {
		record, ok := c.registry.lookup(ctx, query.PageToken)
		if !ok || record.Keyword != query.Keyword || record.Location != query.Location || record.Page > c.config.MaxPages {
			logger.Debug("Page token not usable, search exhausted", map[string]interface{}{
				"keyword":  query.Keyword,
				"location": query.Location,
				"known":    ok,
			})
			return Page{Result: domain.EmptyPage(), State: StateExhausted}, nil
		}
		pageNumber = record.Page

		if err := c.waitUntilReady(ctx, record.IssuedAt); err != nil {
			return Page{}, err
		}
	}

	raw, err := c.search(ctx, query)
	if err != nil {
		return Page{}, err
	}

	result := domain.PageResult{
		Businesses: raw.Businesses,
		Page:       pageNumber,
	}
	if result.Businesses == nil {
		result.Businesses = []domain.BusinessResult{}
	}

	state := StateExhausted
	if raw.NextPageToken != "" && pageNumber < c.config.MaxPages {
		record := tokenRecord{
			Keyword:  query.Keyword,
			Location: query.Location,
			Page:     pageNumber + 1,
			IssuedAt: c.now(),
		}
		if err := c.registry.remember(ctx, raw.NextPageToken, record); err != nil {
			// Without a record the token could never be redeemed
			logger.Warn("Failed to remember page token, ending pagination", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			result.NextPageToken = raw.NextPageToken
			state = StateHasNext
		}
	}

	return Page{Result: result, State: state}, nil
}

// RenewToken restarts the retention period of a remembered token.
// Unknown tokens are left alone; a page handing out a token is only as good as its record.
func (c *Controller) RenewToken(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	record, ok := c.registry.lookup(ctx, token)
	if !ok {
		return nil
	}
	return c.registry.remember(ctx, token, record)
}

// waitUntilReady blocks until the token issued at issuedAt is old enough to use
func (c *Controller) waitUntilReady(ctx context.Context, issuedAt time.Time) error {
	remaining := issuedAt.Add(c.config.PageDelay).Sub(c.now())
	if remaining <= 0 {
		return nil
	}
	return c.wait(ctx, remaining)
}

// search issues the text search, retrying after PageDelay while the token is not ready
func (c *Controller) search(ctx context.Context, query domain.SearchQuery) (domain.SearchPage, error) {
	metrics := c.deps.MetricsOrNop()

	for attempt := 0; ; attempt++ {
		start := time.Now()
		page, err := c.deps.Places.TextSearch(ctx, query.Keyword, query.Location, query.PageToken)
		metrics.UpstreamCall("text_search", coreerrors.StatusOf(err), time.Since(start))
		if err == nil {
			return page, nil
		}

		if !coreerrors.IsTokenNotReady(err) {
			return domain.SearchPage{}, err
		}
		if attempt >= c.config.TokenRetries {
			// An expired token looks the same as an early one until the last attempt
			var notReady *coreerrors.TokenNotReadyError
			message := ""
			if errors.As(err, &notReady) {
				message = notReady.Message
			}
			c.deps.LoggerOrNop().Warn("Page token never became ready", map[string]interface{}{
				"keyword":          query.Keyword,
				"location":         query.Location,
				"attempts":         attempt + 1,
				"upstream_message": message,
			})
			return domain.SearchPage{}, &coreerrors.UpstreamError{
				Operation: "text_search",
				Status:    coreerrors.StatusInvalidRequest,
				Message:   "page token did not become ready",
				Err:       err,
			}
		}

		c.deps.LoggerOrNop().Debug("Page token not ready, retrying", map[string]interface{}{
			"attempt": attempt + 1,
			"delay":   c.config.PageDelay.String(),
		})
		if err := c.wait(ctx, c.config.PageDelay); err != nil {
			return domain.SearchPage{}, err
		}
	}
}

// sleepContext waits for d or until ctx is done
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ErrNoPlacesClient is returned when the controller has no upstream client
var ErrNoPlacesClient = errors.New("places client not configured")
