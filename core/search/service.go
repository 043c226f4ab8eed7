// ABOUTME: Search service answers keyword/location queries with enriched, cached, paginated results
// ABOUTME: Provides business logic for business search independent of the HTTP layer

package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"places-finder-api/core/domain"
	"places-finder-api/core/errors"
	"places-finder-api/core/interfaces"
	"places-finder-api/core/pagination"
)

// PageFetcher fetches one raw page from the upstream chain.
// RenewToken keeps a forwarded token redeemable for as long as a cached page carries it.
type PageFetcher interface {
	FetchPage(ctx context.Context, query domain.SearchQuery) (pagination.Page, error)
	RenewToken(ctx context.Context, token string) error
}

// Enricher applies place details to a page of businesses
type Enricher interface {
	Enrich(ctx context.Context, businesses []domain.BusinessResult) []domain.BusinessResult
}

// ResultStore caches finished pages
type ResultStore interface {
	Get(ctx context.Context, query domain.SearchQuery) (domain.PageResult, bool)
	Put(ctx context.Context, query domain.SearchQuery, result domain.PageResult) error
}

const (
	defaultMultiConcurrency = 3
	defaultMultiTimeout     = 60 * time.Second
)

// SearchService handles business search operations
type SearchService struct {
	deps     interfaces.Dependencies
	pages    PageFetcher
	enricher Enricher
	results  ResultStore

	multiConcurrency int
	multiTimeout     time.Duration
}

// Option configures a SearchService
type Option func(*SearchService)

// WithMultiSearchConcurrency sets how many locations SearchMultiple searches at once
func WithMultiSearchConcurrency(n int) Option {
	return func(s *SearchService) {
		if n > 0 {
			s.multiConcurrency = n
		}
	}
}

// WithMultiSearchTimeout bounds the whole SearchMultiple call
func WithMultiSearchTimeout(d time.Duration) Option {
	return func(s *SearchService) {
		if d > 0 {
			s.multiTimeout = d
		}
	}
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, pages PageFetcher, enricher Enricher, results ResultStore, opts ...Option) *SearchService {
	s := &SearchService{
		deps:             deps,
		pages:            pages,
		enricher:         enricher,
		results:          results,
		multiConcurrency: defaultMultiConcurrency,
		multiTimeout:     defaultMultiTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ interfaces.SearchService = (*SearchService)(nil)

// validateQuery validates search query parameters
func (s *SearchService) validateQuery(query domain.SearchQuery) error {
	if strings.TrimSpace(query.Keyword) == "" {
		return &errors.ValidationError{Field: "keyword", Message: "keyword is required"}
	}
	if strings.TrimSpace(query.Location) == "" {
		return &errors.ValidationError{Field: "location", Message: "location is required"}
	}
	return nil
}

// Search returns one enriched page for the query.
// Cached pages are returned without any upstream call.
func (s *SearchService) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	if err := s.validateQuery(query); err != nil {
		return nil, err
	}

	start := time.Now()
	logger := s.deps.LoggerOrNop()
	metrics := s.deps.MetricsOrNop()

	if s.results != nil {
		if cached, ok := s.results.Get(ctx, query); ok {
			metrics.CacheLookup(true)
			metrics.PageFetched(true, time.Since(start))
			logger.Debug("Serving search from cache", map[string]interface{}{
				"keyword":  query.Keyword,
				"location": query.Location,
				"page":     cached.Page,
			})
			return &domain.SearchResponse{Page: cached, Cached: true}, nil
		}
		metrics.CacheLookup(false)
	}

	page, err := s.pages.FetchPage(ctx, query)
	if err != nil {
		logger.Error("Search failed", map[string]interface{}{
			"keyword":  query.Keyword,
			"location": query.Location,
			"status":   errors.StatusOf(err),
			"error":    err.Error(),
		})
		return nil, err
	}

	result := page.Result
	if len(result.Businesses) > 0 && s.enricher != nil {
		result.Businesses = s.enricher.Enrich(ctx, result.Businesses)
	}

	// The empty page past the end is cheap to recompute
	if s.results != nil && result.Page > 0 {
		if err := s.results.Put(ctx, query, result); err != nil {
			logger.Warn("Failed to cache search result", map[string]interface{}{
				"keyword":  query.Keyword,
				"location": query.Location,
				"error":    err.Error(),
			})
		} else if err := s.pages.RenewToken(ctx, result.NextPageToken); err != nil {
			// The token record must not expire before the cached page that carries it
			logger.Warn("Failed to renew page token", map[string]interface{}{
				"keyword":  query.Keyword,
				"location": query.Location,
				"error":    err.Error(),
			})
		}
	}

	metrics.PageFetched(false, time.Since(start))
	logger.Info("Search completed", map[string]interface{}{
		"keyword":    query.Keyword,
		"location":   query.Location,
		"page":       result.Page,
		"businesses": len(result.Businesses),
		"state":      page.State.String(),
		"duration":   time.Since(start).String(),
	})

	return &domain.SearchResponse{Page: result, Cached: false}, nil
}

// SearchMultiple returns the first page for keyword in every location.
// A location whose search fails maps to an empty list and is not counted in LocationsFound.
func (s *SearchService) SearchMultiple(ctx context.Context, keyword string, locations []string) (*domain.MultiSearchResult, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, &errors.ValidationError{Field: "keyword", Message: "keyword is required"}
	}

	unique := make([]string, 0, len(locations))
	seen := make(map[string]bool, len(locations))
	for _, loc := range locations {
		loc = strings.TrimSpace(loc)
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		unique = append(unique, loc)
	}
	if len(unique) == 0 {
		return nil, &errors.ValidationError{Field: "locations", Message: "at least one location is required"}
	}

	ctx, cancel := context.WithTimeout(ctx, s.multiTimeout)
	defer cancel()

	logger := s.deps.LoggerOrNop()
	results := make(map[string][]domain.BusinessResult, len(unique))
	found := 0
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(s.multiConcurrency)
	for _, loc := range unique {
		loc := loc
		g.Go(func() error {
			businesses := []domain.BusinessResult{}
			resp, err := s.Search(ctx, domain.SearchQuery{Keyword: keyword, Location: loc})
			if err != nil {
				logger.Warn("Location search failed", map[string]interface{}{
					"keyword":  keyword,
					"location": loc,
					"error":    err.Error(),
				})
			} else {
				businesses = resp.Page.Businesses
			}

			mu.Lock()
			defer mu.Unlock()
			results[loc] = businesses
			if err == nil {
				found++
			}
			return nil
		})
	}
	_ = g.Wait()

	return &domain.MultiSearchResult{
		Keyword:        keyword,
		Results:        results,
		TotalLocations: len(unique),
		LocationsFound: found,
	}, nil
}
