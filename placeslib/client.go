// ABOUTME: Main client for the placeslib library providing business search and enrichment
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package placeslib

import (
	"context"
	"sync"

	"places-finder-api/core/config"
	"places-finder-api/core/domain"
	"places-finder-api/core/interfaces"
	"places-finder-api/core/pagination"
	"places-finder-api/core/resultcache"
	"places-finder-api/core/search"
	"places-finder-api/core/services"
	"places-finder-api/core/workers"
	"places-finder-api/infrastructure/cache/memory"
	"places-finder-api/infrastructure/places/googlemaps"
)

// Client is the main entry point for the placeslib library
type Client struct {
	searchService *search.SearchService
	pool          *workers.Pool
	config        Config

	mu     sync.RWMutex
	closed bool
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.APIKey == "" {
		return nil, NewError(ErrorTypeConfiguration, "API key is required")
	}
	if cfg.Cache == nil {
		cfg.Cache = memory.NewMemoryCache(memory.DefaultCleanupInterval)
	}
	if cfg.Logger == nil {
		cfg.Logger = interfaces.NopLogger{}
	}

	places, err := googlemaps.NewClient(googlemaps.Config{
		APIKey:         cfg.APIKey,
		BaseURL:        cfg.BaseURL,
		HTTPClient:     cfg.HTTPClient,
		RequestTimeout: cfg.LookupTimeout,
	}, cfg.Logger)
	if err != nil {
		return nil, NewError(ErrorTypeConfiguration, "failed to create places client").WithCause(err)
	}

	deps := interfaces.Dependencies{
		Cache:  cfg.Cache,
		Places: places,
		Logger: cfg.Logger,
	}

	pool := workers.NewPool(workers.PoolConfig{
		MaxWorkers:  cfg.Workers,
		TaskTimeout: cfg.LookupTimeout,
	})
	if err := pool.Start(); err != nil {
		return nil, NewError(ErrorTypeInternal, "failed to start worker pool").WithCause(err)
	}

	pages := pagination.DefaultConfig()
	pages.PageDelay = cfg.PageDelay
	pages.MaxPages = cfg.MaxPages
	pages.TokenTTL = cfg.CacheTTL

	svc := search.NewSearchService(deps,
		pagination.NewController(deps, pages),
		services.NewDetailEnricher(deps, pool, config.WithDetailCache(cfg.CacheTTL)),
		resultcache.New(cfg.Cache, cfg.CacheTTL, cfg.Logger),
	)

	return &Client{
		searchService: svc,
		pool:          pool,
		config:        cfg,
	}, nil
}

// Close stops the lookup workers. Further calls return ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.pool.Stop()
}

// Search returns the first page of businesses for keyword in location
func (c *Client) Search(ctx context.Context, keyword, location string) (*Page, error) {
	return c.fetch(ctx, domain.SearchQuery{Keyword: keyword, Location: location})
}

// LoadMore returns the page following the one that produced token
func (c *Client) LoadMore(ctx context.Context, keyword, location, token string) (*Page, error) {
	if token == "" {
		return nil, NewError(ErrorTypeValidation, "page token is required")
	}
	return c.fetch(ctx, domain.SearchQuery{Keyword: keyword, Location: location, PageToken: token})
}

// SearchMultiple returns the first page of businesses for keyword in each location
func (c *Client) SearchMultiple(ctx context.Context, keyword string, locations []string) (*MultiResult, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	defer c.mu.RUnlock()

	result, err := c.searchService.SearchMultiple(ctx, keyword, locations)
	if err != nil {
		return nil, wrapError(err)
	}
	return multiToPublic(result), nil
}

func (c *Client) fetch(ctx context.Context, query domain.SearchQuery) (*Page, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	defer c.mu.RUnlock()

	resp, err := c.searchService.Search(ctx, query)
	if err != nil {
		return nil, wrapError(err)
	}
	return responseToPublic(resp), nil
}

// checkOpen holds a read lock on success; the caller releases it
func (c *Client) checkOpen() error {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return ErrClientClosed
	}
	return nil
}
