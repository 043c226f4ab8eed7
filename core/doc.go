// Package core contains the business logic for the Places Finder API.
// It is framework-agnostic and can be used without the HTTP layer.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (BusinessResult, SearchQuery, PageResult)
// - errors: Custom error types for validation and upstream failures
// - interfaces: Contracts for external dependencies (cache, places, logger, metrics)
// - workers: Bounded worker pool used for detail lookups
// - services: Detail enrichment on top of the worker pool
// - pagination: Page token chaining with delay and not-ready retries
// - resultcache: TTL cache of enriched pages keyed by query
// - search: Orchestrates cache, pagination and enrichment
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:  myCache,  // implements interfaces.Cache
//	    Places: myPlaces, // implements interfaces.PlacesClient
//	    Logger: myLogger, // implements interfaces.Logger
//	}
//
//	pool := workers.NewPool(workers.DefaultPoolConfig())
//	_ = pool.Start()
//	defer pool.Stop()
//
//	svc := search.NewSearchService(deps,
//	    pagination.NewController(deps, pagination.DefaultConfig()),
//	    services.NewDetailEnricher(deps, pool),
//	    resultcache.New(deps.Cache, resultcache.DefaultTTL, deps.Logger),
//	)
//
//	resp, err := svc.Search(ctx, domain.SearchQuery{Keyword: "coffee", Location: "Seattle"})
package core
