// Package api provides the HTTP API layer for the Places Finder service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//   - POST /search: one page of enriched results for keyword and location
//   - POST /search-multiple: first pages for a comma-separated location list
//   - GET /healthz: liveness probe
//   - GET /metrics: Prometheus metrics, when enabled
//
// The OpenAPI spec is served at /openapi.json and the Swagger UI at /docs.
//
// # Usage Example
//
//	limiter := middleware.NewRateLimiter(100, time.Minute)
//	defer limiter.Stop()
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:  logger,
//	    Limiter: limiter,
//	})
//
//	handlers.NewSearchHandler(searchService, flags).RegisterRoutes(humaAPI)
//	handlers.NewHealthHandler().RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "validation error on field 'keyword': keyword is required"
//	}
//
// Validation errors map to 400, an exhausted upstream quota to 429, rejected
// upstream requests to 502 and unreachable upstreams to 503.
package api
