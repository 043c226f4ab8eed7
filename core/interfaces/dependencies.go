// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache provides caching functionality shared by results, details and page tokens
	Cache Cache

	// Places provides access to the upstream places API
	Places PlacesClient

	// Logger provides structured logging
	Logger Logger

	// Metrics records operational counters; nil disables recording
	Metrics Metrics
}

// LoggerOrNop returns the configured logger or one that discards everything
func (d Dependencies) LoggerOrNop() Logger {
	if d.Logger == nil {
		return NopLogger{}
	}
	return d.Logger
}

// MetricsOrNop returns the configured metrics or a recorder that discards everything
func (d Dependencies) MetricsOrNop() Metrics {
	if d.Metrics == nil {
		return NopMetrics{}
	}
	return d.Metrics
}
