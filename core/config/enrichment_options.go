// ABOUTME: Enrichment configuration for service-level control of detail lookups
// ABOUTME: Provides configuration options independent of HTTP request structures

package config

import "time"

// EnrichmentConfig controls how business details are resolved
type EnrichmentConfig struct {
	// CacheDetails controls whether successful detail lookups are cached
	CacheDetails bool

	// DetailTTL is how long a cached detail lookup stays valid
	DetailTTL time.Duration
}

// DefaultEnrichmentConfig returns the default configuration with detail caching enabled
func DefaultEnrichmentConfig() EnrichmentConfig {
	return EnrichmentConfig{
		CacheDetails: true,
		DetailTTL:    time.Hour,
	}
}

// EnrichmentOption is a functional option for configuring enrichment
type EnrichmentOption func(*EnrichmentConfig)

// WithDetailCache enables detail caching with the given TTL
func WithDetailCache(ttl time.Duration) EnrichmentOption {
	return func(c *EnrichmentConfig) {
		c.CacheDetails = true
		if ttl > 0 {
			c.DetailTTL = ttl
		}
	}
}

// WithoutDetailCache disables detail caching
func WithoutDetailCache() EnrichmentOption {
	return func(c *EnrichmentConfig) {
		c.CacheDetails = false
	}
}

// NewEnrichmentConfig creates a new enrichment configuration with the given options
func NewEnrichmentConfig(opts ...EnrichmentOption) EnrichmentConfig {
	config := DefaultEnrichmentConfig()

	for _, opt := range opts {
		opt(&config)
	}

	return config
}
