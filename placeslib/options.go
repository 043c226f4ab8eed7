// ABOUTME: Configuration options for the placeslib client
// ABOUTME: Provides functional options pattern for flexible client configuration

package placeslib

import (
	"net/http"
	"time"

	"places-finder-api/core/interfaces"
	"places-finder-api/core/pagination"
	"places-finder-api/core/resultcache"
	"places-finder-api/core/workers"
)

// Config holds the configuration for the client
type Config struct {
	// APIKey authenticates against the places API
	APIKey string

	// BaseURL overrides the places API endpoint
	BaseURL string

	// HTTPClient performs upstream requests
	HTTPClient *http.Client

	// Cache stores results, details and page tokens; defaults to in-memory
	Cache interfaces.Cache

	// Logger receives library logs; defaults to discarding them
	Logger interfaces.Logger

	// CacheTTL controls how long results are reused
	CacheTTL time.Duration

	// Workers is the number of concurrent detail lookups
	Workers int

	// LookupTimeout bounds one detail lookup
	LookupTimeout time.Duration

	// PageDelay is how long a page token ages before use
	PageDelay time.Duration

	// MaxPages caps the pages served per search
	MaxPages int
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithAPIKey sets the places API key
func WithAPIKey(key string) Option {
	return func(c *Config) error {
		c.APIKey = key
		return nil
	}
}

// WithBaseURL points the client at a different places API endpoint
func WithBaseURL(url string) Option {
	return func(c *Config) error {
		c.BaseURL = url
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) error {
		if client == nil {
			return NewError(ErrorTypeConfiguration, "HTTP client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		if cache == nil {
			return NewError(ErrorTypeConfiguration, "cache cannot be nil")
		}
		c.Cache = cache
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithCacheTTL sets how long results are cached
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl <= 0 {
			return NewError(ErrorTypeConfiguration, "cache TTL must be positive")
		}
		c.CacheTTL = ttl
		return nil
	}
}

// WithWorkers sets the number of concurrent detail lookups
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewError(ErrorTypeConfiguration, "workers must be at least 1")
		}
		c.Workers = n
		return nil
	}
}

// WithLookupTimeout sets the timeout for one detail lookup
func WithLookupTimeout(d time.Duration) Option {
	return func(c *Config) error {
		if d <= 0 {
			return NewError(ErrorTypeConfiguration, "lookup timeout must be positive")
		}
		c.LookupTimeout = d
		return nil
	}
}

// WithPageDelay sets how long a page token ages before use
func WithPageDelay(d time.Duration) Option {
	return func(c *Config) error {
		if d < 0 {
			return NewError(ErrorTypeConfiguration, "page delay cannot be negative")
		}
		c.PageDelay = d
		return nil
	}
}

// WithMaxPages caps the pages served per search
func WithMaxPages(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewError(ErrorTypeConfiguration, "max pages must be at least 1")
		}
		c.MaxPages = n
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	pool := workers.DefaultPoolConfig()
	pages := pagination.DefaultConfig()
	return Config{
		Logger:        interfaces.NopLogger{},
		CacheTTL:      resultcache.DefaultTTL,
		Workers:       pool.MaxWorkers,
		LookupTimeout: pool.TaskTimeout,
		PageDelay:     pages.PageDelay,
		MaxPages:      pages.MaxPages,
	}
}
