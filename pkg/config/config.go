// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, upstream places API, pagination, cache and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Places contains upstream places API configuration
	Places PlacesConfig

	// Enrichment contains worker pool configuration for detail lookups
	Enrichment EnrichmentConfig

	// Pagination contains page token handling configuration
	Pagination PaginationConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests a client IP may make per RateWindow
	RateLimit int

	// RateWindow is the window RateLimit applies to
	RateWindow time.Duration
}

// PlacesConfig holds upstream places API configuration
type PlacesConfig struct {
	// APIKey authenticates against the places API
	APIKey string

	// BaseURL overrides the upstream endpoint, mainly for tests
	BaseURL string

	// RequestTimeout bounds a single upstream call
	RequestTimeout time.Duration

	// RequestsPerSecond is the client-side upstream rate limit
	RequestsPerSecond int
}

// EnrichmentConfig holds detail lookup pool configuration
type EnrichmentConfig struct {
	// Workers is the number of concurrent detail lookups
	Workers int

	// QueueSize is the number of lookups that may wait for a worker
	QueueSize int
}

// PaginationConfig holds page token configuration
type PaginationConfig struct {
	// PageDelay is how long a token must age before it is used
	PageDelay time.Duration

	// TokenRetries is how many times a not-ready token is retried
	TokenRetries int

	// MaxPages caps the pages served per search
	MaxPages int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// TTL is how long results, details and page tokens are kept
	TTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains in-memory SQLite cache configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix is prepended to every key written by this process
	KeyPrefix string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are swept
	CleanupInterval time.Duration
}

// SQLiteConfig holds in-memory SQLite cache configuration
type SQLiteConfig struct {
	// CleanupInterval is how often expired rows are deleted
	CleanupInterval time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string
}

// LoadDotEnv loads variables from a .env file if one exists.
// Variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow: getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute),
		},
		Places: PlacesConfig{
			APIKey:            os.Getenv("GOOGLE_MAPS_API_KEY"),
			BaseURL:           getEnvOrDefault("PLACES_BASE_URL", ""),
			RequestTimeout:    getEnvAsDurationOrDefault("PLACES_REQUEST_TIMEOUT", 8*time.Second),
			RequestsPerSecond: getEnvAsIntOrDefault("PLACES_REQUESTS_PER_SECOND", 10),
		},
		Enrichment: EnrichmentConfig{
			Workers:   getEnvAsIntOrDefault("ENRICH_WORKERS", 10),
			QueueSize: getEnvAsIntOrDefault("ENRICH_QUEUE_SIZE", 100),
		},
		Pagination: PaginationConfig{
			PageDelay:    getEnvAsDurationOrDefault("PAGE_DELAY", 2*time.Second),
			TokenRetries: getEnvAsIntOrDefault("PAGE_TOKEN_RETRIES", 3),
			MaxPages:     getEnvAsIntOrDefault("MAX_PAGES", 3),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			TTL:  getEnvAsDurationOrDefault("CACHE_TTL", time.Hour),
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", ""),
			},
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsDurationOrDefault("MEMORY_CACHE_CLEANUP", 10*time.Minute),
			},
			SQLite: SQLiteConfig{
				CleanupInterval: getEnvAsDurationOrDefault("SQLITE_CACHE_CLEANUP", 5*time.Minute),
			},
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("2s") or whole seconds ("2")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 {
		return errors.New("rate limit must be at least 1")
	}

	if c.Server.RateWindow <= 0 {
		return errors.New("rate window must be positive")
	}

	if c.Places.APIKey == "" {
		return errors.New("GOOGLE_MAPS_API_KEY is required")
	}

	if c.Places.RequestTimeout <= 0 {
		return errors.New("places request timeout must be positive")
	}

	if c.Enrichment.Workers < 1 {
		return errors.New("enrichment workers must be at least 1")
	}

	if c.Enrichment.QueueSize < 0 {
		return errors.New("enrichment queue size cannot be negative")
	}

	if c.Pagination.PageDelay < 0 {
		return errors.New("page delay cannot be negative")
	}

	if c.Pagination.TokenRetries < 0 {
		return errors.New("page token retries cannot be negative")
	}

	if c.Pagination.MaxPages < 1 {
		return errors.New("max pages must be at least 1")
	}

	switch c.Cache.Type {
	case "redis", "memory", "sqlite":
	default:
		return errors.New("cache type must be 'redis', 'memory' or 'sqlite'")
	}

	if c.Cache.TTL <= 0 {
		return errors.New("cache ttl must be positive")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
