// ABOUTME: Main entry point for the Places Finder API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"places-finder-api/api"
	"places-finder-api/api/handlers"
	"places-finder-api/api/middleware"
	coreconfig "places-finder-api/core/config"
	"places-finder-api/core/interfaces"
	"places-finder-api/core/pagination"
	"places-finder-api/core/resultcache"
	"places-finder-api/core/search"
	"places-finder-api/core/services"
	"places-finder-api/core/workers"
	"places-finder-api/infrastructure/cache/memory"
	"places-finder-api/infrastructure/cache/redis"
	"places-finder-api/infrastructure/cache/sqlite"
	"places-finder-api/infrastructure/logger/structured"
	"places-finder-api/infrastructure/metrics/prometheus"
	"places-finder-api/infrastructure/places/googlemaps"
	"places-finder-api/pkg/config"
	"places-finder-api/pkg/featureflags"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger, err := structured.New(structured.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("Starting Places Finder API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"cache_ttl":  cfg.Cache.TTL.String(),
		"workers":    cfg.Enrichment.Workers,
	})

	ctx := context.Background()
	flags := featureflags.NewEnvManager("FEATURE_")

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(cfg.Cache.Memory.CleanupInterval)
		} else {
			defer redisCache.Close()
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address":    cfg.Cache.Redis.Address,
				"key_prefix": cfg.Cache.Redis.KeyPrefix,
			})
		}
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.CleanupInterval, logger)
		if err != nil {
			logger.Error("Failed to open SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(cfg.Cache.Memory.CleanupInterval)
		} else {
			defer sqliteCache.Close()
			cache = sqliteCache
			logger.Info("Using in-memory SQLite cache", nil)
		}
	default:
		cache = memory.NewMemoryCache(cfg.Cache.Memory.CleanupInterval)
		logger.Info("Using memory cache", nil)
	}

	metrics := prometheus.NewRecorder()

	places, err := googlemaps.NewClient(googlemaps.Config{
		APIKey:            cfg.Places.APIKey,
		BaseURL:           cfg.Places.BaseURL,
		HTTPClient:        middleware.NewLoggingClient(logger, cfg.Places.RequestTimeout),
		RequestsPerSecond: cfg.Places.RequestsPerSecond,
		RequestTimeout:    cfg.Places.RequestTimeout,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to create places client: %v", err)
	}

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:   cache,
		Places:  places,
		Logger:  logger,
		Metrics: metrics,
	}

	pool := workers.NewPool(workers.PoolConfig{
		MaxWorkers:  cfg.Enrichment.Workers,
		QueueSize:   cfg.Enrichment.QueueSize,
		TaskTimeout: cfg.Places.RequestTimeout,
	})
	if err := pool.Start(); err != nil {
		log.Fatalf("Failed to start worker pool: %v", err)
	}
	defer pool.Stop()

	enrichOpts := []coreconfig.EnrichmentOption{coreconfig.WithDetailCache(cfg.Cache.TTL)}
	if !flags.IsEnabled(ctx, featureflags.DetailCacheEnabled) {
		enrichOpts = []coreconfig.EnrichmentOption{coreconfig.WithoutDetailCache()}
	}

	// Create services
	searchService := search.NewSearchService(deps,
		pagination.NewController(deps, pagination.Config{
			MaxPages:     cfg.Pagination.MaxPages,
			PageDelay:    cfg.Pagination.PageDelay,
			TokenRetries: cfg.Pagination.TokenRetries,
			TokenTTL:     cfg.Cache.TTL,
		}),
		services.NewDetailEnricher(deps, pool, enrichOpts...),
		resultcache.New(cache, cfg.Cache.TTL, logger),
	)

	// Create API with middleware
	apiConfig := api.APIConfig{Logger: logger}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
		defer limiter.Stop()
		apiConfig.Limiter = limiter
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	handlers.NewSearchHandler(searchService, flags).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler().RegisterRoutes(humaAPI)

	if flags.IsEnabled(ctx, featureflags.MetricsEndpoint) {
		api.MountMetrics(router, metrics.Handler())
	}

	// Enrichment of a full page can take several lookup timeouts
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
			"flags":   flags.GetAllFlags(),
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

func init() {
	fmt.Println(`
    ____  __                        _______           __
   / __ \/ /___ _________  _____   / ____(_)___  ____/ /__  _____
  / /_/ / / __ '/ ___/ _ \/ ___/  / /_  / / __ \/ __  / _ \/ ___/
 / ____/ / /_/ / /__/  __(__  )  / __/ / / / / / /_/ /  __/ /
/_/   /_/\__,_/\___/\___/____/  /_/   /_/_/ /_/\__,_/\___/_/
	`)
}
