// ABOUTME: Detail enrichment resolves website, rating and review count for each business
// ABOUTME: Lookups run concurrently on the bounded pool and failures are isolated per business

package services

import (
	"context"
	"encoding/json"
	"time"

	"places-finder-api/core/config"
	"places-finder-api/core/domain"
	"places-finder-api/core/errors"
	"places-finder-api/core/interfaces"
	"places-finder-api/core/workers"
)

const detailsKeyPrefix = "details:"

// DetailEnricher augments text-search results with place details
type DetailEnricher struct {
	deps   interfaces.Dependencies
	pool   *workers.Pool
	config config.EnrichmentConfig
}

// NewDetailEnricher creates an enricher that runs lookups on pool
func NewDetailEnricher(deps interfaces.Dependencies, pool *workers.Pool, opts ...config.EnrichmentOption) *DetailEnricher {
	return &DetailEnricher{
		deps:   deps,
		pool:   pool,
		config: config.NewEnrichmentConfig(opts...),
	}
}

// Enrich returns a copy of businesses with details applied, in input order.
// A failed or timed-out lookup leaves that business without details; the batch never fails.
func (e *DetailEnricher) Enrich(ctx context.Context, businesses []domain.BusinessResult) []domain.BusinessResult {
	enriched := make([]domain.BusinessResult, len(businesses))
	copy(enriched, businesses)

	if len(businesses) == 0 || e.deps.Places == nil {
		return enriched
	}

	tasks := make([]workers.TaskFunc, 0, len(businesses))
	indexes := make([]int, 0, len(businesses))
	for i := range businesses {
		if businesses[i].PlaceID == "" {
			continue
		}
		i := i
		indexes = append(indexes, i)
		tasks = append(tasks, func(taskCtx context.Context) error {
			details, err := e.lookup(taskCtx, businesses[i].PlaceID)
			if err != nil {
				return err
			}
			// Each task owns exactly one slot
			enriched[i] = businesses[i].WithDetails(details)
			return nil
		})
	}

	errs := e.pool.RunBatch(ctx, tasks)

	logger := e.deps.LoggerOrNop()
	metrics := e.deps.MetricsOrNop()
	failed := 0
	for n, err := range errs {
		if err == nil {
			continue
		}
		failed++
		metrics.DetailLookupFailed()
		lookupErr := &errors.DetailLookupError{PlaceID: businesses[indexes[n]].PlaceID, Err: err}
		logger.Warn("Detail lookup failed", map[string]interface{}{
			"place_id": lookupErr.PlaceID,
			"error":    lookupErr.Error(),
		})
	}

	logger.Debug("Enriched businesses", map[string]interface{}{
		"total":  len(businesses),
		"failed": failed,
	})

	return enriched
}

// lookup resolves details for one place, consulting the detail cache first
func (e *DetailEnricher) lookup(ctx context.Context, placeID string) (domain.PlaceDetails, error) {
	cacheKey := detailsKeyPrefix + placeID

	if e.config.CacheDetails && e.deps.Cache != nil {
		if data, err := e.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var details domain.PlaceDetails
			if err := json.Unmarshal(data, &details); err == nil {
				return details, nil
			}
		}
	}

	start := time.Now()
	details, err := e.deps.Places.PlaceDetails(ctx, placeID)
	e.deps.MetricsOrNop().UpstreamCall("place_details", errors.StatusOf(err), time.Since(start))
	if err != nil {
		return domain.PlaceDetails{}, err
	}

	if e.config.CacheDetails && e.deps.Cache != nil {
		if data, err := json.Marshal(details); err == nil {
			_ = e.deps.Cache.Set(ctx, cacheKey, data, e.config.DetailTTL)
		}
	}

	return details, nil
}
