package search

import (
	"context"
	"sync"
	"time"

	"places-finder-api/core/domain"
	"places-finder-api/core/interfaces"
)

// mockPlacesClient is a mock implementation of the PlacesClient interface
type mockPlacesClient struct {
	textSearchFunc   func(ctx context.Context, keyword, location, pageToken string) (domain.SearchPage, error)
	placeDetailsFunc func(ctx context.Context, placeID string) (domain.PlaceDetails, error)

	mu           sync.Mutex
	searchCalls  int
	detailsCalls int
}

func (m *mockPlacesClient) TextSearch(ctx context.Context, keyword, location, pageToken string) (domain.SearchPage, error) {
	m.mu.Lock()
	m.searchCalls++
	m.mu.Unlock()

	if m.textSearchFunc != nil {
		return m.textSearchFunc(ctx, keyword, location, pageToken)
	}
	return domain.SearchPage{}, nil
}

func (m *mockPlacesClient) PlaceDetails(ctx context.Context, placeID string) (domain.PlaceDetails, error) {
	m.mu.Lock()
	m.detailsCalls++
	m.mu.Unlock()

	if m.placeDetailsFunc != nil {
		return m.placeDetailsFunc(ctx, placeID)
	}
	return domain.PlaceDetails{}, nil
}

func (m *mockPlacesClient) calls() (search, details int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.searchCalls, m.detailsCalls
}

// mapCache is a minimal thread-safe Cache without expiry
type mapCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{items: make(map[string][]byte)}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.items[key]; ok {
		return v, nil
	}
	return nil, interfaces.ErrCacheMiss
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

// recordingMetrics counts metric calls
type recordingMetrics struct {
	mu            sync.Mutex
	hits, misses  int
	failedLookups int
	cachedPages   int
	fetchedPages  int
}

func (m *recordingMetrics) CacheLookup(hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if hit {
		m.hits++
	} else {
		m.misses++
	}
}

func (m *recordingMetrics) UpstreamCall(operation, status string, duration time.Duration) {}

func (m *recordingMetrics) DetailLookupFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failedLookups++
}

func (m *recordingMetrics) PageFetched(cached bool, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cached {
		m.cachedPages++
	} else {
		m.fetchedPages++
	}
}
