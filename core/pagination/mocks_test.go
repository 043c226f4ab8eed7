package pagination

import (
	"context"
	"sync"
	"time"

	"places-finder-api/core/domain"
	"places-finder-api/core/interfaces"
)

// mockPlacesClient is a mock implementation of the PlacesClient interface
type mockPlacesClient struct {
	textSearchFunc func(ctx context.Context, keyword, location, pageToken string) (domain.SearchPage, error)

	mu     sync.Mutex
	tokens []string
}

func (m *mockPlacesClient) TextSearch(ctx context.Context, keyword, location, pageToken string) (domain.SearchPage, error) {
	m.mu.Lock()
	m.tokens = append(m.tokens, pageToken)
	m.mu.Unlock()

	if m.textSearchFunc != nil {
		return m.textSearchFunc(ctx, keyword, location, pageToken)
	}
	return domain.SearchPage{}, nil
}

func (m *mockPlacesClient) PlaceDetails(ctx context.Context, placeID string) (domain.PlaceDetails, error) {
	return domain.PlaceDetails{}, nil
}

func (m *mockPlacesClient) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tokens)
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

// fakeClock records waits and advances time by the waited amount
type fakeClock struct {
	mu      sync.Mutex
	current time.Time
	waits   []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *fakeClock) wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.waits = append(f.waits, d)
	f.current = f.current.Add(d)
	return nil
}

func (f *fakeClock) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = f.current.Add(d)
}

func (f *fakeClock) recordedWaits() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.waits...)
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// recordingLogger keeps every entry it is given
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) log(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.log("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{}) { l.log("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) { l.log("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.log("error", msg, fields) }

func (l *recordingLogger) byLevel(level string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []logEntry
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}
