// ABOUTME: Result cache stores enriched search pages keyed by keyword, location and page token
// ABOUTME: Entries expire lazily once they are TTL old, on top of whatever the backend sweeps

package resultcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"places-finder-api/core/domain"
	"places-finder-api/core/interfaces"
)

// DefaultTTL is how long a cached page stays fresh
const DefaultTTL = time.Hour

const keyPrefix = "results:"

// Entry is the stored form of a cached page
type Entry struct {
	Query     domain.SearchQuery `json:"query"`
	Value     domain.PageResult  `json:"value"`
	CreatedAt time.Time          `json:"created_at"`
}

// Cache is a TTL cache of page results over a byte-oriented backend.
// It is safe for concurrent use when the backend is.
type Cache struct {
	store  interfaces.Cache
	ttl    time.Duration
	logger interfaces.Logger
	now    func() time.Time
}

// New creates a result cache. A non-positive ttl uses DefaultTTL.
func New(store interfaces.Cache, ttl time.Duration, logger interfaces.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Cache{
		store:  store,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// TTL returns the configured time to live
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Key returns the backend key for a query
func Key(q domain.SearchQuery) string {
	sum := sha256.Sum256([]byte(q.Keyword + "\x00" + q.Location + "\x00" + q.PageToken))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached page for q if present and fresh
func (c *Cache) Get(ctx context.Context, q domain.SearchQuery) (domain.PageResult, bool) {
	if c.store == nil {
		return domain.PageResult{}, false
	}

	key := Key(q)
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrCacheMiss) {
			c.logger.Warn("Result cache read failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return domain.PageResult{}, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.Warn("Discarding undecodable cache entry", map[string]interface{}{
			"error": err.Error(),
		})
		_ = c.store.Delete(ctx, key)
		return domain.PageResult{}, false
	}

	if entry.Query != q {
		return domain.PageResult{}, false
	}

	if !c.now().Before(entry.CreatedAt.Add(c.ttl)) {
		_ = c.store.Delete(ctx, key)
		return domain.PageResult{}, false
	}

	if entry.Value.Businesses == nil {
		entry.Value.Businesses = []domain.BusinessResult{}
	}
	return entry.Value, true
}

// Put stores r for q, replacing any existing entry
func (c *Cache) Put(ctx context.Context, q domain.SearchQuery, r domain.PageResult) error {
	if c.store == nil {
		return ErrNoStore
	}

	data, err := json.Marshal(Entry{
		Query:     q,
		Value:     r,
		CreatedAt: c.now(),
	})
	if err != nil {
		return err
	}
	return c.store.Set(ctx, Key(q), data, c.ttl)
}

// ErrNoStore is returned by Put when no backend is configured
var ErrNoStore = errors.New("result cache has no backend")
