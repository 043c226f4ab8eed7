package pagination

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"places-finder-api/core/interfaces"
)

const tokenKeyPrefix = "pagetoken:"

// tokenRecord is what the controller remembers about a forwarded page token
type tokenRecord struct {
	Keyword  string    `json:"keyword"`
	Location string    `json:"location"`
	Page     int       `json:"page"`
	IssuedAt time.Time `json:"issued_at"`
}

// tokenRegistry persists token records in the shared cache backend so that
// every instance sharing the backend agrees on page numbers and issue times.
type tokenRegistry struct {
	cache interfaces.Cache
	ttl   time.Duration
}

// tokenKey hashes the token; tokens are opaque and can be long
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return tokenKeyPrefix + hex.EncodeToString(sum[:])
}

var errNoTokenStore = errors.New("no cache configured for page tokens")

func (r *tokenRegistry) remember(ctx context.Context, token string, record tokenRecord) error {
	if r.cache == nil {
		return errNoTokenStore
	}
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.cache.Set(ctx, tokenKey(token), data, r.ttl)
}

func (r *tokenRegistry) lookup(ctx context.Context, token string) (tokenRecord, bool) {
	if r.cache == nil {
		return tokenRecord{}, false
	}
	data, err := r.cache.Get(ctx, tokenKey(token))
	if err != nil || data == nil {
		return tokenRecord{}, false
	}
	var record tokenRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return tokenRecord{}, false
	}
	return record, true
}
