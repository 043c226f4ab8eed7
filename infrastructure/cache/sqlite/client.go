// ABOUTME: SQLite-based cache implementation on a private in-memory database
// ABOUTME: Expired rows are filtered on read and swept by a background routine

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"places-finder-api/core/interfaces"
)

// DefaultCleanupInterval is how often expired rows are deleted when none is given
const DefaultCleanupInterval = 5 * time.Minute

const schema = `
CREATE TABLE IF NOT EXISTS cache (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	expires_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cache_expires_at ON cache(expires_at);
`

// Client implements interfaces.Cache on an in-memory SQLite database.
// Nothing is written to disk; the data lives as long as the Client.
// An expires_at of 0 means the row never expires.
type Client struct {
	db     *sql.DB
	name   string
	logger interfaces.Logger
	now    func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSQLiteCache creates a cache on a fresh, uniquely named in-memory database
func NewSQLiteCache(cleanupInterval time.Duration, logger interfaces.Logger) (*Client, error) {
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	name := "places-cache-" + uuid.NewString()
	db, err := sql.Open("sqlite3", "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// The database is dropped when its last connection closes, so keep exactly one open
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	c := &Client{
		db:     db,
		name:   name,
		logger: logger,
		now:    time.Now,
		stop:   make(chan struct{}),
	}

	c.wg.Add(1)
	go c.cleanupRoutine(cleanupInterval)

	return c, nil
}

var _ interfaces.Cache = (*Client)(nil)

// Get retrieves a value, returning interfaces.ErrCacheMiss when absent or expired
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := c.db.QueryRowContext(ctx,
		"SELECT value FROM cache WHERE key = ? AND (expires_at = 0 OR expires_at > ?)",
		key, c.now().UnixMilli(),
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}
	return value, nil
}

// Set stores a value. A ttl <= 0 keeps the value until it is deleted.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = c.now().Add(ttl).UnixMilli()
	}

	_, err := c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO cache (key, value, expires_at) VALUES (?, ?, ?)",
		key, value, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}

// Delete removes a value
func (c *Client) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

// Len returns the number of stored rows, expired or not
func (c *Client) Len(ctx context.Context) (int, error) {
	var count int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cache").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Close stops the cleanup routine and closes the database
func (c *Client) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	c.wg.Wait()
	return c.db.Close()
}

func (c *Client) cleanupRoutine(interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := c.deleteExpired(context.Background()); err != nil {
				c.logger.Warn("SQLite cache cleanup failed", map[string]interface{}{
					"database": c.name,
					"error":    err.Error(),
				})
			}
		case <-c.stop:
			return
		}
	}
}

// deleteExpired removes expired rows and reports how many were removed
func (c *Client) deleteExpired(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx,
		"DELETE FROM cache WHERE expires_at != 0 AND expires_at <= ?",
		c.now().UnixMilli(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
