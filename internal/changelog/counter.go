// Package changelog counts rows in the CMS log tables for the doctor's
// size checks.
package changelog

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"sitedoctor/pkg/platform/sentinel"
)

// logTables maps a log kind to its table. Table names come from this
// fixed map, never from input, so the query below is safe to assemble.
var logTables = map[string]string{
	"changelog": "content_changelog",
	"systemlog": "system_log",
}

// Schema creates the log tables. Used by integration tests and fresh
// installs; production schemas are owned by the CMS migrations.
const Schema = `
CREATE TABLE IF NOT EXISTS content_changelog (
    id         BIGSERIAL PRIMARY KEY,
    content_id BIGINT      NOT NULL,
    mutation   TEXT        NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS system_log (
    id         BIGSERIAL PRIMARY KEY,
    level      TEXT        NOT NULL,
    message    TEXT        NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// PostgresCounter is the production RowCounter backed by a pgx pool.
type PostgresCounter struct {
	pool *pgxpool.Pool
}

// NewPostgresCounter wraps an existing pool; lifecycle stays with the
// caller.
func NewPostgresCounter(pool *pgxpool.Pool) *PostgresCounter {
	return &PostgresCounter{pool: pool}
}

// Count implements ports.RowCounter.
func (c *PostgresCounter) Count(ctx context.Context, kind string) (int64, error) {
	table, ok := logTables[kind]
	if !ok {
		return 0, fmt.Errorf("log kind %q: %w", kind, sentinel.ErrNotFound)
	}

	var n int64
	if err := c.pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// MemoryCounter is an in-memory RowCounter for tests and database-less
// deployments.
type MemoryCounter struct {
	mu     sync.RWMutex
	counts map[string]int64
}

// NewMemoryCounter returns an empty counter.
func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{counts: make(map[string]int64)}
}

// Set fixes the row count reported for a kind.
func (c *MemoryCounter) Set(kind string, n int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[kind] = n
}

// Count implements ports.RowCounter. Unknown kinds report zero rows.
func (c *MemoryCounter) Count(_ context.Context, kind string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[kind], nil
}
