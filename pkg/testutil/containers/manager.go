//go:build integration

// Package containers manages shared testcontainers for integration tests.
// Containers are started once per test binary and shared across suites;
// Ryuk reaps them when the run ends.
package containers

import (
	"context"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
)

var (
	managerOnce sync.Once
	manager     *Manager
)

// Manager hands out lazily started shared containers.
type Manager struct {
	mu       sync.Mutex
	postgres *PostgresContainer
	redis    *RedisContainer
}

// GetManager returns the process-wide container manager.
func GetManager() *Manager {
	managerOnce.Do(func() {
		manager = &Manager{}
	})
	return manager
}

// GetPostgres returns the shared PostgreSQL container, starting it on
// first use.
func (m *Manager) GetPostgres(t *testing.T) *PostgresContainer {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.postgres == nil {
		pg, err := startPostgres(context.Background())
		if err != nil {
			t.Fatalf("failed to start postgres container: %v", err)
		}
		m.postgres = pg
	}
	return m.postgres
}

// GetRedis returns the shared Redis container, starting it on first use.
func (m *Manager) GetRedis(t *testing.T) *RedisContainer {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.redis == nil {
		rc, err := startRedis(context.Background())
		if err != nil {
			t.Fatalf("failed to start redis container: %v", err)
		}
		m.redis = rc
	}
	return m.redis
}

// StartAll brings up every backing container concurrently. Suites that
// need both call this from SetupSuite to halve startup time.
func (m *Manager) StartAll(t *testing.T) {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ctx := errgroup.WithContext(context.Background())

	if m.postgres == nil {
		g.Go(func() error {
			pg, err := startPostgres(ctx)
			if err == nil {
				m.postgres = pg
			}
			return err
		})
	}
	if m.redis == nil {
		g.Go(func() error {
			rc, err := startRedis(ctx)
			if err == nil {
				m.redis = rc
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("failed to start containers: %v", err)
	}
}
