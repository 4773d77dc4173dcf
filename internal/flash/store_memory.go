package flash

import (
	"context"
	"sync"

	"sitedoctor/internal/doctor"
)

// MemoryStore is an in-process flash store for tests and single-node
// deployments without redis.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]doctor.Notice
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]doctor.Notice)}
}

// Push implements Store.
func (s *MemoryStore) Push(_ context.Context, sessionID string, notices []doctor.Notice) error {
	if len(notices) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], notices...)
	return nil
}

// Pop implements Store.
func (s *MemoryStore) Pop(_ context.Context, sessionID string) ([]doctor.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	notices := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	return notices, nil
}
