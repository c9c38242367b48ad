package sessionstore

import (
	"context"
	"sync"

	"shopbot-checkout/internal/domain/checkout"
)

// MemoryStore is the in-process fallback used when no redis address is
// configured, and the backing store in unit tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]checkout.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]checkout.Session)}
}

func (s *MemoryStore) Get(_ context.Context, userID int64) (*checkout.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := sess
	return &copied, nil
}

func (s *MemoryStore) Put(_ context.Context, sess *checkout.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.UserID] = *sess
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}
