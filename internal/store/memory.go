package store

import (
	"context"
	"sync"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

// MemStore keeps the token in memory. Used in tests and for ephemeral
// sessions that must not outlive the process.
type MemStore struct {
	mu  sync.Mutex
	tok string
	set bool
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", domain.ErrNoToken
	}
	return s.tok, nil
}

func (s *MemStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = token
	s.set = true
	return nil
}

func (s *MemStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = ""
	s.set = false
	return nil
}
