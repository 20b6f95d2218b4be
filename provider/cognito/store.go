package cognito

import (
	"context"
	"sync"
)

// TokenStore persists the token bundle between runs. Implementations
// must treat absence as (nil, nil), not as an error.
type TokenStore interface {
	Load(ctx context.Context) (*Tokens, error)
	Save(ctx context.Context, tokens Tokens) error
	Clear(ctx context.Context) error
}

// MemoryTokenStore keeps tokens in process memory. It is the default
// store; sessions do not survive a restart.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens *Tokens
}

// NewMemoryTokenStore returns an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load(ctx context.Context) (*Tokens, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tokens == nil {
		return nil, nil
	}

	copied := *s.tokens
	return &copied, nil
}

func (s *MemoryTokenStore) Save(ctx context.Context, tokens Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = &tokens
	return nil
}

func (s *MemoryTokenStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = nil
	return nil
}
