package state

import (
	"context"
	"sync"
)

// MemStore is an in-process Store for tests and one-shot runs.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

// Persist swaps value in for key.
func (s *MemStore) Persist(_ context.Context, key, value string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, found := s.values[key]
	s.values[key] = value
	return previous, found, nil
}

// Get returns the value stored for key.
func (s *MemStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	return v, ok
}

// Close does nothing.
func (s *MemStore) Close() error {
	return nil
}
