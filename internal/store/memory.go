package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is a volatile Store for tests. It round-trips values through
// JSON so fixtures hit the same serialization path as the real backends.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string, dest any) error {
	s.mu.RLock()
	b, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(b, dest)
}

func (s *MemoryStore) Set(_ context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[key] = b
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
