package authz

import (
	"context"
	"sync"
)

// MemorySettingStore is an in-memory SettingStore. It is safe for concurrent
// use and makes defensive copies so callers cannot mutate stored values.
// Intended for tests and single-process deployments.
type MemorySettingStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemorySettingStore creates an empty in-memory setting store.
func NewMemorySettingStore() *MemorySettingStore {
	return &MemorySettingStore{
		values: make(map[string][]byte),
	}
}

// Get returns a copy of the value stored under key.
func (s *MemorySettingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrSettingNotFound
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	return valueCopy, nil
}

// Set stores a copy of value under key.
func (s *MemorySettingStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = valueCopy
	return nil
}
