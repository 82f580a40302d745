package testutil

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store for tests
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
	writes int
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, userID int64, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[storeKey(userID, key)]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemoryStore) Set(ctx context.Context, userID int64, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[storeKey(userID, key)] = append([]byte(nil), value...)
	s.writes++
	return nil
}

// Raw returns the stored value as a string, empty when absent
func (s *MemoryStore) Raw(userID int64, key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.values[storeKey(userID, key)])
}

// Writes returns how many Set calls were made
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func storeKey(userID int64, key string) string {
	return fmt.Sprintf("%d/%s", userID, key)
}
