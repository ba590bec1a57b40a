package store

import (
	"sync"

	"github.com/heysubinoy/kvgate/pkg/kv"
)

// MemStore is an in-memory implementation of the kv.Store interface.
// Every access, read or write, goes through the same mutex.
type MemStore struct {
	mu   sync.Mutex
	data map[string]string
}

// Compile-time check to ensure MemStore implements kv.Store.
var _ kv.Store = (*MemStore)(nil)

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string]string),
	}
}

// Insert stores a key-value pair, last writer wins.
// Always returns nil for in-memory operations.
func (s *MemStore) Insert(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Get retrieves a value by key from the store.
// Returns the value and true if found, empty string and false otherwise.
func (s *MemStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.data[key]
	return val, ok
}

// Len returns the number of stored keys.
func (s *MemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.data)
}
