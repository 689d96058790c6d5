// Package store provides the concrete key-value stores of confstore:
// NamedStore, an in-memory named map, and InstrumentedStore, a metrics
// wrapper usable around any kv.Store.
package store

import (
	"sync"

	"github.com/heysubinoy/confstore/pkg/kv"
)

// NamedStore is an in-memory implementation of the kv.Store interface that
// carries a name. It uses a map protected by a RWMutex for thread-safe
// operations. The name is set at construction and only ever replaced by
// Deserialize, which rebuilds the whole store; the mapping is always
// non-nil and starts empty.
type NamedStore struct {
	name string

	mu     sync.RWMutex
	values map[string]string
}

// Compile-time checks on the capabilities NamedStore provides.
var (
	_ kv.Store        = (*NamedStore)(nil)
	_ kv.Serializable = (*NamedStore)(nil)
)

// New creates a NamedStore with the given name and an empty mapping.
// Any name is accepted, including the empty string.
func New(name string) *NamedStore {
	return &NamedStore{
		name:   name,
		values: make(map[string]string),
	}
}

// Name returns the name the store was constructed with.
func (s *NamedStore) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.name
}

// Get retrieves a value by key from the store.
// Returns the value and true if found, empty string and false otherwise.
func (s *NamedStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.values[key]
	return val, ok
}

// Set stores a key-value pair in the store.
// Always returns nil for in-memory operations.
func (s *NamedStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Delete removes a key from the store.
// Always returns nil, even if the key doesn't exist.
func (s *NamedStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Len returns the number of keys currently stored.
func (s *NamedStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}
