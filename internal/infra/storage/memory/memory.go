// Package memory provides a process-local implementation of the storage
// contracts. Nothing is persisted; it backs tests and the CLI's throwaway
// mode.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/gabapcia/utxoindex/internal/unspent"
)

type store struct {
	mu        sync.RWMutex
	keyspaces map[string]map[string][]byte
}

// New returns an empty store.
func New() *store {
	return &store{
		keyspaces: make(map[string]map[string][]byte),
	}
}

// Get implements unspent.Store. The returned slice is a copy.
func (s *store) Get(_ context.Context, keyspace string, key []byte) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.keyspaces[keyspace][string(key)]
	if !ok {
		return nil, false, nil
	}

	return slices.Clone(value), true, nil
}

// Set implements unspent.Store. value is copied before it is stored.
func (s *store) Set(_ context.Context, keyspace string, key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ks, ok := s.keyspaces[keyspace]
	if !ok {
		ks = make(map[string][]byte)
		s.keyspaces[keyspace] = ks
	}

	ks[string(key)] = slices.Clone(value)
	return nil
}

// Compile-time assertion to ensure *store satisfies the unspent.Store interface.
var _ unspent.Store = new(store)
