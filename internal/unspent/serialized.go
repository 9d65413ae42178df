package unspent

import (
	"context"
	"sync"
)

// addressLock is a mutex shared by every caller currently operating on one
// address. refs counts holders and waiters so idle locks can be dropped.
type addressLock struct {
	mu   sync.Mutex
	refs int
}

// addressLocks hands out one mutex per address.
type addressLocks struct {
	mu    sync.Mutex
	locks map[Address]*addressLock
}

func newAddressLocks() *addressLocks {
	return &addressLocks{locks: make(map[Address]*addressLock)}
}

// lock blocks until the caller holds addr exclusively and returns the
// matching unlock function.
func (l *addressLocks) lock(addr Address) func() {
	l.mu.Lock()
	al, ok := l.locks[addr]
	if !ok {
		al = new(addressLock)
		l.locks[addr] = al
	}
	al.refs++
	l.mu.Unlock()

	al.mu.Lock()

	return func() {
		al.mu.Unlock()

		l.mu.Lock()
		al.refs--
		if al.refs == 0 {
			delete(l.locks, addr)
		}
		l.mu.Unlock()
	}
}

// serializedService wraps service and runs every operation on an address
// under that address's lock, so Add and Remove never lose concurrent updates
// made through the same instance.
//
// The guarantee stops at the process boundary: other processes, or other
// instances sharing the Store, are not coordinated.
type serializedService struct {
	index *service
	locks *addressLocks
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*serializedService)(nil)

// NewSerialized creates an index with the same storage semantics as New but
// with per-address mutual exclusion across each read-modify-write.
func NewSerialized(store Store) *serializedService {
	return &serializedService{
		index: New(store),
		locks: newAddressLocks(),
	}
}

func (s *serializedService) Get(ctx context.Context, addr Address) ([]Entry, error) {
	unlock := s.locks.lock(addr)
	defer unlock()

	return s.index.Get(ctx, addr)
}

func (s *serializedService) Add(ctx context.Context, addr Address, entry Entry) error {
	unlock := s.locks.lock(addr)
	defer unlock()

	return s.index.Add(ctx, addr, entry)
}

func (s *serializedService) Remove(ctx context.Context, addr Address, pointer OutputPointer) error {
	unlock := s.locks.lock(addr)
	defer unlock()

	return s.index.Remove(ctx, addr, pointer)
}
