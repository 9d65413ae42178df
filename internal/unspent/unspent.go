package unspent

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// load reads and decodes the sequence stored under key.
func (s *service) load(ctx context.Context, key []byte) ([]Entry, error) {
	value, found, err := s.store.Get(ctx, Keyspace, key)
	if err != nil {
		return nil, err
	}

	if !found {
		return []Entry{}, nil
	}

	entries, err := decodeEntries(value)
	if err != nil {
		return nil, err
	}

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("unspent.count", len(entries)))
	return entries, nil
}

// save encodes entries and writes them under key.
func (s *service) save(ctx context.Context, key []byte, entries []Entry) error {
	value, err := encodeEntries(entries)
	if err != nil {
		return err
	}

	return s.store.Set(ctx, Keyspace, key, value)
}

// Get returns the sequence recorded for addr.
func (s *service) Get(ctx context.Context, addr Address) (entries []Entry, err error) {
	ctx, done := s.startOperation(ctx, opGet, addr)
	defer func() { done(err) }()

	key, err := encodeAddress(addr)
	if err != nil {
		return nil, err
	}

	return s.load(ctx, key)
}

// Add appends entry to the sequence recorded for addr.
func (s *service) Add(ctx context.Context, addr Address, entry Entry) (err error) {
	ctx, done := s.startOperation(ctx, opAdd, addr)
	defer func() { done(err) }()

	key, err := encodeAddress(addr)
	if err != nil {
		return err
	}

	entries, err := s.load(ctx, key)
	if err != nil {
		return err
	}

	return s.save(ctx, key, append(entries, entry))
}

// Remove deletes the first entry for addr that matches pointer.
func (s *service) Remove(ctx context.Context, addr Address, pointer OutputPointer) (err error) {
	ctx, done := s.startOperation(ctx, opRemove, addr)
	defer func() { done(err) }()

	key, err := encodeAddress(addr)
	if err != nil {
		return err
	}

	entries, err := s.load(ctx, key)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(entries, func(e Entry) bool {
		return e.Pointer == pointer
	})
	if i >= 0 {
		entries = slices.Delete(entries, i, i+1)
	}

	return s.save(ctx, key, entries)
}
