package unspent

import "context"

// Keyspace is the namespace the index owns inside the Store. No other
// component may write keys under it.
const Keyspace = "index_unspent_transaction"

// Store is the key-value engine the index persists into.
//
// Implementations must give single-key atomicity: a Get never observes a
// partially applied Set, and once Set returns nil the value survives a
// process restart (for durable engines). No cross-key transactions are
// required.
type Store interface {
	// Get returns the value stored under key inside keyspace.
	//
	// found is false, with a nil error, when the key has never been set.
	Get(ctx context.Context, keyspace string, key []byte) (value []byte, found bool, err error)

	// Set replaces the value stored under key inside keyspace.
	Set(ctx context.Context, keyspace string, key, value []byte) error
}
