package leveldb

import (
	"context"
	"errors"

	"github.com/gabapcia/utxoindex/internal/unspent"

	"github.com/syndtr/goleveldb/leveldb"
)

// keyspaceSeparator ends the keyspace prefix. Keyspace names are plain text,
// so a zero byte cannot appear inside them.
const keyspaceSeparator = 0x00

// storeKey prefixes key with its keyspace bucket.
//
// Format: keyspace | 0x00 | key
func storeKey(keyspace string, key []byte) []byte {
	k := make([]byte, 0, len(keyspace)+1+len(key))
	k = append(k, keyspace...)
	k = append(k, keyspaceSeparator)
	return append(k, key...)
}

// Get implements unspent.Store. leveldb.ErrNotFound is reported as found=false.
func (c *client) Get(_ context.Context, keyspace string, key []byte) ([]byte, bool, error) {
	value, err := c.db.Get(storeKey(keyspace, key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return value, true, nil
}

// Set implements unspent.Store with a synced single-key Put.
func (c *client) Set(_ context.Context, keyspace string, key, value []byte) error {
	return c.db.Put(storeKey(keyspace, key), value, writeOptions)
}

// Compile-time assertion to ensure *client satisfies the unspent.Store interface.
var _ unspent.Store = new(client)
