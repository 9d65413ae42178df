package redis

import (
	"context"
	"encoding/hex"
	"errors"

	"github.com/gabapcia/utxoindex/internal/unspent"

	"github.com/redis/go-redis/v9"
)

// storeKey maps a keyspace and a binary key onto a Redis key. The key is
// hex-encoded so arbitrary bytes never collide with the separator.
//
// Format: "{keyspace}:{hex(key)}"
func storeKey(keyspace string, key []byte) string {
	return keyspace + ":" + hex.EncodeToString(key)
}

// Get implements unspent.Store with a plain GET. A missing key (redis.Nil)
// is reported as found=false.
func (c *client) Get(ctx context.Context, keyspace string, key []byte) ([]byte, bool, error) {
	value, err := c.conn.Get(ctx, storeKey(keyspace, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return value, true, nil
}

// Set implements unspent.Store with a plain SET and no expiration.
func (c *client) Set(ctx context.Context, keyspace string, key, value []byte) error {
	return c.conn.Set(ctx, storeKey(keyspace, key), value, 0).Err()
}

// Compile-time assertion to ensure *client satisfies the unspent.Store interface.
var _ unspent.Store = new(client)
