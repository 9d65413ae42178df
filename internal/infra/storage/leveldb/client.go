// Package leveldb implements the storage contracts of the service on an
// embedded goleveldb database, for single-node deployments that need
// durability without an external server.
package leveldb

import (
	"context"

	"github.com/gabapcia/utxoindex/internal/pkg/logger"

	"github.com/syndtr/goleveldb/leveldb"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// options are used for every database opened by this package.
var options = opt.Options{
	Compression:            opt.NoCompression,
	BlockCacheCapacity:     32 * opt.MiB,
	WriteBuffer:            16 * opt.MiB,
	DisableSeeksCompaction: true,
}

// writeOptions force an fsync before Set returns so an acknowledged write
// survives a crash.
var writeOptions = &opt.WriteOptions{Sync: true}

type client struct {
	db *leveldb.DB
}

func (c *client) Close() error {
	return c.db.Close()
}

// Open opens, or creates, the database at path. A corrupted database is
// recovered in place before it is returned.
func Open(ctx context.Context, path string) (*client, error) {
	db, err := leveldb.OpenFile(path, &options)

	if lerrors.IsCorrupted(err) {
		logger.Warn(ctx, "leveldb corruption detected, recovering",
			"leveldb.path", path,
			"error", err,
		)

		db, err = leveldb.RecoverFile(path, &options)
		if err != nil {
			return nil, err
		}

		logger.Warn(ctx, "leveldb recovered from corruption", "leveldb.path", path)
	}

	if err != nil {
		return nil, err
	}

	return &client{
		db: db,
	}, nil
}

// OpenInMemory opens a database backed by memory only. Nothing survives
// Close; it exists for tests and throwaway runs.
func OpenInMemory() (*client, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), &options)
	if err != nil {
		return nil, err
	}

	return &client{
		db: db,
	}, nil
}
