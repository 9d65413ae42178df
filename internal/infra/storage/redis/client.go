// Package redis implements the storage contracts of the service on top of
// Redis using go-redis.
package redis

import (
	"context"
	"time"

	"github.com/gabapcia/utxoindex/internal/pkg/logger"
	"github.com/gabapcia/utxoindex/internal/pkg/resilience/retry"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and verifies the connection with PING, retrying
// with backoff while the server is unreachable.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	r := retry.New(
		retry.WithAttempts(5),
		retry.WithDelay(200*time.Millisecond),
		retry.WithMaxDelay(2*time.Second),
		retry.WithOnRetry(func(attempt uint, err error) {
			logger.Warn(ctx, "redis ping failed",
				"redis.addr", addr,
				"attempt", attempt+1,
				"error", err,
			)
		}),
	)

	if err := r.Execute(ctx, func() error { return conn.Ping(ctx).Err() }); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn: conn,
	}, nil
}
