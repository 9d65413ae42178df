package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/utxoindex/internal/config"
	"github.com/gabapcia/utxoindex/internal/handlers/cli"
	"github.com/gabapcia/utxoindex/internal/infra/storage/leveldb"
	"github.com/gabapcia/utxoindex/internal/infra/storage/memory"
	"github.com/gabapcia/utxoindex/internal/infra/storage/redis"
	"github.com/gabapcia/utxoindex/internal/ledger"
	"github.com/gabapcia/utxoindex/internal/pkg/logger"
	"github.com/gabapcia/utxoindex/internal/pkg/telemetry"
	"github.com/gabapcia/utxoindex/internal/unspent"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.Telemetry.Enabled {
		shutdown, initErr := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if initErr != nil {
			return fmt.Errorf("init telemetry: %w", initErr)
		}
		defer func() {
			err = errors.Join(err, shutdown(context.WithoutCancel(ctx)))
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	store, closeStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	defer func() {
		err = errors.Join(err, closeStore())
	}()

	return cli.Run(ctx, func(serialized bool) ledger.Service {
		if serialized {
			return ledger.New(unspent.NewSerialized(store))
		}
		return ledger.New(unspent.New(store))
	})
}

// openStore connects the configured backend and returns it with its close
// function.
func openStore(ctx context.Context, cfg config.Store) (unspent.Store, func() error, error) {
	switch cfg.Driver {
	case config.DriverRedis:
		c, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	case config.DriverMemory:
		return memory.New(), func() error { return nil }, nil
	default:
		c, err := leveldb.Open(ctx, cfg.LevelDBPath)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	}
}
