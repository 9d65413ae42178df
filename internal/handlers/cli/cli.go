package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/utxoindex/internal/ledger"
	"github.com/gabapcia/utxoindex/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

// LedgerFactory builds the ledger a command runs against. serialized reports
// whether the --serialized flag was set.
type LedgerFactory func(serialized bool) ledger.Service

// Run initializes and executes the utxoindex CLI application.
//
// It registers all available commands, including:
//
//   - `list`: Prints the unspent outputs of an address.
//   - `add`: Records a new output for an address.
//   - `remove`: Drops a spent output from an address.
//
// Every invocation logs under a fresh UUIDv7 `invocation.id`.
func Run(ctx context.Context, newLedger LedgerFactory) error {
	return newApp(newLedger, os.Stdout).Run(ctx, os.Args)
}

func newApp(newLedger LedgerFactory, w io.Writer) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "utxoindex",
		Description:           "Command-line interface for reading and updating the unspent-output index.",
		Usage:                 "utxoindex [command] [flags]",
		Writer:                w,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "serialized",
				Usage: "Lock each address for the duration of an operation. Locks live in this process only; since every invocation runs one command, concurrent invocations are not coordinated",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return logger.Derive(ctx, "invocation.id", uuid.Must(uuid.NewV7()).String()), nil
		},
		Commands: []*cli.Command{
			listUnspentCommand(newLedger),
			addOutputCommand(newLedger),
			removeOutputCommand(newLedger),
		},
	}
}
