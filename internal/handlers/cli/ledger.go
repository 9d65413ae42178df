package cli

import (
	"context"
	"fmt"
	"math"

	"github.com/gabapcia/utxoindex/internal/ledger"

	"github.com/urfave/cli/v3"
)

// errIndexOutOfRange is returned when --index does not fit an output index.
var errIndexOutOfRange = fmt.Errorf("index must be at most %d", uint64(math.MaxUint32))

func addressFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "address",
		Usage:    "Wallet address the outputs belong to",
		Required: true,
	}
}

func pointerFlags() []cli.Flag {
	return []cli.Flag{
		addressFlag(),
		&cli.StringFlag{
			Name:     "txid",
			Usage:    "Transaction id, 64 hex characters",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "index",
			Usage:    "Output index within the transaction",
			Required: true,
		},
	}
}

func pointerRequest(c *cli.Command) (ledger.PointerRequest, error) {
	index := c.Uint64("index")
	if index > math.MaxUint32 {
		return ledger.PointerRequest{}, errIndexOutOfRange
	}

	return ledger.PointerRequest{
		Address: c.String("address"),
		TxID:    c.String("txid"),
		Index:   uint32(index),
	}, nil
}

// listUnspentCommand prints the outputs recorded for an address, one
// "txid:index amount" line each, oldest first.
//
// Usage example:
//
//	utxoindex list --address 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa
func listUnspentCommand(newLedger LedgerFactory) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "Print the unspent outputs recorded for a wallet address.",
		Usage:       "Lists unspent outputs in insertion order.",
		Flags:       []cli.Flag{addressFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			entries, err := newLedger(c.Bool("serialized")).ListUnspent(ctx, c.String("address"))
			if err != nil {
				return err
			}

			w := c.Root().Writer
			for _, e := range entries {
				if _, err := fmt.Fprintf(w, "%s %d\n", e.Pointer, e.Amount); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// addOutputCommand records a newly observed output.
//
// Usage example:
//
//	utxoindex add --address 1A1z... --txid 4a5e... --index 0 --amount 5000000000
func addOutputCommand(newLedger LedgerFactory) *cli.Command {
	return &cli.Command{
		Name:        "add",
		Description: "Record a newly observed output for a wallet address.",
		Usage:       "Appends an output. Must provide address, txid, index and amount.",
		Flags: append(pointerFlags(), &cli.Uint64Flag{
			Name:     "amount",
			Usage:    "Output value in base units",
			Required: true,
		}),
		Action: func(ctx context.Context, c *cli.Command) error {
			req, err := pointerRequest(c)
			if err != nil {
				return err
			}

			return newLedger(c.Bool("serialized")).RecordOutput(ctx, ledger.OutputRequest{
				PointerRequest: req,
				Amount:         c.Uint64("amount"),
			})
		},
	}
}

// removeOutputCommand drops a spent output. Unknown outputs are ignored.
//
// Usage example:
//
//	utxoindex remove --address 1A1z... --txid 4a5e... --index 0
func removeOutputCommand(newLedger LedgerFactory) *cli.Command {
	return &cli.Command{
		Name:        "remove",
		Description: "Drop a spent output from a wallet address.",
		Usage:       "Removes the first matching output. Must provide address, txid and index.",
		Flags:       pointerFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			req, err := pointerRequest(c)
			if err != nil {
				return err
			}

			return newLedger(c.Bool("serialized")).SpendOutput(ctx, req)
		},
	}
}
