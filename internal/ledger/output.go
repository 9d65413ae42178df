package ledger

import (
	"context"

	"github.com/gabapcia/utxoindex/internal/pkg/logger"
	"github.com/gabapcia/utxoindex/internal/pkg/validator"
	"github.com/gabapcia/utxoindex/internal/unspent"
)

// addressRequest wraps a bare address for validation.
type addressRequest struct {
	Address string `validate:"required,maxbytes=255"`
}

// PointerRequest identifies an output by its transaction id (hex) and
// output index, scoped to the address that holds it.
type PointerRequest struct {
	Address string `validate:"required,maxbytes=255"`
	TxID    string `validate:"required,txid"`
	Index   uint32
}

// OutputRequest describes a newly observed output.
type OutputRequest struct {
	PointerRequest

	Amount uint64 `validate:"lte=1000000000000000000"`
}

// pointer converts an already validated req into an index pointer.
func (req PointerRequest) pointer() (unspent.OutputPointer, error) {
	txID, err := unspent.ParseTxID(req.TxID)
	if err != nil {
		return unspent.OutputPointer{}, err
	}

	return unspent.OutputPointer{TxID: txID, Index: req.Index}, nil
}

// ListUnspent returns the entries recorded for address.
func (s *service) ListUnspent(ctx context.Context, address string) ([]unspent.Entry, error) {
	if err := validator.Validate(addressRequest{Address: address}); err != nil {
		return nil, err
	}

	return s.index.Get(ctx, unspent.Address(address))
}

// RecordOutput validates req and appends it to the address's entries.
func (s *service) RecordOutput(ctx context.Context, req OutputRequest) error {
	if err := validator.Validate(req); err != nil {
		return err
	}

	pointer, err := req.pointer()
	if err != nil {
		return err
	}

	if err := s.index.Add(ctx, unspent.Address(req.Address), unspent.Entry{
		Pointer: pointer,
		Amount:  unspent.Coin(req.Amount),
	}); err != nil {
		return err
	}

	logger.Info(ctx, "output recorded",
		"output.pointer", pointer.String(),
		"output.amount", req.Amount,
	)
	return nil
}

// SpendOutput validates req and removes the first matching entry.
func (s *service) SpendOutput(ctx context.Context, req PointerRequest) error {
	if err := validator.Validate(req); err != nil {
		return err
	}

	pointer, err := req.pointer()
	if err != nil {
		return err
	}

	if err := s.index.Remove(ctx, unspent.Address(req.Address), pointer); err != nil {
		return err
	}

	logger.Info(ctx, "output spent", "output.pointer", pointer.String())
	return nil
}
