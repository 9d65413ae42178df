// Package ledger is the entry point wallet-facing code uses to read and
// update the unspent-output index. It validates raw requests, converts them
// into index types and delegates to an unspent.Service.
package ledger

import (
	"context"

	"github.com/gabapcia/utxoindex/internal/unspent"
)

// Service records and spends outputs for wallet addresses.
type Service interface {
	// ListUnspent returns the outputs recorded for address, oldest first.
	ListUnspent(ctx context.Context, address string) ([]unspent.Entry, error)

	// RecordOutput registers a newly observed output for its address.
	//
	// Returns an error wrapping validator.ErrValidationFailed if req is invalid.
	RecordOutput(ctx context.Context, req OutputRequest) error

	// SpendOutput drops the output referenced by req from its address.
	//
	// Returns an error wrapping validator.ErrValidationFailed if req is invalid.
	SpendOutput(ctx context.Context, req PointerRequest) error
}

// service is the concrete implementation of the Service interface.
type service struct {
	index unspent.Service
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a ledger service on top of the given index.
func New(index unspent.Service) *service {
	return &service{
		index: index,
	}
}
