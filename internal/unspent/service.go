// Package unspent maintains the unspent-output index: for every wallet
// address, the ordered sequence of outputs it controls and has not spent.
//
// The index owns the Keyspace inside an injected Store and keeps one value per
// address holding the whole sequence. Reads of an address that was never
// written return an empty sequence; a value that cannot be decoded is reported
// as ErrDeserialization so corruption is never mistaken for "no outputs".
//
// Add and Remove are read-modify-write sequences made of two independent Store
// calls. The Service returned by New adds no locking of its own: two callers
// mutating the same address concurrently can both read the same prior value,
// and the last write wins, silently dropping the other update. Callers that
// need mutual exclusion either provide it themselves or use NewSerialized,
// which serializes operations per address within a single process.
//
// The index does not deduplicate. Adding the same pointer twice yields two
// entries and Remove deletes only the first match. Whether duplicate pointers
// are a legitimate scenario is still an open product question.
package unspent

import (
	"context"
	"encoding/hex"

	"github.com/gabapcia/utxoindex/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName scopes the spans and metrics emitted by this package.
const instrumentationName = "github.com/gabapcia/utxoindex/internal/unspent"

// Operation names used for spans, metrics and log fields.
const (
	opGet    = "get"
	opAdd    = "add"
	opRemove = "remove"
)

// Service exposes the unspent-output index to wallet logic such as balance
// queries, coin selection and the chain synchronizer.
type Service interface {
	// Get returns the unspent entries recorded for addr, in insertion order.
	//
	// An address with no recorded activity yields an empty slice and no error.
	// Returns ErrSerialization if addr cannot be encoded, ErrDeserialization if
	// the stored value is malformed, or the Store error unchanged.
	Get(ctx context.Context, addr Address) ([]Entry, error)

	// Add appends entry to the sequence recorded for addr and persists it.
	//
	// No uniqueness check is made on entry.Pointer.
	Add(ctx context.Context, addr Address, entry Entry) error

	// Remove deletes the first entry recorded for addr whose pointer equals
	// pointer, keeping the order of the rest, and persists the result.
	//
	// When no entry matches, the unchanged sequence is still written back.
	Remove(ctx context.Context, addr Address, pointer OutputPointer) error
}

// service is the lock-free Service implementation backed by a Store.
type service struct {
	store Store

	tracer     trace.Tracer
	operations metric.Int64Counter
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates an index bound to Keyspace inside store. It performs no I/O.
//
// The store is shared, not owned: closing it is the caller's responsibility.
// See the package documentation for the lost-update limitation of this mode.
func New(store Store) *service {
	operations, err := otel.Meter(instrumentationName).Int64Counter(
		"unspent.operations",
		metric.WithDescription("Unspent index operations by name and outcome."),
	)
	if err != nil {
		operations = noop.Int64Counter{}
	}

	return &service{
		store:      store,
		tracer:     otel.Tracer(instrumentationName),
		operations: operations,
	}
}

// startOperation opens a span for op and returns a function that must be
// called with the operation's final error to close it.
func (s *service) startOperation(ctx context.Context, op string, addr Address) (context.Context, func(error)) {
	ctx, span := s.tracer.Start(ctx, "unspent."+op,
		trace.WithAttributes(attribute.Int("address.length", len(addr))),
	)

	return ctx, func(err error) {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			logger.Error(ctx, "unspent index operation failed",
				"operation", op,
				"address", hex.EncodeToString([]byte(addr)),
				"error", err,
			)
		}

		s.operations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", op),
			attribute.String("outcome", outcome),
		))
		span.End()
	}
}
