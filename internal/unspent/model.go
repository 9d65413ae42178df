package unspent

import (
	"encoding/hex"
	"fmt"
)

// TxIDSize is the length in bytes of a transaction identifier.
const TxIDSize = 32

// MaxCoin is the largest amount, in base units, an output may carry.
const MaxCoin Coin = 1_000_000_000_000_000_000

// Address identifies a wallet destination. It is treated as an opaque byte
// string and only ever used as an index key.
type Address string

// TxID is the identifier of the transaction that created an output.
type TxID [TxIDSize]byte

// ParseTxID decodes a hex-encoded transaction identifier.
func ParseTxID(s string) (TxID, error) {
	var id TxID

	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("invalid transaction id: %w", err)
	}

	if len(b) != TxIDSize {
		return id, fmt.Errorf("invalid transaction id: expected %d bytes, got %d", TxIDSize, len(b))
	}

	copy(id[:], b)
	return id, nil
}

// String returns the hex encoding of the transaction identifier.
func (id TxID) String() string {
	return hex.EncodeToString(id[:])
}

// OutputPointer locates a single transaction output: the transaction that
// created it plus the output's position inside that transaction.
type OutputPointer struct {
	TxID  TxID
	Index uint32
}

// String renders the pointer as "<txid>:<index>".
func (p OutputPointer) String() string {
	return fmt.Sprintf("%s:%d", p.TxID, p.Index)
}

// Coin is an amount of base units held by an output. The index carries it
// alongside the pointer but never sums or compares it.
type Coin uint64

// Entry is one unspent output recorded for an address.
type Entry struct {
	Pointer OutputPointer
	Amount  Coin
}
