package unspent

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// MaxAddressLength bounds the size of an address key.
	MaxAddressLength = 255

	// entriesFormatVersion is the leading byte of every encoded sequence.
	entriesFormatVersion byte = 0x01

	// entrySize is the encoded size of one Entry: txid | index (LE) | amount (LE).
	entrySize = TxIDSize + 4 + 8
)

var (
	// ErrSerialization is returned when an address or a sequence of entries
	// cannot be encoded before reaching the Store.
	ErrSerialization = errors.New("unspent: serialization failed")

	// ErrDeserialization is returned when a stored value cannot be decoded
	// into a sequence of entries. It signals corruption or a format mismatch
	// and is never collapsed into an empty result.
	ErrDeserialization = errors.New("unspent: deserialization failed")
)

// encodeAddress returns the canonical store key for addr.
func encodeAddress(addr Address) ([]byte, error) {
	switch {
	case len(addr) == 0:
		return nil, fmt.Errorf("%w: empty address", ErrSerialization)
	case len(addr) > MaxAddressLength:
		return nil, fmt.Errorf("%w: address is %d bytes, limit is %d", ErrSerialization, len(addr), MaxAddressLength)
	}

	return []byte(addr), nil
}

// encodeEntries serializes entries in order.
//
// Layout:
//
//	version (1 byte) | count (uvarint) | count * entry
func encodeEntries(entries []Entry) ([]byte, error) {
	buf := make([]byte, 0, 1+binary.MaxVarintLen64+len(entries)*entrySize)
	buf = append(buf, entriesFormatVersion)
	buf = binary.AppendUvarint(buf, uint64(len(entries)))

	for i, e := range entries {
		if e.Amount > MaxCoin {
			return nil, fmt.Errorf("%w: entry %d amount %d exceeds %d", ErrSerialization, i, e.Amount, MaxCoin)
		}

		buf = append(buf, e.Pointer.TxID[:]...)
		buf = binary.LittleEndian.AppendUint32(buf, e.Pointer.Index)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(e.Amount))
	}

	return buf, nil
}

// decodeEntries parses a value produced by encodeEntries.
func decodeEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrDeserialization)
	}

	if data[0] != entriesFormatVersion {
		return nil, fmt.Errorf("%w: unknown format version 0x%02x", ErrDeserialization, data[0])
	}
	data = data[1:]

	count, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, fmt.Errorf("%w: malformed entry count", ErrDeserialization)
	}
	data = data[n:]

	if count > uint64(len(data))/entrySize || uint64(len(data)) != count*entrySize {
		return nil, fmt.Errorf("%w: expected %d entries, have %d bytes", ErrDeserialization, count, len(data))
	}

	entries := make([]Entry, count)
	for i := range entries {
		rec := data[i*entrySize : (i+1)*entrySize]

		copy(entries[i].Pointer.TxID[:], rec[:TxIDSize])
		entries[i].Pointer.Index = binary.LittleEndian.Uint32(rec[TxIDSize:])
		entries[i].Amount = Coin(binary.LittleEndian.Uint64(rec[TxIDSize+4:]))

		if entries[i].Amount > MaxCoin {
			return nil, fmt.Errorf("%w: entry %d amount %d exceeds %d", ErrDeserialization, i, entries[i].Amount, MaxCoin)
		}
	}

	return entries, nil
}
