package redis

import (
	"context"
	"testing"
	"time"

	"github.com/gabapcia/utxoindex/internal/pkg/logger"
	"github.com/gabapcia/utxoindex/internal/unspent"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Keep test output quiet below error level
	_ = logger.Init("error")
}

func newTestClient(t *testing.T) (*client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	c, err := NewClient(t.Context(), mr.Addr(), "", "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}

func TestStoreKey(t *testing.T) {
	t.Run("hex encodes the binary key under the keyspace", func(t *testing.T) {
		assert.Equal(t, "index_unspent_transaction:00ff41", storeKey(unspent.Keyspace, []byte{0x00, 0xff, 'A'}))
	})
}

func TestNewClient(t *testing.T) {
	t.Run("connects to a reachable server", func(t *testing.T) {
		c, _ := newTestClient(t)
		assert.NotNil(t, c)
	})

	t.Run("fails when the server is unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		ctx, cancel := context.WithTimeout(t.Context(), 300*time.Millisecond)
		defer cancel()

		c, err := NewClient(ctx, addr, "", "", 0)
		assert.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestClient_GetSet(t *testing.T) {
	t.Run("reports a missing key as not found", func(t *testing.T) {
		c, _ := newTestClient(t)

		value, found, err := c.Get(t.Context(), unspent.Keyspace, []byte("addr"))
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, value)
	})

	t.Run("returns the bytes written by Set", func(t *testing.T) {
		c, mr := newTestClient(t)

		require.NoError(t, c.Set(t.Context(), unspent.Keyspace, []byte("addr"), []byte{0x01, 0x00}))

		value, found, err := c.Get(t.Context(), unspent.Keyspace, []byte("addr"))
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte{0x01, 0x00}, value)

		assert.Equal(t, time.Duration(0), mr.TTL(storeKey(unspent.Keyspace, []byte("addr"))))
	})

	t.Run("keeps keyspaces apart", func(t *testing.T) {
		c, _ := newTestClient(t)

		require.NoError(t, c.Set(t.Context(), "other", []byte("addr"), []byte("x")))

		_, found, err := c.Get(t.Context(), unspent.Keyspace, []byte("addr"))
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("passes server errors through", func(t *testing.T) {
		c, mr := newTestClient(t)
		mr.SetError("ERR injected failure")

		_, _, err := c.Get(t.Context(), unspent.Keyspace, []byte("addr"))
		assert.ErrorContains(t, err, "injected failure")

		err = c.Set(t.Context(), unspent.Keyspace, []byte("addr"), []byte("x"))
		assert.ErrorContains(t, err, "injected failure")
	})
}

func TestClient_BacksTheIndex(t *testing.T) {
	t.Run("persists entries across index instances", func(t *testing.T) {
		c, _ := newTestClient(t)
		entry := unspent.Entry{Pointer: unspent.OutputPointer{Index: 3}, Amount: 42}

		require.NoError(t, unspent.New(c).Add(t.Context(), "addr", entry))

		entries, err := unspent.New(c).Get(t.Context(), "addr")
		require.NoError(t, err)
		assert.Equal(t, []unspent.Entry{entry}, entries)
	})
}
