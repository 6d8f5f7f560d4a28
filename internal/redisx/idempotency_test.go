package redisx

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeys(t *testing.T) (*CheckoutKeys, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := New(mr.Addr())
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, Ping(context.Background(), rdb))
	return NewCheckoutKeys(rdb), mr
}

func TestLookupMissing(t *testing.T) {
	k, _ := newKeys(t)
	id, ok, err := k.Lookup(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestRememberThenLookup(t *testing.T) {
	k, mr := newKeys(t)
	ctx := context.Background()

	stored, err := k.Remember(ctx, "k1", "ABCD1234")
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = k.Remember(ctx, "k1", "FFFF0000")
	require.NoError(t, err)
	assert.False(t, stored, "first writer wins")

	id, ok, err := k.Lookup(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ABCD1234", id)

	assert.Equal(t, TTLIdempotency, mr.TTL("idem:checkout:k1"))
	mr.FastForward(TTLIdempotency + time.Second)
	_, ok, err = k.Lookup(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLookupServerDown(t *testing.T) {
	k, mr := newKeys(t)
	mr.Close()
	_, _, err := k.Lookup(context.Background(), "k")
	assert.Error(t, err)
}
