package store

import (
	"testing"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	t.Parallel()

	a := dbm.NewMemDB()
	b := dbm.NewMemDB()

	emptyA, err := Digest(a)
	require.NoError(t, err)
	emptyB, err := Digest(b)
	require.NoError(t, err)
	assert.Equal(t, emptyA, emptyB)

	// Insertion order does not matter.
	require.NoError(t, a.Set([]byte("x"), []byte("1")))
	require.NoError(t, a.Set([]byte("y"), []byte("2")))
	require.NoError(t, b.Set([]byte("y"), []byte("2")))
	require.NoError(t, b.Set([]byte("x"), []byte("1")))

	da, err := Digest(a)
	require.NoError(t, err)
	db, err := Digest(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
	assert.NotEqual(t, emptyA, da)

	// Key/value boundaries are part of the digest.
	c := dbm.NewMemDB()
	require.NoError(t, c.Set([]byte("x1"), []byte("")))
	require.NoError(t, c.Set([]byte("y"), []byte("2")))
	dc, err := Digest(c)
	require.NoError(t, err)
	assert.NotEqual(t, da, dc)
}

func TestPrefixEnd(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte("peer0"), PrefixEnd([]byte("peer/")))
	assert.Equal(t, []byte{0x02}, PrefixEnd([]byte{0x01, 0xff}))
	assert.Nil(t, PrefixEnd([]byte{0xff, 0xff}))
	assert.Nil(t, PrefixEnd(nil))
}
