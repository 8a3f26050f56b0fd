package registry

import (
	"testing"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StreamDefi/precrime/store"
	"github.com/StreamDefi/precrime/types"
)

var (
	peerA = common.HexToHash("0xaa")
	peerB = common.HexToHash("0xbb")
)

func TestRegistry_DefaultDeny(t *testing.T) {
	t.Parallel()

	r := New(dbm.NewMemDB())

	assert.False(t, r.IsPeer(1, peerA))
	assert.False(t, r.IsPeer(0, common.Hash{}))

	peer, err := r.Peer(1)
	require.NoError(t, err)
	assert.Equal(t, common.Hash{}, peer)
}

func TestRegistry_SetPeer(t *testing.T) {
	t.Parallel()

	r := New(dbm.NewMemDB())

	require.NoError(t, r.SetPeer(1, peerA))
	assert.True(t, r.IsPeer(1, peerA))
	assert.False(t, r.IsPeer(1, peerB))
	assert.False(t, r.IsPeer(2, peerA))

	// Double registration has no effect.
	require.NoError(t, r.SetPeer(1, peerA))
	assert.True(t, r.IsPeer(1, peerA))

	entries, err := r.Peers()
	require.NoError(t, err)
	assert.Equal(t, []types.PeerEntry{{Eid: 1, Peer: peerA}}, entries)

	// A new peer for the same eid replaces the old one.
	require.NoError(t, r.SetPeer(1, peerB))
	assert.False(t, r.IsPeer(1, peerA))
	assert.True(t, r.IsPeer(1, peerB))
}

func TestRegistry_RemovePeer(t *testing.T) {
	t.Parallel()

	r := New(dbm.NewMemDB())
	require.NoError(t, r.SetPeer(1, peerA))
	require.NoError(t, r.SetPeer(2, peerB))

	require.NoError(t, r.SetPeer(1, common.Hash{}))
	assert.False(t, r.IsPeer(1, peerA))

	require.NoError(t, r.RemovePeer(2))
	assert.False(t, r.IsPeer(2, peerB))

	// Removing again is a no-op.
	require.NoError(t, r.RemovePeer(2))

	entries, err := r.Peers()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRegistry_PeersOrderedByEid(t *testing.T) {
	t.Parallel()

	db := dbm.NewMemDB()
	r := New(db)
	require.NoError(t, r.SetPeer(30110, peerB))
	require.NoError(t, r.SetPeer(1, peerA))
	require.NoError(t, r.SetPeer(256, peerA))

	// Unrelated keys sharing the database are ignored.
	require.NoError(t, db.Set([]byte("state/x"), []byte("1")))

	entries, err := r.Peers()
	require.NoError(t, err)
	assert.Equal(t, []types.PeerEntry{
		{Eid: 1, Peer: peerA},
		{Eid: 256, Peer: peerA},
		{Eid: 30110, Peer: peerB},
	}, entries)
}

func TestRegistry_LookupIsReadOnly(t *testing.T) {
	t.Parallel()

	db := dbm.NewMemDB()
	r := New(db)
	require.NoError(t, r.SetPeer(1, peerA))

	before, err := store.Digest(db)
	require.NoError(t, err)

	for range 3 {
		ok, err := r.Lookup(1, peerA)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	after, err := store.Digest(db)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
