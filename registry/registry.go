// Package registry keeps the trusted peer of every source chain an application accepts
// messages from.
package registry

import (
	"encoding/binary"
	"fmt"
	"sync"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/ethereum/go-ethereum/common"

	"github.com/StreamDefi/precrime/store"
	"github.com/StreamDefi/precrime/types"
)

var peerPrefix = []byte("peer/")

// Registry maps a source eid to the single sender identity trusted on it. Lookups are
// default deny. Writes are single atomic database operations.
type Registry struct {
	mu sync.RWMutex
	db dbm.DB
}

// New returns a registry persisting its entries in db.
func New(db dbm.DB) *Registry {
	return &Registry{db: db}
}

func peerKey(eid types.EID) []byte {
	key := make([]byte, len(peerPrefix)+4)
	copy(key, peerPrefix)
	binary.BigEndian.PutUint32(key[len(peerPrefix):], uint32(eid))

	return key
}

// Peer returns the trusted peer for eid, or the zero hash when none is registered.
func (r *Registry) Peer(eid types.EID) (common.Hash, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, err := r.db.Get(peerKey(eid))
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to read peer for eid %d: %w", eid, err)
	}
	if value == nil {
		return common.Hash{}, nil
	}

	return common.BytesToHash(value), nil
}

// Lookup reports whether peer is the trusted sender for eid.
func (r *Registry) Lookup(eid types.EID, peer common.Hash) (bool, error) {
	if peer == (common.Hash{}) {
		return false, nil
	}

	stored, err := r.Peer(eid)
	if err != nil {
		return false, err
	}

	return stored == peer, nil
}

// IsPeer is Lookup with read failures treated as untrusted.
func (r *Registry) IsPeer(eid types.EID, peer common.Hash) bool {
	ok, err := r.Lookup(eid, peer)

	return err == nil && ok
}

// SetPeer trusts peer for eid, replacing any previous peer. Setting the zero peer
// removes the entry. Re-registering the same pair is a no-op.
func (r *Registry) SetPeer(eid types.EID, peer common.Hash) error {
	if peer == (common.Hash{}) {
		return r.RemovePeer(eid)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.SetSync(peerKey(eid), peer.Bytes()); err != nil {
		return fmt.Errorf("failed to set peer for eid %d: %w", eid, err)
	}

	return nil
}

// RemovePeer drops the trusted peer for eid. Removing an absent entry is a no-op.
func (r *Registry) RemovePeer(eid types.EID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.DeleteSync(peerKey(eid)); err != nil {
		return fmt.Errorf("failed to remove peer for eid %d: %w", eid, err)
	}

	return nil
}

// Peers lists every registered entry ordered by eid.
func (r *Registry) Peers() ([]types.PeerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, err := r.db.Iterator(peerPrefix, store.PrefixEnd(peerPrefix))
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var entries []types.PeerEntry
	for ; it.Valid(); it.Next() {
		key := it.Key()
		if len(key) != len(peerPrefix)+4 {
			continue
		}
		entries = append(entries, types.PeerEntry{
			Eid:  types.EID(binary.BigEndian.Uint32(key[len(peerPrefix):])),
			Peer: common.BytesToHash(it.Value()),
		})
	}

	return entries, it.Error()
}
