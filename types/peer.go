package types //nolint:revive

import "github.com/ethereum/go-ethereum/common"

// PeerEntry binds a source chain to the sender identity trusted on it.
type PeerEntry struct {
	Eid  EID         `json:"eid"`
	Peer common.Hash `json:"peer"`
}

// AddressToPeer left pads an EVM address to the 32 byte peer representation.
func AddressToPeer(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}

// PreCrimeLink is the association between a guarded application and its judge.
type PreCrimeLink struct {
	OApp     common.Address `json:"oApp"`
	PreCrime common.Address `json:"preCrime"`
}
