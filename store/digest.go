package store

import (
	"encoding/binary"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Digest hashes the full contents of db in key order. Two databases with the same
// key/value pairs always produce the same digest.
func Digest(db dbm.DB) (common.Hash, error) {
	it, err := db.Iterator(nil, nil)
	if err != nil {
		return common.Hash{}, err
	}
	defer it.Close()

	h := crypto.NewKeccakState()
	var lenBuf [8]byte
	for ; it.Valid(); it.Next() {
		for _, b := range [][]byte{it.Key(), it.Value()} {
			binary.BigEndian.PutUint64(lenBuf[:], uint64(len(b)))
			h.Write(lenBuf[:])
			h.Write(b)
		}
	}
	if err := it.Error(); err != nil {
		return common.Hash{}, err
	}

	return common.BytesToHash(h.Sum(nil)), nil
}
