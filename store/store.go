// Package store provides the key/value state an application reads and mutates when it
// receives a packet, plus the write overlay used to run that logic without committing.
package store

import (
	"errors"

	dbm "github.com/cometbft/cometbft-db"
)

var (
	// ErrKeyEmpty is returned when a nil or empty key is used.
	ErrKeyEmpty = errors.New("key cannot be empty")

	// ErrValueNil is returned when a nil value is written.
	ErrValueNil = errors.New("value cannot be nil")
)

// KVStore is the state surface handed to an application during packet receipt.
//
// A dbm.DB satisfies it directly.
type KVStore interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	Set(key, value []byte) error
	Delete(key []byte) error
}

var _ KVStore = (dbm.DB)(nil)

// PrefixEnd returns the smallest key strictly greater than every key starting with
// prefix, or nil when no such key exists.
func PrefixEnd(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}

	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}

	return nil
}
