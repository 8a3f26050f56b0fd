// Package apptest implements a small counter application used to exercise the
// simulation sandbox.
package apptest

import (
	"context"
	"encoding/binary"
	"errors"
	"sync/atomic"

	"github.com/StreamDefi/precrime/store"
	"github.com/StreamDefi/precrime/types"
)

// Messages with special meaning to CounterApp. Any other message increments the
// counter.
const (
	MsgRevert = "revert"
	MsgPanic  = "panic"
)

// CountKey is where CounterApp keeps its counter.
var CountKey = []byte("count")

// ErrRejected is returned for MsgRevert packets.
var ErrRejected = errors.New("counter: rejected")

// RawRevert is an error carrying raw revert data.
type RawRevert struct {
	Data []byte
}

func (e *RawRevert) Error() string      { return "raw revert" }
func (e *RawRevert) RevertData() []byte { return e.Data }

// CounterApp increments a counter for each packet and returns the new value as 8 big
// endian bytes. Failing packets still write before failing, so tests can observe that
// their writes are dropped.
type CounterApp struct {
	calls atomic.Int64

	// Hook, when set, runs before anything else. A non-nil error is returned as is.
	Hook func(ctx context.Context, packet types.InboundPacket) error
}

// Calls returns how many times LzReceive was invoked.
func (a *CounterApp) Calls() int {
	return int(a.calls.Load())
}

// LzReceive implements sandbox.Receiver.
func (a *CounterApp) LzReceive(ctx context.Context, state store.KVStore, packet types.InboundPacket) ([]byte, error) {
	a.calls.Add(1)

	if a.Hook != nil {
		if err := a.Hook(ctx, packet); err != nil {
			return nil, err
		}
	}

	count, err := ReadCount(state)
	if err != nil {
		return nil, err
	}
	count++

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, count)
	if err := state.Set(CountKey, next); err != nil {
		return nil, err
	}
	if err := state.Set(append([]byte("msg/"), packet.GUID.Bytes()...), append([]byte{}, packet.Message...)); err != nil {
		return nil, err
	}

	switch string(packet.Message) {
	case MsgRevert:
		return nil, ErrRejected
	case MsgPanic:
		panic("counter: unexpected message")
	}

	return next, nil
}

// ReadCount returns the counter stored in state.
func ReadCount(state store.KVStore) (uint64, error) {
	raw, err := state.Get(CountKey)
	if err != nil {
		return 0, err
	}
	if len(raw) != 8 {
		return 0, nil
	}

	return binary.BigEndian.Uint64(raw), nil
}

// Count encodes n the way CounterApp returns it.
func Count(n uint64) []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, n)

	return out
}
