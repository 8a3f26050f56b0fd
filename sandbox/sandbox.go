// Package sandbox replays packet receipt against application state without committing
// any of its effects.
package sandbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/StreamDefi/precrime/store"
	"github.com/StreamDefi/precrime/types"
)

var (
	// ErrNilReceiver is returned when a Sandbox is built without a receiver.
	ErrNilReceiver = errors.New("sandbox was created without a receiver")

	// ErrNilPeers is returned when a Sandbox is built without a peer checker.
	ErrNilPeers = errors.New("sandbox was created without a peer checker")

	// ErrNilState is returned when a Sandbox is built without application state.
	ErrNilState = errors.New("sandbox was created without application state")
)

// Receiver is the application's message receipt entry point. It must only touch state
// through the store it is handed.
type Receiver interface {
	LzReceive(ctx context.Context, state store.KVStore, packet types.InboundPacket) ([]byte, error)
}

// ReceiverFunc adapts a function to a Receiver.
type ReceiverFunc func(ctx context.Context, state store.KVStore, packet types.InboundPacket) ([]byte, error)

// LzReceive implements Receiver.
func (f ReceiverFunc) LzReceive(ctx context.Context, state store.KVStore, packet types.InboundPacket) ([]byte, error) {
	return f(ctx, state, packet)
}

// PeerChecker answers whether a sender is trusted on a source chain.
type PeerChecker interface {
	Lookup(eid types.EID, peer common.Hash) (bool, error)
}

// PanicError is the error recorded when a receiver panics.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("receiver panicked: %v", e.Value)
}

// Sandbox runs batches of packets through a Receiver.
type Sandbox struct {
	localEid types.EID
	receiver Receiver
	peers    PeerChecker
	state    store.KVStore
}

// New creates a sandbox for the chain identified by localEid.
func New(localEid types.EID, receiver Receiver, peers PeerChecker, state store.KVStore) (*Sandbox, error) {
	if receiver == nil {
		return nil, ErrNilReceiver
	}
	if peers == nil {
		return nil, ErrNilPeers
	}
	if state == nil {
		return nil, ErrNilState
	}

	return &Sandbox{
		localEid: localEid,
		receiver: receiver,
		peers:    peers,
		state:    state,
	}, nil
}

// LocalEid returns the eid of the chain the sandbox simulates.
func (s *Sandbox) LocalEid() types.EID {
	return s.localEid
}

// SimulateBatch simulates packets in order and returns one outcome per packet.
//
// All packets share a single write overlay, so a packet observes the effects of the
// successful packets before it. A failed packet only loses its own writes. The overlay
// is discarded before returning, whatever happened.
//
// A packet failure never aborts the batch. Cancellation of ctx, or a receiver error
// wrapping it, does: the batch is then reported as incomplete and no outcomes are
// returned.
func (s *Sandbox) SimulateBatch(ctx context.Context, packets []types.InboundPacket) ([]types.SimulationOutcome, error) {
	batch := store.NewCacheStore(s.state)
	defer batch.Discard()

	outcomes := make([]types.SimulationOutcome, 0, len(packets))
	for i, packet := range packets {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("simulation aborted before packet %d: %w", i, err)
		}

		outcome, err := s.simulatePacket(ctx, batch, packet)
		if err != nil {
			return nil, fmt.Errorf("simulation aborted at packet %d: %w", i, err)
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (s *Sandbox) simulatePacket(
	ctx context.Context, batch *store.CacheStore, packet types.InboundPacket,
) (types.SimulationOutcome, error) {
	trusted, err := s.peers.Lookup(packet.Origin.SrcEid, packet.Origin.Sender)
	if err != nil {
		return types.SimulationOutcome{}, err
	}
	if !trusted {
		return types.NewFailureOutcome(packet.GUID, UntrustedPeerReason(packet.Origin.SrcEid, packet.Origin.Sender)), nil
	}

	if packet.DstEid != s.localEid {
		return types.NewFailureOutcome(packet.GUID, WrongDestinationReason(s.localEid, packet.DstEid)), nil
	}

	frame := store.NewCacheStore(batch)
	returnData, err := s.invoke(ctx, frame, packet)
	if err != nil {
		if isInfrastructureError(err) {
			return types.SimulationOutcome{}, err
		}

		frame.Discard()

		return types.NewFailureOutcome(packet.GUID, RevertReason(err)), nil
	}

	if err := frame.Write(); err != nil {
		return types.SimulationOutcome{}, err
	}

	return types.NewSuccessOutcome(packet.GUID, returnData), nil
}

func (s *Sandbox) invoke(ctx context.Context, frame store.KVStore, packet types.InboundPacket) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, &PanicError{Value: r}
		}
	}()

	// receivers never share memory with the caller's batch
	return s.receiver.LzReceive(ctx, frame, packet.Clone())
}

func isInfrastructureError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
