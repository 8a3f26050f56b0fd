// Package precrime simulates the receipt of cross-chain packets by an application
// without committing any state, and hands the encoded outcomes to a judge.
package precrime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"

	"github.com/StreamDefi/precrime/codec"
	"github.com/StreamDefi/precrime/registry"
	"github.com/StreamDefi/precrime/sandbox"
	"github.com/StreamDefi/precrime/sdk"
	"github.com/StreamDefi/precrime/store"
	"github.com/StreamDefi/precrime/types"
)

type stage string

const (
	stageIdle       stage = "idle"
	stageValidating stage = "validating"
	stageSimulating stage = "simulating"
	stageEncoding   stage = "encoding"
	stageSignaling  stage = "signaling"
)

// PreCrimeSetEvent is published every time the associated judge is set.
type PreCrimeSetEvent struct {
	PreCrime common.Address
}

// Invoker is the capability LzReceiveAndRevert demands from its caller. Only Simulate
// can produce one the simulator accepts. The zero value is always rejected.
type Invoker struct {
	simulator *Simulator
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithMetrics makes the simulator record into m.
func WithMetrics(m *Metrics) Option {
	return func(s *Simulator) {
		s.metrics = m
	}
}

// Simulator is the public surface of the mechanism for one application on one chain.
type Simulator struct {
	localEid types.EID
	oApp     common.Address
	peers    *registry.Registry
	sandbox  *sandbox.Sandbox
	metrics  *Metrics

	mu       sync.RWMutex
	owner    common.Address
	preCrime common.Address

	// adminMu serializes owner-gated writes, so an ownership transfer cannot land
	// between a check and its write. It also orders judge updates with their events.
	adminMu      sync.Mutex
	preCrimeFeed event.Feed
	scope        event.SubscriptionScope
}

// NewSimulator creates a simulator for the application described by cfg. The receiver
// runs against state, which is never modified by a simulation.
func NewSimulator(
	cfg Config, receiver sandbox.Receiver, peers *registry.Registry, state store.KVStore, opts ...Option,
) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if peers == nil {
		return nil, ErrNilRegistry
	}

	sb, err := sandbox.New(cfg.LocalEid, receiver, peers, state)
	if err != nil {
		return nil, err
	}

	s := &Simulator{
		localEid: cfg.LocalEid,
		oApp:     cfg.OApp,
		peers:    peers,
		sandbox:  sb,
		owner:    cfg.Owner,
		preCrime: cfg.PreCrime,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// LocalEid returns the endpoint id of the chain the simulator runs on.
func (s *Simulator) LocalEid() types.EID {
	return s.localEid
}

// OApp returns the application guarded by this simulator.
func (s *Simulator) OApp() common.Address {
	return s.oApp
}

// Owner returns the administrator.
func (s *Simulator) Owner() common.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.owner
}

// PreCrime returns the associated judge, the zero address if none is set.
func (s *Simulator) PreCrime() common.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.preCrime
}

// Link returns the application and judge association.
func (s *Simulator) Link() types.PreCrimeLink {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return types.PreCrimeLink{OApp: s.oApp, PreCrime: s.preCrime}
}

// SetPreCrime associates a judge with the application. Only the owner may call it.
// Every successful call publishes exactly one PreCrimeSetEvent, even when the address
// does not change.
func (s *Simulator) SetPreCrime(caller, preCrime common.Address) error {
	s.adminMu.Lock()
	defer s.adminMu.Unlock()

	s.mu.Lock()
	if caller != s.owner {
		owner := s.owner
		s.mu.Unlock()

		return NewUnauthorizedError(caller, owner)
	}
	s.preCrime = preCrime
	s.mu.Unlock()

	s.metrics.observePreCrimeUpdate()
	s.preCrimeFeed.Send(PreCrimeSetEvent{PreCrime: preCrime})

	return nil
}

// SubscribePreCrimeSet delivers a PreCrimeSetEvent to ch for every judge update. Sends
// block until ch accepts the event, so subscribers must keep draining it.
func (s *Simulator) SubscribePreCrimeSet(ch chan<- PreCrimeSetEvent) event.Subscription {
	return s.scope.Track(s.preCrimeFeed.Subscribe(ch))
}

// IsPeer reports whether peer is the trusted sender on eid.
func (s *Simulator) IsPeer(eid types.EID, peer common.Hash) bool {
	return s.peers.IsPeer(eid, peer)
}

// SetPeer registers peer as the trusted sender on eid. The zero peer removes the entry.
// Only the owner may call it.
func (s *Simulator) SetPeer(caller common.Address, eid types.EID, peer common.Hash) error {
	s.adminMu.Lock()
	defer s.adminMu.Unlock()

	if err := s.checkOwner(caller); err != nil {
		return err
	}

	return s.peers.SetPeer(eid, peer)
}

// TransferOwnership hands administration to newOwner. Only the owner may call it.
func (s *Simulator) TransferOwnership(caller, newOwner common.Address) error {
	if newOwner == (common.Address{}) {
		return ErrInvalidOwner
	}

	s.adminMu.Lock()
	defer s.adminMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.owner {
		return NewUnauthorizedError(caller, s.owner)
	}
	s.owner = newOwner

	return nil
}

func (s *Simulator) checkOwner(caller common.Address) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if caller != s.owner {
		return NewUnauthorizedError(caller, s.owner)
	}

	return nil
}

// Simulate runs packets through the application and returns the encoded outcomes. It
// is the only way to obtain an Invoker accepted by LzReceiveAndRevert.
func (s *Simulator) Simulate(ctx context.Context, packets []types.InboundPacket) ([]byte, error) {
	return s.LzReceiveAndRevert(ctx, Invoker{simulator: s}, packets)
}

// LzReceiveAndRevert simulates packets in order and returns the encoded outcomes. No
// state is committed, whatever the outcomes are.
//
// inv must come from this simulator's Simulate, otherwise ErrOnlySelf is returned and
// nothing is simulated. A structurally invalid packet rejects the whole batch with an
// *InvalidPacketError. Packet level failures, including untrusted senders, are part of
// the result. Only an infrastructure failure, such as cancellation of ctx, yields an
// error once simulation has started.
func (s *Simulator) LzReceiveAndRevert(
	ctx context.Context, inv Invoker, packets []types.InboundPacket,
) ([]byte, error) {
	lggr := sdk.LoggerFrom(ctx)

	if inv.simulator != s {
		s.metrics.observeRequest(resultRejected)
		lggr.Warnf("rejected lzReceiveAndRevert call outside of Simulate")

		return nil, ErrOnlySelf
	}
	defer lggr.Debugf("simulation stage: %s", stageIdle)

	lggr.Debugf("simulation stage: %s (%d packets, msg value %s)", stageValidating, len(packets), types.TotalValue(packets))
	for i, packet := range packets {
		if err := packet.Validate(); err != nil {
			s.metrics.observeRequest(resultInvalid)

			return nil, NewInvalidPacketError(i, err)
		}
	}

	lggr.Debugf("simulation stage: %s", stageSimulating)
	start := time.Now()
	outcomes, err := s.sandbox.SimulateBatch(ctx, packets)
	if err != nil {
		s.metrics.observeRequest(resultAborted)
		lggr.Warnf("simulation did not complete: %v", err)

		return nil, fmt.Errorf("simulation did not complete: %w", err)
	}
	s.metrics.observeBatch(outcomes, time.Since(start))

	lggr.Debugf("simulation stage: %s", stageEncoding)
	payload, err := codec.Encode(outcomes)
	if err != nil {
		s.metrics.observeRequest(resultAborted)

		return nil, errors.Join(errors.New("failed to encode simulation result"), err)
	}

	lggr.Debugf("simulation stage: %s (%d bytes)", stageSignaling, len(payload))
	s.metrics.observeRequest(resultOK)

	return payload, nil
}

// Close ends every PreCrimeSet subscription.
func (s *Simulator) Close() {
	s.scope.Close()
}
