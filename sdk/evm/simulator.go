package evm

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/StreamDefi/precrime"
	"github.com/StreamDefi/precrime/codec"
	abiutil "github.com/StreamDefi/precrime/internal/utils/abi"
	"github.com/StreamDefi/precrime/sdk"
	"github.com/StreamDefi/precrime/sdk/evm/bindings"
	"github.com/StreamDefi/precrime/types"
)

// ErrNoSimulationResult is returned when a simulation call did not revert with a
// SimulationResult.
var ErrNoSimulationResult = errors.New("call did not revert with a simulation result")

var _ sdk.Simulator = (*Simulator)(nil)

// Simulator runs lzReceiveAndRevert of a deployed simulator contract as an eth_call and
// extracts the result from the SimulationResult revert.
type Simulator struct {
	client   bind.ContractCaller
	contract *bindings.IOAppPreCrimeSimulator
	from     common.Address
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithFrom sets the sender of the simulation calls.
func WithFrom(from common.Address) SimulatorOption {
	return func(s *Simulator) {
		s.from = from
	}
}

// NewSimulator creates a new Simulator for the contract at address.
func NewSimulator(client bind.ContractCaller, address common.Address, opts ...SimulatorOption) (*Simulator, error) {
	if client == nil {
		return nil, errors.New("Simulator was created without a client")
	}

	contract, err := bindings.NewIOAppPreCrimeSimulatorCaller(address, client)
	if err != nil {
		return nil, err
	}

	s := &Simulator{client: client, contract: contract}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Simulate returns the encoded simulation result of packets. The call carries the sum
// of the packet values.
func (s *Simulator) Simulate(ctx context.Context, packets []types.InboundPacket) ([]byte, error) {
	for i, p := range packets {
		if err := p.Validate(); err != nil {
			return nil, precrime.NewInvalidPacketError(i, err)
		}
	}

	data, err := s.contract.PackLzReceiveAndRevert(ToBindingPackets(packets))
	if err != nil {
		return nil, fmt.Errorf("failed to pack lzReceiveAndRevert: %w", err)
	}

	addr := s.contract.Address()
	_, err = s.client.CallContract(ctx, ethereum.CallMsg{
		From:  s.from,
		To:    &addr,
		Value: types.TotalValue(packets),
		Data:  data,
	}, nil)
	if err == nil {
		return nil, ErrNoSimulationResult
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, errors.Join(ctxErr, err)
	}

	return parseSimulationRevert(err)
}

// SimulateOutcomes runs Simulate and decodes the result.
func (s *Simulator) SimulateOutcomes(ctx context.Context, packets []types.InboundPacket) ([]types.SimulationOutcome, error) {
	payload, err := s.Simulate(ctx, packets)
	if err != nil {
		return nil, err
	}

	return codec.Decode(payload)
}

func parseSimulationRevert(err error) ([]byte, error) {
	revert := ExtractRevertData(err)

	switch {
	case len(revert) == 0:
		return nil, fmt.Errorf("%w: %w", ErrNoSimulationResult, err)
	case abiutil.HasSelector(revert, SimulationResultSelector):
		return decodeSimulationResult(revert)
	case abiutil.HasSelector(revert, OnlySelfSelector):
		return nil, precrime.ErrOnlySelf
	default:
		return nil, NewUnexpectedRevertError(revert, err)
	}
}
