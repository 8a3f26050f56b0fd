package evm

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/StreamDefi/precrime/sdk"
	"github.com/StreamDefi/precrime/sdk/evm/bindings"
	"github.com/StreamDefi/precrime/types"
)

var _ sdk.Inspector = (*Inspector)(nil)

// Inspector reads the configuration of a deployed simulator contract.
type Inspector struct {
	contract *bindings.IOAppPreCrimeSimulator
}

// NewInspector creates a new Inspector for the contract at address.
func NewInspector(client bind.ContractCaller, address common.Address) (*Inspector, error) {
	contract, err := bindings.NewIOAppPreCrimeSimulatorCaller(address, client)
	if err != nil {
		return nil, err
	}

	return &Inspector{contract: contract}, nil
}

// IsPeer reports whether peer is trusted on eid.
func (i *Inspector) IsPeer(ctx context.Context, eid types.EID, peer common.Hash) (bool, error) {
	return i.contract.IsPeer(&bind.CallOpts{Context: ctx}, uint32(eid), peer)
}

// OApp returns the application the simulator guards.
func (i *Inspector) OApp(ctx context.Context) (common.Address, error) {
	return i.contract.OApp(&bind.CallOpts{Context: ctx})
}

// PreCrime returns the judge associated with the simulator.
func (i *Inspector) PreCrime(ctx context.Context) (common.Address, error) {
	return i.contract.PreCrime(&bind.CallOpts{Context: ctx})
}

// Link returns both the application and the judge.
func (i *Inspector) Link(ctx context.Context) (types.PreCrimeLink, error) {
	oApp, err := i.OApp(ctx)
	if err != nil {
		return types.PreCrimeLink{}, err
	}

	preCrime, err := i.PreCrime(ctx)
	if err != nil {
		return types.PreCrimeLink{}, err
	}

	return types.PreCrimeLink{OApp: oApp, PreCrime: preCrime}, nil
}
