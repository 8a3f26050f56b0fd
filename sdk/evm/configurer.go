package evm

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/StreamDefi/precrime/sdk/evm/bindings"
)

// ErrPreCrimeSetNotEmitted is returned when a mined setPreCrime transaction carries no
// PreCrimeSet log.
var ErrPreCrimeSetNotEmitted = errors.New("transaction did not emit PreCrimeSet")

// Configurer administers a deployed simulator contract.
type Configurer struct {
	client ContractDeployBackend
	auth   *bind.TransactOpts
}

// NewConfigurer creates a new Configurer sending transactions with auth.
func NewConfigurer(client ContractDeployBackend, auth *bind.TransactOpts) *Configurer {
	return &Configurer{
		client: client,
		auth:   auth,
	}
}

// SetPreCrime sends a setPreCrime transaction to the simulator at address.
func (c *Configurer) SetPreCrime(ctx context.Context, address, preCrime common.Address) (*gethtypes.Transaction, error) {
	contract, err := bindings.NewIOAppPreCrimeSimulator(address, c.client)
	if err != nil {
		return nil, err
	}

	opts := *c.auth
	opts.Context = ctx

	return contract.SetPreCrime(&opts, preCrime)
}

// WaitPreCrimeSet waits for tx to be mined and returns the judge address announced by
// its PreCrimeSet log.
func (c *Configurer) WaitPreCrimeSet(ctx context.Context, tx *gethtypes.Transaction) (common.Address, error) {
	receipt, err := bind.WaitMined(ctx, c.client, tx)
	if err != nil {
		return common.Address{}, err
	}
	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		return common.Address{}, fmt.Errorf("setPreCrime transaction %s reverted", tx.Hash().Hex())
	}

	for _, log := range receipt.Logs {
		event, err := ParsePreCrimeSet(*log)
		if err == nil {
			return event.PreCrimeAddress, nil
		}
	}

	return common.Address{}, ErrPreCrimeSetNotEmitted
}

// ParsePreCrimeSet decodes a PreCrimeSet log emitted by any simulator contract.
func ParsePreCrimeSet(log gethtypes.Log) (*bindings.IOAppPreCrimeSimulatorPreCrimeSet, error) {
	contract, err := bindings.NewIOAppPreCrimeSimulatorCaller(log.Address, nil)
	if err != nil {
		return nil, err
	}

	return contract.ParsePreCrimeSet(log)
}
