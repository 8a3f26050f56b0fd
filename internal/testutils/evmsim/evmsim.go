// package evmsim implements a simulated EVM chain for testing purposes.
package evmsim

import (
	"crypto/ecdsa"
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"
	gethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"
)

const (
	// DefaultGasLimit is the default gas limit for each transaction in the simulated chain
	DefaultGasLimit = uint64(8000000)

	// DefaultBalance is the default balance for each account in the simulated chain
	DefaultBalance = 1e18

	// SimulatedChainID is the chain ID used for the simulated chain. EVM Simulated chains always use 1337
	//
	// https://pkg.go.dev/github.com/ethereum/go-ethereum/ethclient/simulated#NewBackend
	SimulatedChainID = 1337
)

// SimulatedChain represents a simulated chain with a backend and a list of signers.
type SimulatedChain struct {
	Backend *simulated.Backend
	Signers []*Signer
}

// Signer represents a signer with a private key.
type Signer struct {
	PrivateKey *ecdsa.PrivateKey
}

// NewTransactOpts creates a new transact options with the signer's private key and sets default
// values.
func (s *Signer) NewTransactOpts(t *testing.T) *bind.TransactOpts {
	t.Helper()

	auth, err := bind.NewKeyedTransactorWithChainID(s.PrivateKey, big.NewInt(SimulatedChainID))
	require.NoError(t, err)

	// Set default values
	auth.GasLimit = DefaultGasLimit

	return auth
}

// Address extracts the address from the signer's private key.
func (s *Signer) Address(t *testing.T) common.Address {
	t.Helper()

	publicKeyECDSA, ok := s.PrivateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		t.Fatal("error casting public key from crypto to ecdsa")
	}

	return crypto.PubkeyToAddress(*publicKeyECDSA)
}

// NewSimulatedChain creates a new simulated chain with the given number of funded signers.
// Every entry of code is installed as runtime bytecode at its address in the genesis.
func NewSimulatedChain(t *testing.T, numSigners uint64, code map[common.Address][]byte) SimulatedChain {
	t.Helper()

	signers := make([]*Signer, 0, numSigners)
	for range numSigners {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		signers = append(signers, &Signer{PrivateKey: key})
	}

	genesisAlloc := gethTypes.GenesisAlloc{}
	for _, s := range signers {
		genesisAlloc[s.Address(t)] = gethTypes.Account{
			Balance: big.NewInt(DefaultBalance),
		}
	}
	for addr, runtime := range code {
		genesisAlloc[addr] = gethTypes.Account{
			Code:    runtime,
			Balance: big.NewInt(0),
		}
	}

	sim := simulated.NewBackend(genesisAlloc,
		simulated.WithBlockGasLimit(DefaultGasLimit),
	)
	t.Cleanup(func() {
		_ = sim.Close()
	})

	return SimulatedChain{
		Backend: sim,
		Signers: signers,
	}
}

// RevertingContract returns runtime bytecode that reverts every call with data.
func RevertingContract(data []byte) []byte {
	// PUSH2 len PUSH2 offset PUSH1 0 CODECOPY PUSH2 len PUSH1 0 REVERT <data>
	const prologueSize = 15

	code := make([]byte, 0, prologueSize+len(data))
	code = append(code, byte(vm.PUSH2))
	code = binary.BigEndian.AppendUint16(code, uint16(len(data))) //nolint:gosec // test payloads are small
	code = append(code, byte(vm.PUSH2))
	code = binary.BigEndian.AppendUint16(code, prologueSize)
	code = append(code, byte(vm.PUSH1), 0x00, byte(vm.CODECOPY))
	code = append(code, byte(vm.PUSH2))
	code = binary.BigEndian.AppendUint16(code, uint16(len(data))) //nolint:gosec // test payloads are small
	code = append(code, byte(vm.PUSH1), 0x00, byte(vm.REVERT))

	return append(code, data...)
}

// LogEmitterContract returns runtime bytecode that emits a log with topic and the first
// calldata argument as data, then stops.
func LogEmitterContract(topic common.Hash) []byte {
	code := []byte{
		byte(vm.PUSH1), 0x04, byte(vm.CALLDATALOAD),
		byte(vm.PUSH1), 0x00, byte(vm.MSTORE),
		byte(vm.PUSH32),
	}
	code = append(code, topic.Bytes()...)

	return append(code,
		byte(vm.PUSH1), 0x20, byte(vm.PUSH1), 0x00, byte(vm.LOG1),
		byte(vm.STOP),
	)
}
