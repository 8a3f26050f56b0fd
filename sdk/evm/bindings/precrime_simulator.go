// Package bindings contains the go-ethereum bindings of the IOAppPreCrimeSimulator
// interface.
package bindings

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

// IOAppPreCrimeSimulatorMetaData contains all meta data concerning the
// IOAppPreCrimeSimulator contract.
var IOAppPreCrimeSimulatorMetaData = &bind.MetaData{
	ABI: `[` +
		`{"inputs":[],"name":"OnlySelf","type":"error"},` +
		`{"inputs":[{"internalType":"bytes","name":"result","type":"bytes"}],"name":"SimulationResult","type":"error"},` +
		`{"anonymous":false,"inputs":[{"indexed":false,"internalType":"address","name":"preCrimeAddress","type":"address"}],"name":"PreCrimeSet","type":"event"},` +
		`{"inputs":[{"internalType":"uint32","name":"_eid","type":"uint32"},{"internalType":"bytes32","name":"_peer","type":"bytes32"}],"name":"isPeer","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},` +
		`{"inputs":[{"components":[` +
		`{"components":[{"internalType":"uint32","name":"srcEid","type":"uint32"},{"internalType":"bytes32","name":"sender","type":"bytes32"},{"internalType":"uint64","name":"nonce","type":"uint64"}],"internalType":"struct Origin","name":"origin","type":"tuple"},` +
		`{"internalType":"uint32","name":"dstEid","type":"uint32"},` +
		`{"internalType":"address","name":"receiver","type":"address"},` +
		`{"internalType":"bytes32","name":"guid","type":"bytes32"},` +
		`{"internalType":"uint256","name":"value","type":"uint256"},` +
		`{"internalType":"address","name":"executor","type":"address"},` +
		`{"internalType":"bytes","name":"message","type":"bytes"},` +
		`{"internalType":"bytes","name":"extraData","type":"bytes"}` +
		`],"internalType":"struct InboundPacket[]","name":"_packets","type":"tuple[]"}],"name":"lzReceiveAndRevert","outputs":[],"stateMutability":"payable","type":"function"},` +
		`{"inputs":[],"name":"oApp","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},` +
		`{"inputs":[],"name":"preCrime","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},` +
		`{"inputs":[{"internalType":"address","name":"_preCrime","type":"address"}],"name":"setPreCrime","outputs":[],"stateMutability":"nonpayable","type":"function"}` +
		`]`,
}

// Origin is an auto generated low-level Go binding around an user-defined struct.
type Origin struct {
	SrcEid uint32
	Sender [32]byte
	Nonce  uint64
}

// InboundPacket is an auto generated low-level Go binding around an user-defined struct.
type InboundPacket struct {
	Origin    Origin
	DstEid    uint32
	Receiver  common.Address
	Guid      [32]byte
	Value     *big.Int
	Executor  common.Address
	Message   []byte
	ExtraData []byte
}

// IOAppPreCrimeSimulatorPreCrimeSet represents a PreCrimeSet event raised by the
// IOAppPreCrimeSimulator contract.
type IOAppPreCrimeSimulatorPreCrimeSet struct {
	PreCrimeAddress common.Address
	Raw             gethtypes.Log
}

// IOAppPreCrimeSimulator is a binding around an IOAppPreCrimeSimulator contract.
type IOAppPreCrimeSimulator struct {
	address  common.Address
	abi      *abi.ABI
	contract *bind.BoundContract
}

// NewIOAppPreCrimeSimulator creates a new instance of IOAppPreCrimeSimulator, bound to
// a specific deployed contract.
func NewIOAppPreCrimeSimulator(address common.Address, backend bind.ContractBackend) (*IOAppPreCrimeSimulator, error) {
	return bindIOAppPreCrimeSimulator(address, backend, backend, backend)
}

// NewIOAppPreCrimeSimulatorCaller creates a read-only instance of
// IOAppPreCrimeSimulator. Transactions and log filtering are not available on it.
func NewIOAppPreCrimeSimulatorCaller(address common.Address, caller bind.ContractCaller) (*IOAppPreCrimeSimulator, error) {
	return bindIOAppPreCrimeSimulator(address, caller, nil, nil)
}

func bindIOAppPreCrimeSimulator(
	address common.Address, caller bind.ContractCaller, transactor bind.ContractTransactor, filterer bind.ContractFilterer,
) (*IOAppPreCrimeSimulator, error) {
	parsed, err := IOAppPreCrimeSimulatorMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, errors.New("GetABI returned nil")
	}

	return &IOAppPreCrimeSimulator{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, *parsed, caller, transactor, filterer),
	}, nil
}

// Address returns the address of the bound contract.
func (c *IOAppPreCrimeSimulator) Address() common.Address {
	return c.address
}

// IsPeer is a free data retrieval call binding the contract method.
//
// Solidity: function isPeer(uint32 _eid, bytes32 _peer) view returns(bool)
func (c *IOAppPreCrimeSimulator) IsPeer(opts *bind.CallOpts, eid uint32, peer [32]byte) (bool, error) {
	var out []any
	if err := c.contract.Call(opts, &out, "isPeer", eid, peer); err != nil {
		return false, err
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// OApp is a free data retrieval call binding the contract method.
//
// Solidity: function oApp() view returns(address)
func (c *IOAppPreCrimeSimulator) OApp(opts *bind.CallOpts) (common.Address, error) {
	return c.callAddress(opts, "oApp")
}

// PreCrime is a free data retrieval call binding the contract method.
//
// Solidity: function preCrime() view returns(address)
func (c *IOAppPreCrimeSimulator) PreCrime(opts *bind.CallOpts) (common.Address, error) {
	return c.callAddress(opts, "preCrime")
}

func (c *IOAppPreCrimeSimulator) callAddress(opts *bind.CallOpts, method string) (common.Address, error) {
	var out []any
	if err := c.contract.Call(opts, &out, method); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// SetPreCrime is a paid mutator transaction binding the contract method.
//
// Solidity: function setPreCrime(address _preCrime) returns()
func (c *IOAppPreCrimeSimulator) SetPreCrime(opts *bind.TransactOpts, preCrime common.Address) (*gethtypes.Transaction, error) {
	return c.contract.Transact(opts, "setPreCrime", preCrime)
}

// PackLzReceiveAndRevert packs the calldata of lzReceiveAndRevert.
//
// Solidity: function lzReceiveAndRevert(InboundPacket[] _packets) payable returns()
func (c *IOAppPreCrimeSimulator) PackLzReceiveAndRevert(packets []InboundPacket) ([]byte, error) {
	return c.abi.Pack("lzReceiveAndRevert", packets)
}

// ParsePreCrimeSet is a log parse operation binding the contract event.
//
// Solidity: event PreCrimeSet(address preCrimeAddress)
func (c *IOAppPreCrimeSimulator) ParsePreCrimeSet(log gethtypes.Log) (*IOAppPreCrimeSimulatorPreCrimeSet, error) {
	event := new(IOAppPreCrimeSimulatorPreCrimeSet)
	if err := c.contract.UnpackLog(event, "PreCrimeSet", log); err != nil {
		return nil, err
	}
	event.Raw = log

	return event, nil
}
