package sandbox

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	abiutil "github.com/StreamDefi/precrime/internal/utils/abi"
	"github.com/StreamDefi/precrime/types"
)

const (
	onlyPeerSignature         = "OnlyPeer(uint32,bytes32)"
	wrongDestinationSignature = "WrongDestination(uint32,uint32)"
	errorStringSignature      = "Error(string)"
)

var (
	// OnlyPeerSelector prefixes the revert reason of packets from untrusted senders.
	OnlyPeerSelector = abiutil.ErrorSelector(onlyPeerSignature)

	// WrongDestinationSelector prefixes the revert reason of packets addressed to
	// another chain.
	WrongDestinationSelector = abiutil.ErrorSelector(wrongDestinationSignature)

	// ErrorStringSelector prefixes plain string revert reasons.
	ErrorStringSelector = abiutil.ErrorSelector(errorStringSignature)
)

// RevertDataError is implemented by receiver errors that already carry raw revert
// data. That data is recorded verbatim.
type RevertDataError interface {
	error
	RevertData() []byte
}

// UntrustedPeerReason is the standard revert reason for a packet whose sender is not
// the registered peer of its source chain.
func UntrustedPeerReason(eid types.EID, sender common.Hash) []byte {
	data, err := abiutil.EncodeError(onlyPeerSignature, `[{"type":"uint32"},{"type":"bytes32"}]`, uint32(eid), [32]byte(sender))
	if err != nil {
		// static argument types, cannot fail
		panic(err)
	}

	return data
}

// WrongDestinationReason is the revert reason for a packet whose destination is not the
// chain the simulation runs on.
func WrongDestinationReason(expected, actual types.EID) []byte {
	data, err := abiutil.EncodeError(wrongDestinationSignature, `[{"type":"uint32"},{"type":"uint32"}]`, uint32(expected), uint32(actual))
	if err != nil {
		panic(err)
	}

	return data
}

// ErrorString encodes msg the way solidity encodes revert("msg").
func ErrorString(msg string) []byte {
	data, err := abiutil.EncodeError(errorStringSignature, `[{"type":"string"}]`, msg)
	if err != nil {
		panic(err)
	}

	return data
}

// RevertReason converts a receiver error into revert data. Raw revert data carried by
// the error, either through RevertDataError or a JSON-RPC data error, wins. Anything
// else becomes Error(string) with the error message.
func RevertReason(err error) []byte {
	var rd RevertDataError
	if errors.As(err, &rd) {
		if data := rd.RevertData(); len(data) > 0 {
			return append([]byte(nil), data...)
		}
	}

	var de rpc.DataError
	if errors.As(err, &de) {
		if s, ok := de.ErrorData().(string); ok {
			if data, decErr := hexutil.Decode(s); decErr == nil && len(data) > 0 {
				return data
			}
		}
	}

	return ErrorString(err.Error())
}

// DescribeReason renders revert data for humans.
func DescribeReason(data []byte) string {
	switch {
	case len(data) == 0:
		return "reverted without reason"
	case abiutil.HasSelector(data, OnlyPeerSelector):
		values, err := abiutil.ABIDecode(`[{"type":"uint32"},{"type":"bytes32"}]`, data[abiutil.SelectorSize:])
		if err == nil {
			return fmt.Sprintf("OnlyPeer(eid: %d, sender: %s)", values[0], common.Hash(values[1].([32]byte)).Hex())
		}
	case abiutil.HasSelector(data, WrongDestinationSelector):
		values, err := abiutil.ABIDecode(`[{"type":"uint32"},{"type":"uint32"}]`, data[abiutil.SelectorSize:])
		if err == nil {
			return fmt.Sprintf("WrongDestination(expected: %d, actual: %d)", values[0], values[1])
		}
	}

	// Error(string) and Panic(uint256)
	if reason, err := abi.UnpackRevert(data); err == nil {
		return reason
	}

	return hexutil.Encode(data)
}
