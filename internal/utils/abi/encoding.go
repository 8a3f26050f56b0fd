package abi

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

// SelectorSize is the length of a function or error selector.
const SelectorSize = 4

// ParseArguments parses a JSON argument list such as `[{"type":"uint32"}]`.
func ParseArguments(abiStr string) (abi.Arguments, error) {
	// Wrap the arguments in a dummy method so the go-ethereum parser accepts them
	inDef := fmt.Sprintf(`[{ "name" : "method", "type": "function", "inputs": %s}]`, abiStr)
	inAbi, err := abi.JSON(strings.NewReader(inDef))
	if err != nil {
		return nil, err
	}

	return inAbi.Methods["method"].Inputs, nil
}

// MustParseArguments is ParseArguments for package level argument lists.
func MustParseArguments(abiStr string) abi.Arguments {
	args, err := ParseArguments(abiStr)
	if err != nil {
		panic(err)
	}

	return args
}

// ABIEncode is the equivalent of abi.encode.
// See a full set of examples https://github.com/ethereum/go-ethereum/blob/420b78659bef661a83c5c442121b13f13288c09f/accounts/abi/packing_test.go#L31
func ABIEncode(abiStr string, values ...any) ([]byte, error) {
	args, err := ParseArguments(abiStr)
	if err != nil {
		return nil, err
	}

	return args.Pack(values...)
}

// ABIDecode is the equivalent of abi.decode.
func ABIDecode(abiStr string, data []byte) ([]any, error) {
	args, err := ParseArguments(abiStr)
	if err != nil {
		return nil, err
	}

	return args.Unpack(data)
}

// ErrorSelector returns the selector of a custom error, e.g. "OnlySelf()".
func ErrorSelector(signature string) [SelectorSize]byte {
	var sel [SelectorSize]byte
	copy(sel[:], crypto.Keccak256([]byte(signature))[:SelectorSize])

	return sel
}

// EncodeError builds revert data the way a contract reverting with a custom error
// does: the error selector followed by the abi encoded arguments.
func EncodeError(signature string, abiStr string, values ...any) ([]byte, error) {
	sel := ErrorSelector(signature)
	args, err := ABIEncode(abiStr, values...)
	if err != nil {
		return nil, err
	}

	return append(sel[:], args...), nil
}

// HasSelector reports whether data starts with sel.
func HasSelector(data []byte, sel [SelectorSize]byte) bool {
	return len(data) >= SelectorSize && [SelectorSize]byte(data[:SelectorSize]) == sel
}
