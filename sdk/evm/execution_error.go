package evm

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	abiutil "github.com/StreamDefi/precrime/internal/utils/abi"
	"github.com/StreamDefi/precrime/sandbox"
)

var (
	// SimulationResultSelector is the 4-byte selector of SimulationResult(bytes).
	SimulationResultSelector = abiutil.ErrorSelector("SimulationResult(bytes)")
	// OnlySelfSelector is the 4-byte selector of OnlySelf().
	OnlySelfSelector = abiutil.ErrorSelector("OnlySelf()")

	// hexPattern matches "0x" followed by one or more hex characters
	hexPattern = regexp.MustCompile(`0x[0-9a-fA-F]+`)
	// customErrorPattern matches "custom error 0x<8-hex-chars>: <hex-data>"
	// Captures: group 1 = selector (8 hex chars), group 2 = data (hex chars with optional spaces)
	customErrorPattern = regexp.MustCompile(`custom error 0x([0-9a-fA-F]{8}):\s*([0-9a-fA-F\s]*)`)
)

const simulationResultABI = `[{"type":"bytes"}]`

// CustomErrorData contains the error selector and its arguments separately.
type CustomErrorData struct {
	Selector [4]byte // 4-byte error selector
	Data     []byte  // Error arguments (ABI-encoded)
}

// NewCustomErrorData splits raw revert data into selector and arguments.
func NewCustomErrorData(raw []byte) *CustomErrorData {
	c := &CustomErrorData{}
	if len(raw) < abiutil.SelectorSize {
		c.Data = append([]byte{}, raw...)
		return c
	}
	copy(c.Selector[:], raw[:abiutil.SelectorSize])
	c.Data = append([]byte{}, raw[abiutil.SelectorSize:]...)

	return c
}

// Combined returns the full revert data (selector + data) as a byte slice.
func (c *CustomErrorData) Combined() []byte {
	if c == nil {
		return nil
	}

	return append(c.Selector[:], c.Data...)
}

// HexSelector returns the hex-encoded string representation of the selector (e.g., "0x70de1b4b").
func (c *CustomErrorData) HexSelector() string {
	if c == nil {
		return ""
	}

	return hexutil.Encode(c.Selector[:])
}

// SimulationResultError is the revert a simulator contract raises to hand back its
// result. It implements rpc.DataError the way a node reports it.
type SimulationResultError struct {
	Result []byte
}

// NewSimulationResultError creates a new SimulationResultError.
func NewSimulationResultError(result []byte) *SimulationResultError {
	return &SimulationResultError{Result: result}
}

func (e *SimulationResultError) Error() string {
	return "execution reverted: SimulationResult"
}

// ErrorCode returns the JSON-RPC code nodes use for reverted calls.
func (e *SimulationResultError) ErrorCode() int {
	return 3 //nolint:mnd
}

// ErrorData returns the hex encoded revert data.
func (e *SimulationResultError) ErrorData() any {
	return hexutil.Encode(e.RevertData())
}

// RevertData returns the raw revert data: the selector followed by the abi encoded
// result.
func (e *SimulationResultError) RevertData() []byte {
	data, err := abiutil.EncodeError("SimulationResult(bytes)", simulationResultABI, e.Result)
	if err != nil {
		// static argument type, cannot fail
		panic(err)
	}

	return data
}

var _ rpc.DataError = (*SimulationResultError)(nil)

// UnexpectedRevertError is returned when a simulation call reverted with something
// other than a simulation result.
type UnexpectedRevertError struct {
	// RawRevertReason contains the error selector and raw data from the contract
	RawRevertReason *CustomErrorData
	// DecodedRevertReason is the human-readable revert reason, if it could be decoded
	DecodedRevertReason string
	// OriginalError is the error returned by the client
	OriginalError error
}

// NewUnexpectedRevertError creates a new UnexpectedRevertError.
func NewUnexpectedRevertError(raw []byte, original error) *UnexpectedRevertError {
	return &UnexpectedRevertError{
		RawRevertReason:     NewCustomErrorData(raw),
		DecodedRevertReason: sandbox.DescribeReason(raw),
		OriginalError:       original,
	}
}

func (e *UnexpectedRevertError) Error() string {
	return fmt.Sprintf("unexpected revert (selector %s): %s", e.RawRevertReason.HexSelector(), e.DecodedRevertReason)
}

func (e *UnexpectedRevertError) Unwrap() error {
	return e.OriginalError
}

// ExtractRevertData extracts the raw revert data from a call error, best effort.
// JSON-RPC data errors are preferred. The error message is searched for the
// "custom error 0x<selector>: <data>" form and then for any hex string.
func ExtractRevertData(err error) []byte {
	if err == nil {
		return nil
	}

	var de rpc.DataError
	if errors.As(err, &de) {
		if s, ok := de.ErrorData().(string); ok {
			if data, decErr := hexutil.Decode(s); decErr == nil && len(data) > 0 {
				return data
			}
		}
	}

	errStr := err.Error()
	if strings.Contains(errStr, "custom error") {
		if data := extractCustomErrorRevertData(errStr); data != nil {
			return data.Combined()
		}
	}

	return extractHexEncodedRevertData(errStr)
}

// extractHexEncodedRevertData extracts hex-encoded revert data (0x...) from an error string.
// Returns the extracted bytes if found, nil otherwise.
func extractHexEncodedRevertData(errStr string) []byte {
	hexStr := hexPattern.FindString(errStr)
	if hexStr == "" {
		return nil
	}

	if data := common.FromHex(hexStr); len(data) > 0 {
		return data
	}

	return nil
}

// extractCustomErrorRevertData extracts revert data from the "custom error 0x...: <hex data>" format.
func extractCustomErrorRevertData(errStr string) *CustomErrorData {
	matches := customErrorPattern.FindStringSubmatch(errStr)
	if len(matches) < 3 { //nolint
		return nil
	}

	selectorBytes := common.FromHex(matches[1])
	if len(selectorBytes) != abiutil.SelectorSize {
		return nil
	}

	var selector [4]byte
	copy(selector[:], selectorBytes)

	return &CustomErrorData{
		Selector: selector,
		Data:     common.FromHex(strings.Join(strings.Fields(matches[2]), "")),
	}
}

// decodeSimulationResult returns the payload carried by SimulationResult(bytes) revert
// data.
func decodeSimulationResult(revert []byte) ([]byte, error) {
	values, err := abiutil.ABIDecode(simulationResultABI, revert[abiutil.SelectorSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode SimulationResult: %w", err)
	}

	result, ok := values[0].([]byte)
	if !ok {
		return nil, fmt.Errorf("failed to decode SimulationResult: unexpected type %T", values[0])
	}

	return result, nil
}
