package sdkerrors

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/StreamDefi/precrime/types"
)

// ChainSimulationError is returned when a chain did not produce a usable simulation
// result.
type ChainSimulationError struct {
	Eid types.EID
	Err error
}

func (e *ChainSimulationError) Error() string {
	return fmt.Sprintf("simulation did not complete on chain %v: %v", e.Eid, e.Err)
}

func (e *ChainSimulationError) Unwrap() error {
	return e.Err
}

func NewChainSimulationError(eid types.EID, err error) *ChainSimulationError {
	return &ChainSimulationError{Eid: eid, Err: err}
}

// SimulatorNotFoundError is returned when a batch targets a chain with no simulator.
type SimulatorNotFoundError struct {
	Eid types.EID
}

func (e *SimulatorNotFoundError) Error() string {
	return fmt.Sprintf("no simulator for chain %v", e.Eid)
}

func NewSimulatorNotFoundError(eid types.EID) *SimulatorNotFoundError {
	return &SimulatorNotFoundError{Eid: eid}
}

// ResultMismatchError is returned when a simulation result does not line up with the
// packets it was produced for.
type ResultMismatchError struct {
	Index    int
	Expected common.Hash
	Got      common.Hash
}

func (e *ResultMismatchError) Error() string {
	return fmt.Sprintf("result mismatch at index %d: expected guid %s, got %s", e.Index, e.Expected.Hex(), e.Got.Hex())
}

func NewResultMismatchError(index int, expected, got common.Hash) *ResultMismatchError {
	return &ResultMismatchError{Index: index, Expected: expected, Got: got}
}

// ResultLengthError is returned when a simulation result does not have one outcome per
// packet.
type ResultLengthError struct {
	Expected int
	Got      int
}

func (e *ResultLengthError) Error() string {
	return fmt.Sprintf("result has %d outcomes, expected %d", e.Got, e.Expected)
}

func NewResultLengthError(expected, got int) *ResultLengthError {
	return &ResultLengthError{Expected: expected, Got: got}
}
