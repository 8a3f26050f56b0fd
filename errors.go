package precrime

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrOnlySelf is returned when LzReceiveAndRevert is reached through anything but
	// the simulator's own Simulate entry point. No simulation runs.
	ErrOnlySelf = errors.New("only self: lzReceiveAndRevert must be invoked through Simulate")

	// ErrInvalidOwner is returned when the owner would be set to the zero address.
	ErrInvalidOwner = errors.New("owner cannot be the zero address")

	// ErrNilRegistry is returned when a simulator is built without a peer registry.
	ErrNilRegistry = errors.New("simulator was created without a peer registry")
)

// UnauthorizedError is returned when an administrative operation is attempted by an
// address other than the owner.
type UnauthorizedError struct {
	Caller common.Address
	Owner  common.Address
}

// NewUnauthorizedError creates a new UnauthorizedError.
func NewUnauthorizedError(caller, owner common.Address) *UnauthorizedError {
	return &UnauthorizedError{Caller: caller, Owner: owner}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %s is not the owner %s", e.Caller.Hex(), e.Owner.Hex())
}

// InvalidPacketError is returned when a packet of a batch is structurally invalid.
// The batch is rejected before any packet is simulated.
type InvalidPacketError struct {
	Index int
	Err   error
}

// NewInvalidPacketError creates a new InvalidPacketError.
func NewInvalidPacketError(index int, err error) *InvalidPacketError {
	return &InvalidPacketError{Index: index, Err: err}
}

func (e *InvalidPacketError) Error() string {
	return fmt.Sprintf("packet %d: %v", e.Index, e.Err)
}

func (e *InvalidPacketError) Unwrap() error {
	return e.Err
}
