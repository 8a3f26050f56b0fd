package types //nolint:revive

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrInvalidOutcome is returned when an outcome carries data for the wrong branch.
var ErrInvalidOutcome = errors.New("invalid simulation outcome")

// SimulationOutcome is the observed result of simulating the receipt of one packet.
//
// ReturnData is only meaningful when Succeeded is true, RevertReason only when it is
// false. Outcomes are never persisted.
type SimulationOutcome struct {
	GUID         common.Hash   `json:"guid"`
	Succeeded    bool          `json:"succeeded"`
	ReturnData   hexutil.Bytes `json:"returnData,omitempty"`
	RevertReason hexutil.Bytes `json:"revertReason,omitempty"`
}

// NewSuccessOutcome builds the outcome of a packet whose receipt completed normally.
func NewSuccessOutcome(guid common.Hash, returnData []byte) SimulationOutcome {
	return SimulationOutcome{
		GUID:       guid,
		Succeeded:  true,
		ReturnData: normalizeBytes(returnData),
	}
}

// NewFailureOutcome builds the outcome of a packet whose receipt failed.
func NewFailureOutcome(guid common.Hash, revertReason []byte) SimulationOutcome {
	return SimulationOutcome{
		GUID:         guid,
		Succeeded:    false,
		RevertReason: normalizeBytes(revertReason),
	}
}

// Data returns the payload of the branch that was taken.
func (o SimulationOutcome) Data() []byte {
	if o.Succeeded {
		return o.ReturnData
	}

	return o.RevertReason
}

// Validate checks that only the field matching Succeeded is populated.
func (o SimulationOutcome) Validate() error {
	if o.Succeeded && len(o.RevertReason) > 0 {
		return fmt.Errorf("%w: successful outcome %s carries a revert reason", ErrInvalidOutcome, o.GUID)
	}

	if !o.Succeeded && len(o.ReturnData) > 0 {
		return fmt.Errorf("%w: failed outcome %s carries return data", ErrInvalidOutcome, o.GUID)
	}

	return nil
}

func normalizeBytes(b []byte) hexutil.Bytes {
	if len(b) == 0 {
		return nil
	}

	out := make([]byte, len(b))
	copy(out, b)

	return out
}
