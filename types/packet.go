package types //nolint:revive

import (
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidPacket is returned when an inbound packet fails validation.
var ErrInvalidPacket = errors.New("invalid inbound packet")

var validate = validator.New()

// Origin identifies where a message came from and its sequence number on that lane.
type Origin struct {
	// SrcEid is the endpoint id of the source chain.
	SrcEid EID `json:"srcEid" validate:"required"`

	// Sender is the sender identity on the source chain, left padded to 32 bytes.
	Sender common.Hash `json:"sender"`

	// Nonce is the per-lane sequence number of the message.
	Nonce uint64 `json:"nonce"`
}

// InboundPacket is a single cross-chain message awaiting (simulated) delivery.
type InboundPacket struct {
	Origin    Origin         `json:"origin"`
	DstEid    EID            `json:"dstEid" validate:"required"`
	Receiver  common.Address `json:"receiver"`
	GUID      common.Hash    `json:"guid"`
	Value     *big.Int       `json:"value,omitempty"`
	Executor  common.Address `json:"executor"`
	Message   hexutil.Bytes  `json:"message"`
	ExtraData hexutil.Bytes  `json:"extraData"`
}

// Validate checks the packet is well formed. It does not check whether the sender is a
// trusted peer, that is a simulation outcome rather than a validation failure.
func (p InboundPacket) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPacket, err)
	}

	if p.GUID == (common.Hash{}) {
		return fmt.Errorf("%w: guid must be set", ErrInvalidPacket)
	}

	if p.Value != nil && (p.Value.Sign() < 0 || p.Value.BitLen() > 256) {
		return fmt.Errorf("%w: value %s is not a uint256", ErrInvalidPacket, p.Value)
	}

	return nil
}

// MsgValue returns the native value attached to the packet, never nil.
func (p InboundPacket) MsgValue() *big.Int {
	if p.Value == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(p.Value)
}

// Clone returns a deep copy of the packet.
func (p InboundPacket) Clone() InboundPacket {
	c := p
	if p.Value != nil {
		c.Value = new(big.Int).Set(p.Value)
	}
	c.Message = slices.Clone(p.Message)
	c.ExtraData = slices.Clone(p.ExtraData)

	return c
}

// TotalValue sums the native value of all packets in a batch.
func TotalValue(packets []InboundPacket) *big.Int {
	total := new(big.Int)
	for _, p := range packets {
		if p.Value != nil {
			total.Add(total, p.Value)
		}
	}

	return total
}

// GUIDs returns the guid of every packet, in batch order.
func GUIDs(packets []InboundPacket) []common.Hash {
	guids := make([]common.Hash, 0, len(packets))
	for _, p := range packets {
		guids = append(guids, p.GUID)
	}

	return guids
}
