package evm

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/StreamDefi/precrime/sdk/evm/bindings"
	"github.com/StreamDefi/precrime/types"
)

// ContractDeployBackend is the client needed to send transactions and wait for them to
// be mined.
type ContractDeployBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// ToBindingPackets converts packets to their abi representation. A nil value becomes
// zero.
func ToBindingPackets(packets []types.InboundPacket) []bindings.InboundPacket {
	out := make([]bindings.InboundPacket, 0, len(packets))
	for _, p := range packets {
		out = append(out, bindings.InboundPacket{
			Origin: bindings.Origin{
				SrcEid: uint32(p.Origin.SrcEid),
				Sender: p.Origin.Sender,
				Nonce:  p.Origin.Nonce,
			},
			DstEid:    uint32(p.DstEid),
			Receiver:  p.Receiver,
			Guid:      p.GUID,
			Value:     p.MsgValue(),
			Executor:  p.Executor,
			Message:   append([]byte{}, p.Message...),
			ExtraData: append([]byte{}, p.ExtraData...),
		})
	}

	return out
}
