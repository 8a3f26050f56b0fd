package chaintest

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/StreamDefi/precrime/types"
)

// Endpoint ids of the mainnets used throughout the tests.
const (
	EthereumEid types.EID = 30101
	ArbitrumEid types.EID = 30110
	OptimismEid types.EID = 30111

	// TestInvalidEid is an endpoint id no chain uses.
	TestInvalidEid types.EID = 0
)

var (
	// OAppAddress is the application guarded by the simulator under test.
	OAppAddress = common.HexToAddress("0x000000000000000000000000000000000000a99c")

	// OwnerAddress administers the simulator under test.
	OwnerAddress = common.HexToAddress("0x00000000000000000000000000000000000000a1")

	// PreCrimeAddress is the judge associated with the simulator under test.
	PreCrimeAddress = common.HexToAddress("0x00000000000000000000000000000000000000c1")

	// TrustedPeer is registered for every source chain in the tests.
	TrustedPeer = common.HexToHash("0x000000000000000000000000000000000000000000000000000000000000beef")

	// UntrustedPeer is never registered.
	UntrustedPeer = common.HexToHash("0x000000000000000000000000000000000000000000000000000000000000bad0")
)

// GUID derives a deterministic guid for the i-th test packet.
func GUID(i int) common.Hash {
	return common.HexToHash(fmt.Sprintf("0x%064x", 0x1000+i))
}

// NewPacket builds a packet from src to dst carrying msg.
func NewPacket(i int, src, dst types.EID, sender common.Hash, msg string) types.InboundPacket {
	return types.InboundPacket{
		Origin: types.Origin{
			SrcEid: src,
			Sender: sender,
			Nonce:  uint64(i + 1), //nolint:gosec // test indexes are small
		},
		DstEid:   dst,
		Receiver: OAppAddress,
		GUID:     GUID(i),
		Executor: common.HexToAddress("0x00000000000000000000000000000000000000e0"),
		Message:  []byte(msg),
	}
}
