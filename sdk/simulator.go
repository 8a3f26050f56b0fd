package sdk

import (
	"context"

	"github.com/StreamDefi/precrime/types"
)

// Simulator produces the encoded simulation result of a packet batch on one chain.
//
// Implementations must return an error, never a partial result, when the simulation
// did not complete.
type Simulator interface {
	Simulate(ctx context.Context, packets []types.InboundPacket) ([]byte, error)
}
