// Package judge defines how simulation results reach a judge, and coordinates the
// simulations of one batch across chains.
package judge

import (
	"context"

	"github.com/StreamDefi/precrime/types"
)

// Judge decides on a batch once every involved chain has simulated its share of it.
// Packets and results are keyed by destination chain, and results[eid][i] is the
// outcome of packets[eid][i]. A non-nil error vetoes the batch.
type Judge interface {
	Judge(
		ctx context.Context,
		packets map[types.EID][]types.InboundPacket,
		results map[types.EID][]types.SimulationOutcome,
	) error
}

// Func adapts a function to a Judge.
type Func func(
	ctx context.Context,
	packets map[types.EID][]types.InboundPacket,
	results map[types.EID][]types.SimulationOutcome,
) error

// Judge implements Judge.
func (f Func) Judge(
	ctx context.Context,
	packets map[types.EID][]types.InboundPacket,
	results map[types.EID][]types.SimulationOutcome,
) error {
	return f(ctx, packets, results)
}

// GroupByDestination splits packets by destination chain, keeping their relative
// order.
func GroupByDestination(packets []types.InboundPacket) map[types.EID][]types.InboundPacket {
	grouped := make(map[types.EID][]types.InboundPacket)
	for _, p := range packets {
		grouped[p.DstEid] = append(grouped[p.DstEid], p)
	}

	return grouped
}
