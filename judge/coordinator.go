package judge

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/StreamDefi/precrime/codec"
	"github.com/StreamDefi/precrime/sdk"
	sdkerrors "github.com/StreamDefi/precrime/sdk/errors"
	"github.com/StreamDefi/precrime/types"
)

var (
	// ErrNilJudge is returned when a Coordinator is built without a judge.
	ErrNilJudge = errors.New("coordinator was created without a judge")

	// ErrNoSimulators is returned when a Coordinator is built without any simulator.
	ErrNoSimulators = errors.New("coordinator was created without simulators")
)

// Coordinator simulates a batch on every chain it knows, concurrently, and hands all
// results to a Judge at once.
type Coordinator struct {
	judge      Judge
	simulators map[types.EID]sdk.Simulator
	limit      int
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithConcurrency bounds the number of chains simulated at the same time. A value
// below one leaves it unbounded.
func WithConcurrency(n int) CoordinatorOption {
	return func(c *Coordinator) {
		if n > 0 {
			c.limit = n
		}
	}
}

// NewCoordinator creates a coordinator over simulators, keyed by the chain they
// simulate.
func NewCoordinator(judge Judge, simulators map[types.EID]sdk.Simulator, opts ...CoordinatorOption) (*Coordinator, error) {
	if judge == nil {
		return nil, ErrNilJudge
	}
	if len(simulators) == 0 {
		return nil, ErrNoSimulators
	}

	c := &Coordinator{
		judge:      judge,
		simulators: maps.Clone(simulators),
		limit:      -1,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Chains returns the chains the coordinator simulates on, in ascending order.
func (c *Coordinator) Chains() []types.EID {
	return slices.Sorted(maps.Keys(c.simulators))
}

// Run simulates packets and calls the judge once with the results of every chain.
// Chains receiving no packet still simulate an empty batch. Any chain failing to
// produce a decodable result that lines up with its packets aborts the run with a
// *sdkerrors.ChainSimulationError and the judge is not called.
func (c *Coordinator) Run(ctx context.Context, packets []types.InboundPacket) error {
	lggr := sdk.LoggerFrom(ctx)

	byChain := GroupByDestination(packets)
	for eid := range byChain {
		if _, ok := c.simulators[eid]; !ok {
			return sdkerrors.NewSimulatorNotFoundError(eid)
		}
	}

	var mu sync.Mutex
	results := make(map[types.EID][]types.SimulationOutcome, len(c.simulators))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit)
	for eid, simulator := range c.simulators {
		batch := byChain[eid]
		g.Go(func() error {
			outcomes, err := simulate(gctx, simulator, batch)
			if err != nil {
				return sdkerrors.NewChainSimulationError(eid, err)
			}

			mu.Lock()
			results[eid] = outcomes
			mu.Unlock()
			lggr.Debugf("chain %v simulated %d packets", eid, len(batch))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		lggr.Warnf("batch of %d packets not judged: %v", len(packets), err)
		return err
	}

	grouped := make(map[types.EID][]types.InboundPacket, len(c.simulators))
	for eid := range c.simulators {
		grouped[eid] = byChain[eid]
	}
	lggr.Infof("judging batch of %d packets over %d chains", len(packets), len(results))

	return c.judge.Judge(ctx, grouped, results)
}

func simulate(ctx context.Context, simulator sdk.Simulator, packets []types.InboundPacket) ([]types.SimulationOutcome, error) {
	payload, err := simulator.Simulate(ctx, packets)
	if err != nil {
		return nil, err
	}

	outcomes, err := codec.Decode(payload)
	if err != nil {
		return nil, err
	}

	if len(outcomes) != len(packets) {
		return nil, sdkerrors.NewResultLengthError(len(packets), len(outcomes))
	}
	for i, o := range outcomes {
		if o.GUID != packets[i].GUID {
			return nil, sdkerrors.NewResultMismatchError(i, packets[i].GUID, o.GUID)
		}
	}

	return outcomes, nil
}
