package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/StreamDefi/precrime/types"
)

// Inspector is an interface for inspecting the configuration of a simulator.
type Inspector interface {
	IsPeer(ctx context.Context, eid types.EID, peer common.Hash) (bool, error)
	OApp(ctx context.Context) (common.Address, error)
	PreCrime(ctx context.Context) (common.Address, error)
}
