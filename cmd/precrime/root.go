package precrime

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/StreamDefi/precrime/internal/utils/safecast"
	"github.com/StreamDefi/precrime/types"
)

// target is the simulator contract a command talks to, set by the persistent flags.
type target struct {
	eid       uint64
	simulator string
}

func (t *target) chain() (types.EID, error) {
	return safecast.ToEID(t.eid)
}

func (t *target) address() (common.Address, error) {
	return parseAddress("simulator", t.simulator)
}

func BuildPreCrimeCmd() *cobra.Command {
	var tgt target

	cmd := cobra.Command{
		Use:          "precrime",
		Short:        "Simulate cross-chain packets against OApp PreCrime simulators",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Uint64Var(&tgt.eid, "eid", 0, "Endpoint id of the chain to connect to")
	cmd.PersistentFlags().StringVar(&tgt.simulator, "simulator", "", "Address of the simulator contract")

	cmd.AddCommand(buildSimulateCmd(&tgt))
	cmd.AddCommand(buildIsPeerCmd(&tgt))
	cmd.AddCommand(buildInfoCmd(&tgt))
	cmd.AddCommand(buildSetPreCrimeCmd(&tgt))
	cmd.AddCommand(buildDecodeResultCmd())

	return &cmd
}

func parseAddress(name, value string) (common.Address, error) {
	if value == "" {
		return common.Address{}, errors.New("--" + name + " is required")
	}
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("--%s: %q is not an address", name, value)
	}

	return common.HexToAddress(value), nil
}
