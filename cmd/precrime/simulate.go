package precrime

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/StreamDefi/precrime/sandbox"
	"github.com/StreamDefi/precrime/sdk/evm"
	"github.com/StreamDefi/precrime/types"
)

// outcomeReport is a decoded outcome with its revert reason rendered for humans.
type outcomeReport struct {
	types.SimulationOutcome
	Reason string `json:"reason,omitempty"`
}

type simulationReport struct {
	Eid       types.EID       `json:"eid"`
	Simulator common.Address  `json:"simulator"`
	Outcomes  []outcomeReport `json:"outcomes"`
}

func newOutcomeReports(outcomes []types.SimulationOutcome) []outcomeReport {
	reports := make([]outcomeReport, 0, len(outcomes))
	for _, o := range outcomes {
		r := outcomeReport{SimulationOutcome: o}
		if !o.Succeeded {
			r.Reason = sandbox.DescribeReason(o.RevertReason)
		}
		reports = append(reports, r)
	}

	return reports
}

func buildSimulateCmd(tgt *target) *cobra.Command {
	var (
		packetsPath string
		from        string
	)

	cmd := cobra.Command{
		Use:   "simulate",
		Short: "Simulates the delivery of a batch of packets without committing state",
		Long:  `Reads a JSON array of inbound packets and runs lzReceiveAndRevert on the simulator as an eth_call.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eid, err := tgt.chain()
			if err != nil {
				return err
			}
			address, err := tgt.address()
			if err != nil {
				return err
			}

			packets, err := loadPackets(packetsPath)
			if err != nil {
				return err
			}

			client, err := dialRPC(eid)
			if err != nil {
				return err
			}
			defer client.Close()

			var opts []evm.SimulatorOption
			if from != "" {
				sender, err := parseAddress("from", from)
				if err != nil {
					return err
				}
				opts = append(opts, evm.WithFrom(sender))
			}

			simulator, err := evm.NewSimulator(client, address, opts...)
			if err != nil {
				return err
			}

			outcomes, err := simulator.SimulateOutcomes(cmd.Context(), packets)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), simulationReport{
				Eid:       eid,
				Simulator: address,
				Outcomes:  newOutcomeReports(outcomes),
			})
		},
	}

	cmd.Flags().StringVar(&packetsPath, "packets", "", "Path of a JSON file holding the packets to simulate")
	cmd.Flags().StringVar(&from, "from", "", "Sender of the simulation call")

	return &cmd
}
