package precrime

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/StreamDefi/precrime/internal/utils/safecast"
	"github.com/StreamDefi/precrime/sdk/evm"
)

func newInspector(tgt *target) (*evm.Inspector, func(), error) {
	eid, err := tgt.chain()
	if err != nil {
		return nil, nil, err
	}
	address, err := tgt.address()
	if err != nil {
		return nil, nil, err
	}

	client, err := dialRPC(eid)
	if err != nil {
		return nil, nil, err
	}

	inspector, err := evm.NewInspector(client, address)
	if err != nil {
		client.Close()
		return nil, nil, err
	}

	return inspector, client.Close, nil
}

func buildIsPeerCmd(tgt *target) *cobra.Command {
	var (
		srcEid uint64
		peer   string
	)

	cmd := cobra.Command{
		Use:   "is-peer",
		Short: "Checks whether a sender is a trusted peer of the OApp",
		RunE: func(cmd *cobra.Command, args []string) error {
			eid, err := safecast.ToEID(srcEid)
			if err != nil {
				return err
			}
			if peer == "" {
				return fmt.Errorf("--peer is required")
			}

			inspector, closeFn, err := newInspector(tgt)
			if err != nil {
				return err
			}
			defer closeFn()

			trusted, err := inspector.IsPeer(cmd.Context(), eid, common.HexToHash(peer))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%t\n", trusted)

			return nil
		},
	}

	cmd.Flags().Uint64Var(&srcEid, "src-eid", 0, "Endpoint id of the source chain")
	cmd.Flags().StringVar(&peer, "peer", "", "Sender on the source chain as bytes32 hex")

	return &cmd
}

func buildInfoCmd(tgt *target) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Shows the OApp and PreCrime linked to the simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			inspector, closeFn, err := newInspector(tgt)
			if err != nil {
				return err
			}
			defer closeFn()

			link, err := inspector.Link(cmd.Context())
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), link)
		},
	}
}
