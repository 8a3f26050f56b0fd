package precrime

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/spf13/cobra"

	"github.com/StreamDefi/precrime/internal/utils/safecast"
	"github.com/StreamDefi/precrime/sdk/evm"
)

func buildSetPreCrimeCmd(tgt *target) *cobra.Command {
	var (
		preCrime string
		chainID  uint64
	)

	cmd := cobra.Command{
		Use:   "set-precrime",
		Short: "Links a PreCrime judge to the simulator",
		Long:  `Configure a private key in a .env file (using the PRIVATE_KEY var). The key must belong to the OApp owner.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eid, err := tgt.chain()
			if err != nil {
				return err
			}
			address, err := tgt.address()
			if err != nil {
				return err
			}
			judge, err := parseAddress("precrime", preCrime)
			if err != nil {
				return err
			}
			id, err := safecast.Uint64ToInt64(chainID)
			if err != nil {
				return fmt.Errorf("--chain-id: %w", err)
			}

			pk, err := loadPrivateKey()
			if err != nil {
				return err
			}

			auth, err := bind.NewKeyedTransactorWithChainID(pk, big.NewInt(id))
			if err != nil {
				return err
			}

			client, err := dialRPC(eid)
			if err != nil {
				return err
			}
			defer client.Close()

			configurer := evm.NewConfigurer(client, auth)
			tx, err := configurer.SetPreCrime(cmd.Context(), address, judge)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transaction sent: %s\n", tx.Hash().Hex())

			set, err := configurer.WaitPreCrimeSet(cmd.Context(), tx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PreCrime set to %s\n", set.Hex())

			return nil
		},
	}

	cmd.Flags().StringVar(&preCrime, "precrime", "", "Address of the PreCrime judge")
	cmd.Flags().Uint64Var(&chainID, "chain-id", 0, "EVM chain id used to sign the transaction")

	return &cmd
}
