package precrime

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/StreamDefi/precrime/codec"
)

func buildDecodeResultCmd() *cobra.Command {
	var payload string

	cmd := cobra.Command{
		Use:   "decode-result",
		Short: "Decodes an encoded simulation result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if payload == "" {
				return errors.New("--payload is required")
			}

			raw, err := hexutil.Decode(payload)
			if err != nil {
				return fmt.Errorf("--payload: %w", err)
			}

			outcomes, err := codec.Decode(raw)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), newOutcomeReports(outcomes))
		},
	}

	cmd.Flags().StringVar(&payload, "payload", "", "Encoded result as 0x prefixed hex")

	return &cmd
}
