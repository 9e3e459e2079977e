package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/sudostake/vault-indexer/internal/observability/tracing"
)

func IndexVaultCmd() *cobra.Command {
	var txHash string

	cmd := &cobra.Command{
		Use:   "index-vault <factory-id> <vault-id>",
		Short: "Syncs a single vault from chain into the database",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := tracing.InjectTraceID(cmd.Context())

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			service, cleanup, err := newService(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			var hash *string
			if cmd.Flags().Changed("tx-hash") {
				hash = &txHash
			}

			doc, err := service.SyncVault(ctx, args[0], args[1], hash)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}
	cmd.Flags().StringVar(&txHash, "tx-hash", "", "hash of the transaction that minted the vault")

	return cmd
}
