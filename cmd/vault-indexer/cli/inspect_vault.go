package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/sudostake/vault-indexer/internal/observability/tracing"
)

func InspectVaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect-vault <factory-id> <vault-id>",
		Short: "Prints the live state of a vault with its APR and unstake maturity",
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

			inspection, err := service.InspectVault(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(inspection)
		},
	}

	return cmd
}
