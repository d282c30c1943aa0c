package main

import (
	"log/slog"

	"github.com/lavaresto/menu_backend/internal/platform/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logger *slog.Logger
	cfg    *config.Config
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	opts := &rootOptions{logger: logger}

	cmd := &cobra.Command{
		Use:           "menuctl",
		Short:         "Operator tools for the Lava Resto menu backend",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.AddCommand(
		newMigrateCmd(opts),
		newSeedCmd(opts),
		newPriceCmd(opts),
	)
	return cmd
}
