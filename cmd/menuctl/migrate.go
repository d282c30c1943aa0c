package main

import (
	"github.com/lavaresto/menu_backend/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return database.RunMigrations(opts.cfg.DatabaseURL, opts.cfg.MigrationsPath, opts.logger)
		},
	}
}
