package main

import (
	"fmt"
	"log/slog"

	"github.com/lavaresto/menu_backend/internal/core/services"
	"github.com/lavaresto/menu_backend/internal/middleware"
	"github.com/lavaresto/menu_backend/internal/repositories/database/pgsql"
	"github.com/lavaresto/menu_backend/internal/seed"
	"github.com/lavaresto/menu_backend/pkg/database"
	"github.com/spf13/cobra"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var (
		file        string
		withMigrate bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the menu with a seed file",
		Long: `Replace every category and item with the contents of a seed file, then
upsert the settings and the listed admins. Offers and admins missing from the
file are left untouched. Without --file the built-in Lava Resto menu is loaded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				f   *seed.File
				err error
			)
			if file == "" {
				f, err = seed.Default()
			} else {
				f, err = seed.LoadFile(file)
			}
			if err != nil {
				return err
			}

			snapshot, err := f.Snapshot()
			if err != nil {
				return fmt.Errorf("invalid seed file: %w", err)
			}

			if withMigrate {
				if err := database.RunMigrations(opts.cfg.DatabaseURL, opts.cfg.MigrationsPath, opts.logger); err != nil {
					return err
				}
			}

			ctx := middleware.WithLogger(cmd.Context(), opts.logger)
			pool, err := database.NewPgxPool(ctx, opts.cfg.DatabaseURL, true)
			if err != nil {
				return err
			}
			defer database.ClosePgxPool(pool)

			if err := services.NewSeedService(pgsql.NewMenuSeeder(pool)).Seed(ctx, snapshot); err != nil {
				return err
			}

			opts.logger.Info("Seed complete", slog.String("source", sourceName(file)))
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d categories, %d items and %d admins\n",
				len(snapshot.Categories), len(snapshot.Items), len(snapshot.Admins))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "seed YAML file (defaults to the built-in menu)")
	cmd.Flags().BoolVar(&withMigrate, "migrate", false, "apply pending migrations before seeding")
	return cmd
}

func sourceName(file string) string {
	if file == "" {
		return "built-in"
	}
	return file
}
