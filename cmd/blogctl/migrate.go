package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"blog-backend/internal/infrastructure/database"
)

func newMigrateCmd(app *cliApp) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database schema migrations",
	}

	// withMigrator mở Migrator, chạy fn rồi đóng connection
	withMigrator := func(fn func(*cobra.Command, *database.Migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			if err := app.loadConfig(); err != nil {
				return err
			}
			mg, err := database.NewMigrator(app.cfg.Database.URL())
			if err != nil {
				return err
			}
			defer mg.Close()
			return fn(cmd, mg)
		}
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, mg *database.Migrator) error {
				return mg.Up()
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, mg *database.Migrator) error {
				return mg.Down()
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, mg *database.Migrator) error {
				v, dirty, err := mg.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
				return nil
			}),
		},
	)
	return migrateCmd
}
