package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/freejob-server/database"
	"github.com/dtroode/freejob-server/internal/config"
)

// NewMigrateCmd creates the migrate subcommand with up, down and version actions.
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := database.Migrate(cmd.Context(), cfg.Database.DSN); err != nil {
				return err
			}
			cmd.Println("Migrations applied")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revert the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := database.Rollback(cmd.Context(), cfg.Database.DSN); err != nil {
				return err
			}
			cmd.Println("Last migration reverted")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			version, err := database.Version(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return err
			}
			cmd.Printf("Schema version: %d\n", version)
			return nil
		},
	})

	return cmd
}
