package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Without a subcommand it starts the server.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "freejob",
		Short:        "FreeJob job board API server",
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewLockUserCmd())

	return cmd
}
