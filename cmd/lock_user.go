package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLockUserCmd creates the lock-user subcommand.
func NewLockUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock-user <email>",
		Short: "Lock a user account and revoke its sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			c, err := newContainer(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer c.Close()

			revoked, err := c.userService.Lock(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to lock user: %w", err)
			}

			cmd.Printf("User %s locked, %d session(s) revoked\n", args[0], revoked)
			return nil
		},
	}
}
