package main

import (
	"errors"
	"fmt"

	"github.com/conorfennell/notehash/internal/auth"
	"github.com/conorfennell/notehash/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDBCmd(a *app) *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Inspect or reset the notes database",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(db *storage.DB) error {
				version, dirty, err := db.SchemaVersion(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	}

	var force bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and recreate the notes table, deleting every note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("reset deletes every note; pass --force to continue")
			}
			return a.withStore(cmd.Context(), func(db *storage.DB) error {
				if err := db.Reset(cmd.Context()); err != nil {
					return err
				}
				a.log.Warn("Database reset", zap.String("path", a.cfg.DB.Path))
				fmt.Fprintln(cmd.OutOrStdout(), "Database reset")
				return nil
			})
		},
	}
	resetCmd.Flags().BoolVar(&force, "force", false, "Confirm that all notes may be deleted")

	dbCmd.AddCommand(versionCmd, resetCmd)
	return dbCmd
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password PASSWORD",
		Short: "Print a bcrypt hash for the auth.hash setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
