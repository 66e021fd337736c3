package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := connect(ctx)
			if err != nil {
				return err
			}
			defer env.Close()

			applied, err := database.Migrate(ctx, env.db)
			if err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}

			out := cmd.OutOrStdout()
			for _, name := range applied {
				_, _ = color.New(color.FgCyan).Fprintf(out, "applied %s\n", name)
			}
			_, _ = color.New(color.FgGreen).Fprintf(out, "Database schema for %s is up to date\n", env.cfg.Database.Driver)
			return nil
		},
	}
}
