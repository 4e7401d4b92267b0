package main

import (
	"github.com/spf13/cobra"

	"github.com/sundayezeilo/linkshort/internal/db"
)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := db.Migrate(e.dbConfig.URL(), e.logger); err != nil {
				return err
			}
			printf(cmd, "migrations applied\n")
			return nil
		},
	}
}
