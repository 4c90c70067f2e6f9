package main

import (
	"github.com/spf13/cobra"

	"ubuntuhub/internal/config"
	"ubuntuhub/internal/database"
	"ubuntuhub/internal/database/migration"
	"ubuntuhub/internal/logging"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logging.New(cmd.OutOrStdout(), cfg.Location())

			db, err := database.NewPostgres(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			return migration.EnsureMigrated(cmd.Context(), db, log, cfg.Database.Host)
		},
	}
}
