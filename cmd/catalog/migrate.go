package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mytheresa/catalog-browser/app/config"
	"github.com/mytheresa/catalog-browser/app/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the categories and products tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn := cfg.DatabaseDSN()

		if cfg.Gateway == config.GatewayGorm {
			db, closeDB, err := database.NewGorm(dsn)
			if err != nil {
				return err
			}
			defer closeDB()
			if err := database.MigrateGorm(db); err != nil {
				return err
			}
		} else {
			db, err := database.OpenSQL(cmd.Context(), cfg.SQLDriver, dsn)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := database.MigrateSQL(cmd.Context(), db, cfg.SQLDriver); err != nil {
				return err
			}
		}

		logger.Info("schema migrated", "gateway", cfg.Gateway)
		fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
		return nil
	},
}
