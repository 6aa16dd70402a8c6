package main

import (
	"errors"

	"github.com/SscSPs/sales_notes_service/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back the database schema",
	Example:   "  sales_notes_backend migrate up\n  sales_notes_backend migrate down",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"up", "down"},
	RunE:      runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}
	if !cfg.UsesDatabase() {
		return errors.New("PGSQL_URL must be set to run migrations")
	}

	var direction database.MigrationDirection
	switch args[0] {
	case "up":
		direction = database.MigrateUp
	case "down":
		direction = database.MigrateDown
	default:
		return errors.New(`migration direction must be "up" or "down"`)
	}

	return database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, direction, logger)
}
