package main

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"temple-admin/internal/database"
)

var migrateSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down|version]",
	Short: "Apply, roll back or inspect SQL migrations",
	Long: `Run the SQL migrations under DB_MIGRATIONS_PATH (default db/migrations).

Examples:
  # Apply every pending migration
  temple-api migrate up

  # Roll back the last migration
  temple-api migrate down --steps 1

  # Show the current schema version
  temple-api migrate version`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "version"},
	RunE:      runMigrate,
}

func init() {
	migrateCmd.Flags().IntVar(&migrateSteps, "steps", 1, "number of migrations to roll back with down (0 rolls back all)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer sqlDB.Close()

	runner := database.NewMigrationRunner(sqlDB, cfg.Database.MigrationsPath)
	if err := runner.WaitForDatabase(); err != nil {
		return err
	}

	switch args[0] {
	case "up":
		if err := runner.RunMigrations(); err != nil {
			return err
		}
		return runner.LoadSeeds()
	case "down":
		return runner.Rollback(migrateSteps)
	default:
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			return fmt.Errorf("failed to read migration version: %w", err)
		}
		logger.Info("migration status", "version", version, "dirty", dirty)
		fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
		return nil
	}
}
