package main

import (
	"fmt"
	"log/slog"

	"school-fee-dashboard/internal/database"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
		Long: `Apply, roll back or inspect the embedded SQL migrations for the
configured database driver (postgres or sqlite).`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrationRunner(func(runner *database.MigrationRunner) error {
				if err := runner.WaitForDatabase(); err != nil {
					return err
				}
				return runner.RunMigrations()
			})
		},
	})

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			return withMigrationRunner(func(runner *database.MigrationRunner) error {
				if err := runner.Rollback(steps); err != nil {
					return err
				}
				slog.Info("Rolled back migrations", "steps", steps)
				return nil
			})
		},
	}
	down.Flags().Int("steps", 1, "number of migrations to roll back")
	cmd.AddCommand(down)

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrationRunner(func(runner *database.MigrationRunner) error {
				version, dirty, err := runner.GetMigrationStatus()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version: %d\ndirty: %t\n", version, dirty)
				return nil
			})
		},
	})

	return cmd
}

func withMigrationRunner(fn func(runner *database.MigrationRunner) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.New(&cfg.Database, slog.Default())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	return fn(database.NewMigrationRunner(sqlDB, cfg.Database.Driver, slog.Default()))
}
