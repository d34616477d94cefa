package main

import (
	"fmt"
	"log/slog"

	"school-fee-dashboard/internal/database"
	"school-fee-dashboard/internal/repositories"
	"school-fee-dashboard/internal/services"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate realistic fee payments for local development",
		RunE:  runSeed,
	}

	cmd.Flags().Int("count", 500, "number of transactions to generate")
	cmd.Flags().Uint64("seed", 0, "random seed; 0 picks a random one")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	var opts []services.SeederOption
	if !noProgress {
		bar := newSeedProgressBar(cmd, count)
		opts = append(opts, services.WithSeedProgress(func(stored, _ int) {
			if err := bar.Set(stored); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}))
	}

	seeder := services.NewTransactionSeeder(
		repositories.NewTransactionRepository(db.DB),
		repositories.NewSchoolRepository(db.DB),
		seed,
		slog.Default(),
		services.NewNoopMetrics(),
		opts...,
	)

	created, err := seeder.Seed(cmd.Context(), count)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d transactions\n", created)
	return nil
}

func newSeedProgressBar(cmd *cobra.Command, total int) *progressbar.ProgressBar {
	out := cmd.ErrOrStderr()
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Seeding transactions..."),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(out)
		}),
	)
}
