package main

import (
	"fmt"
	"log/slog"

	"school-fee-dashboard/internal/config"
	"school-fee-dashboard/internal/database"
	"school-fee-dashboard/internal/server"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP API",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd, map[string]string{
				"server.port":    "port",
				"listing.source": "source",
			})
		},
		RunE: runServe,
	}

	cmd.Flags().String("port", "", "listen port (overrides SERVER_PORT)")
	cmd.Flags().String("source", "", "transaction source: database or upstream (overrides LISTING_SOURCE)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := slog.Default()

	var gormDB *gorm.DB
	if cfg.Dashboard.ListingSource == config.ListingSourceDatabase {
		db, err := database.Initialize(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer func() { _ = db.Close() }()
		gormDB = db.DB
	}

	srv, err := server.New(cfg, gormDB, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(cmd.Context())
}
