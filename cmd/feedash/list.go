package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"school-fee-dashboard/internal/config"
	"school-fee-dashboard/internal/database"
	"school-fee-dashboard/internal/models"
	"school-fee-dashboard/internal/query"
	"school-fee-dashboard/internal/server"
	"school-fee-dashboard/internal/services"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type listOutput struct {
	Query      string               `json:"query"`
	Pagination services.PageInfo    `json:"pagination"`
	Stats      models.StatsSummary  `json:"stats"`
	Data       []models.Transaction `json:"data"`
	Empty      bool                 `json:"empty"`
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "Run one dashboard query and print the page as JSON",
		Example: `  feedash list 'status=FAILED&sort=order_amount&order=desc'
  feedash list 'school_id=SCH-001' --all-stats --pages 3`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd, map[string]string{"listing.source": "source"})
		},
		RunE: runList,
	}

	cmd.Flags().Bool("all-stats", false, "aggregate stats over every matching transaction")
	cmd.Flags().Int("pages", 1, "number of consecutive pages to print")
	cmd.Flags().String("source", "", "transaction source: database or upstream (overrides LISTING_SOURCE)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	allStats, _ := cmd.Flags().GetBool("all-stats")
	pages, _ := cmd.Flags().GetInt("pages")

	rawQuery := ""
	if len(args) == 1 {
		rawQuery = args[0]
		if i := strings.IndexByte(rawQuery, '?'); i >= 0 {
			rawQuery = rawQuery[i+1:]
		}
	}

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

	metrics := services.NewNoopMetrics()
	queryLogger := services.NewQueryLogger(logger)

	source, _, err := server.NewSource(cfg, gormDB, logger, metrics, queryLogger)
	if err != nil {
		return err
	}

	state := query.Decode(rawQuery)
	if state.PageSize > cfg.Dashboard.MaxPageSize {
		state.PageSize = cfg.Dashboard.MaxPageSize
	}

	opts := []services.ViewOption{
		services.WithSource(cfg.Dashboard.ListingSource),
		services.WithPageWindow(cfg.Dashboard.PageWindow),
		services.WithViewLogger(queryLogger),
	}
	if allStats {
		opts = append(opts, services.WithStatsProvider(source))
	}
	view := services.NewTransactionView(source, state, opts...)

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	for i := 0; i < pages; i++ {
		if i > 0 {
			before := view.State().Page
			view.Next()
			if view.State().Page == before {
				break
			}
		}

		snapshot, err := view.Refresh(cmd.Context())
		if err != nil {
			return err
		}

		if err := encoder.Encode(listOutput{
			Query:      snapshot.Query,
			Pagination: snapshot.Pagination,
			Stats:      snapshot.Stats,
			Data:       snapshot.Result.Items,
			Empty:      snapshot.Result.IsEmpty(),
		}); err != nil {
			return err
		}
	}

	return nil
}
