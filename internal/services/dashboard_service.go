package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"school-fee-dashboard/internal/config"
	"school-fee-dashboard/internal/models"
	"school-fee-dashboard/internal/query"

	"golang.org/x/sync/errgroup"
)

// DashboardOverview is the landing screen: dataset-level stats and the latest payments
type DashboardOverview struct {
	Stats              models.StatsSummary  `json:"stats"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
	Source             string               `json:"source"`
	GeneratedAt        time.Time            `json:"generated_at"`
}

type DashboardService struct {
	lister        TransactionLister
	recent        RecentTransactionLister
	statsProvider StatsProvider
	config        *config.DashboardConfig
	logger        *slog.Logger
	metrics       MetricsRecorderInterface
	now           func() time.Time
}

// NewDashboardService creates the overview service. statsProvider may be nil, in which
// case stats are summarized from the largest page the lister will serve.
func NewDashboardService(
	lister TransactionLister,
	recent RecentTransactionLister,
	statsProvider StatsProvider,
	cfg *config.DashboardConfig,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) DashboardServiceInterface {
	return &DashboardService{
		lister:        lister,
		recent:        recent,
		statsProvider: statsProvider,
		config:        cfg,
		logger:        logger,
		metrics:       metrics,
		now:           time.Now,
	}
}

// GetOverview loads stats and recent transactions concurrently
func (s *DashboardService) GetOverview(ctx context.Context) (*DashboardOverview, error) {
	var (
		stats  *models.StatsSummary
		recent []models.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.loadStats(gctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recent, err = s.recent.GetRecent(gctx, s.config.RecentCount)
		if err != nil {
			return fmt.Errorf("load recent transactions: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to load dashboard overview", "error", err)
		s.metrics.IncrementCounter("dashboard.load", map[string]string{"status": "failed"})
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	if stats == nil {
		empty := query.Summarize(nil, 0)
		stats = &empty
	}
	if recent == nil {
		recent = []models.Transaction{}
	}
	if len(recent) > s.config.RecentCount {
		recent = recent[:s.config.RecentCount]
	}

	s.metrics.IncrementCounter("dashboard.load", map[string]string{"status": "success"})

	return &DashboardOverview{
		Stats:              *stats,
		RecentTransactions: recent,
		Source:             s.config.ListingSource,
		GeneratedAt:        s.now().UTC(),
	}, nil
}

func (s *DashboardService) loadStats(ctx context.Context) (*models.StatsSummary, error) {
	params := query.Build(models.NewFilterState())

	if s.statsProvider != nil {
		return s.statsProvider.GetStats(ctx, params)
	}

	state := models.NewFilterState()
	state.SetPageSize(s.config.MaxPageSize)
	result, err := s.lister.ListTransactions(ctx, query.Build(state))
	if err != nil {
		return nil, err
	}
	if result == nil {
		// GetOverview substitutes the empty summary
		return nil, nil
	}
	stats := query.Summarize(result.Items, result.TotalCount)
	return &stats, nil
}
