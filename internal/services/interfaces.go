package services

import (
	"context"
	"time"

	"school-fee-dashboard/internal/models"
	"school-fee-dashboard/internal/query"
)

// TransactionLister returns one page of transactions for a set of request params.
// The local repository and the upstream payments API both implement it.
type TransactionLister interface {
	ListTransactions(ctx context.Context, params query.RequestParams) (*models.PageResult, error)
}

// StatsProvider aggregates every transaction matching params, not just one page
type StatsProvider interface {
	GetStats(ctx context.Context, params query.RequestParams) (*models.StatsSummary, error)
}

// SchoolTransactionLister serves the per-school listing when a source has a dedicated endpoint for it
type SchoolTransactionLister interface {
	ListSchoolTransactions(ctx context.Context, schoolID string, params query.RequestParams) (*models.PageResult, error)
}

type TransactionFinder interface {
	GetByCustomOrderID(ctx context.Context, customOrderID string) (*models.Transaction, error)
}

type RecentTransactionLister interface {
	GetRecent(ctx context.Context, limit int) ([]models.Transaction, error)
}

type SchoolLister interface {
	ListSchools(ctx context.Context) ([]models.School, error)
}

// TransactionSource is the full read surface of a transaction backend
type TransactionSource interface {
	TransactionLister
	StatsProvider
	TransactionFinder
	RecentTransactionLister
	SchoolLister
}

// UpstreamClientInterface is the remote payments API
type UpstreamClientInterface interface {
	TransactionSource
	SchoolTransactionLister
	Ping(ctx context.Context) error
}

// TransactionQueryServiceInterface runs the query engine for one listing request
type TransactionQueryServiceInterface interface {
	List(ctx context.Context, rawQuery string, scope StatsScope) (*TransactionListing, error)
	ListForSchool(ctx context.Context, schoolID, rawQuery string, scope StatsScope) (*TransactionListing, error)
	GetStatus(ctx context.Context, customOrderID string) (*models.Transaction, error)
}

// DashboardServiceInterface builds the overview screen
type DashboardServiceInterface interface {
	GetOverview(ctx context.Context) (*DashboardOverview, error)
}

// TransactionSeederInterface generates realistic fee payments for local development
type TransactionSeederInterface interface {
	Generate(count int, schools []models.School) []models.Transaction
	Seed(ctx context.Context, count int) (int, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// QueryLoggerInterface records structured events around transaction queries
type QueryLoggerInterface interface {
	LogQueryStarted(ctx context.Context, source string, params query.RequestParams)
	LogQueryCompleted(ctx context.Context, source string, resultCount int, totalCount int64, duration time.Duration)
	LogQueryFailed(ctx context.Context, source string, errorMsg string, duration time.Duration)
	LogStaleResponse(ctx context.Context, sequence, latest uint64)
	LogPageClamped(ctx context.Context, requested, clamped int)
	LogUpstreamRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState CircuitBreakerState)
}
