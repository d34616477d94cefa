package repositories

import (
	"context"

	"school-fee-dashboard/internal/models"
	"school-fee-dashboard/internal/query"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	// ListTransactions returns one page of transactions matching params
	ListTransactions(ctx context.Context, params query.RequestParams) (*models.PageResult, error)
	// GetStats aggregates every transaction matching params; empty params aggregate the whole table
	GetStats(ctx context.Context, params query.RequestParams) (*models.StatsSummary, error)
	GetByCustomOrderID(ctx context.Context, customOrderID string) (*models.Transaction, error)
	GetRecent(ctx context.Context, limit int) ([]models.Transaction, error)
	Create(ctx context.Context, transaction *models.Transaction) error
	CreateBatch(ctx context.Context, transactions []models.Transaction) error
	Count(ctx context.Context) (int64, error)
}

// SchoolRepositoryInterface defines the contract for school repository operations
type SchoolRepositoryInterface interface {
	ListSchools(ctx context.Context) ([]models.School, error)
	GetByID(ctx context.Context, id string) (*models.School, error)
	Create(ctx context.Context, school *models.School) error
	// EnsureExists inserts each school that is not yet present and leaves existing rows untouched
	EnsureExists(ctx context.Context, schools []models.School) error
}
