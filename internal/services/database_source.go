package services

import (
	"context"

	"school-fee-dashboard/internal/models"
	"school-fee-dashboard/internal/query"
	"school-fee-dashboard/internal/repositories"
)

// DatabaseSource serves the dashboard from the local database
type DatabaseSource struct {
	transactions repositories.TransactionRepositoryInterface
	schools      repositories.SchoolRepositoryInterface
}

func NewDatabaseSource(
	transactionRepo repositories.TransactionRepositoryInterface,
	schoolRepo repositories.SchoolRepositoryInterface,
) TransactionSource {
	return &DatabaseSource{
		transactions: transactionRepo,
		schools:      schoolRepo,
	}
}

func (s *DatabaseSource) ListTransactions(ctx context.Context, params query.RequestParams) (*models.PageResult, error) {
	return s.transactions.ListTransactions(ctx, params)
}

func (s *DatabaseSource) GetStats(ctx context.Context, params query.RequestParams) (*models.StatsSummary, error) {
	return s.transactions.GetStats(ctx, params)
}

func (s *DatabaseSource) GetByCustomOrderID(ctx context.Context, customOrderID string) (*models.Transaction, error) {
	return s.transactions.GetByCustomOrderID(ctx, customOrderID)
}

func (s *DatabaseSource) GetRecent(ctx context.Context, limit int) ([]models.Transaction, error) {
	return s.transactions.GetRecent(ctx, limit)
}

func (s *DatabaseSource) ListSchools(ctx context.Context) ([]models.School, error) {
	return s.schools.ListSchools(ctx)
}
