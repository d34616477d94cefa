package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"school-fee-dashboard/internal/models"
	"school-fee-dashboard/internal/query"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface on top of GORM
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// ListTransactions retrieves one page of transactions with filters, search and sort applied
func (r *transactionRepository) ListTransactions(ctx context.Context, params query.RequestParams) (*models.PageResult, error) {
	state := params.Filters()

	filtered, err := r.filtered(ctx, params)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	transactions := make([]models.Transaction, 0, state.PageSize)
	if err := filtered.
		Order(orderClause(state.SortField, state.SortOrder)).
		Order("custom_order_id ASC").
		Offset((state.Page - 1) * state.PageSize).
		Limit(state.PageSize).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return &models.PageResult{
		Items:      transactions,
		TotalCount: total,
		TotalPages: models.TotalPagesFor(total, state.PageSize),
		Page:       state.Page,
		PageSize:   state.PageSize,
	}, nil
}

type statsRow struct {
	TotalCount   int64
	SuccessCount int64
	PendingCount int64
	FailedCount  int64
	TotalAmount  decimal.NullDecimal
}

// GetStats aggregates counts and the reported amount over all matching rows in one query
func (r *transactionRepository) GetStats(ctx context.Context, params query.RequestParams) (*models.StatsSummary, error) {
	filtered, err := r.filtered(ctx, params)
	if err != nil {
		return nil, err
	}

	var row statsRow
	if err := filtered.Select(`
		COUNT(*) AS total_count,
		COALESCE(SUM(CASE WHEN status = 'SUCCESS' THEN 1 ELSE 0 END), 0) AS success_count,
		COALESCE(SUM(CASE WHEN status = 'PENDING' THEN 1 ELSE 0 END), 0) AS pending_count,
		COALESCE(SUM(CASE WHEN status = 'FAILED' THEN 1 ELSE 0 END), 0) AS failed_count,
		SUM(CASE
			WHEN status = 'SUCCESS' THEN transaction_amount
			WHEN status IN ('PENDING', 'FAILED') THEN order_amount
			ELSE 0
		END) AS total_amount`).
		Scan(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}

	total := decimal.Zero
	if row.TotalAmount.Valid {
		total = row.TotalAmount.Decimal
	}

	return &models.StatsSummary{
		TotalCount:         row.TotalCount,
		SuccessCount:       row.SuccessCount,
		PendingCount:       row.PendingCount,
		FailedCount:        row.FailedCount,
		SuccessRatePercent: query.SuccessRate(row.SuccessCount, row.TotalCount),
		TotalAmount:        total,
	}, nil
}

// GetByCustomOrderID retrieves a transaction by the merchant-side order id
func (r *transactionRepository) GetByCustomOrderID(ctx context.Context, customOrderID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).Where("custom_order_id = ?", customOrderID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by custom order id: %w", err)
	}
	return &transaction, nil
}

// GetRecent retrieves the latest transactions by payment time
func (r *transactionRepository) GetRecent(ctx context.Context, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Order("payment_time DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&transactions, 100).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// Count returns the number of stored transactions
func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// filtered builds the WHERE clause shared by listing and aggregation
func (r *transactionRepository) filtered(ctx context.Context, params query.RequestParams) (*gorm.DB, error) {
	state := params.Filters()

	from, to, err := query.DateBounds(params)
	if err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Model(&models.Transaction{})

	if len(state.Statuses) > 0 {
		q = q.Where("status IN ?", state.Statuses)
	}
	if len(state.SchoolIDs) > 0 {
		q = q.Where("school_id IN ?", state.SchoolIDs)
	}
	if len(state.Gateways) > 0 {
		q = q.Where("gateway IN ?", state.Gateways)
	}
	if !from.IsZero() {
		q = q.Where("payment_time >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("payment_time <= ?", to)
	}
	if state.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(state.Search)) + "%"
		q = q.Where(
			`(LOWER(student_name) LIKE ? ESCAPE '\' OR LOWER(custom_order_id) LIKE ? ESCAPE '\' OR LOWER(collect_id) LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern,
		)
	}

	return q.Session(&gorm.Session{}), nil
}

// orderClause renders a whitelisted ORDER BY term. Text columns sort case-insensitively.
func orderClause(field models.SortField, order models.SortOrder) string {
	if !models.IsValidSortField(string(field)) {
		field = models.DefaultSortField
	}
	direction := "DESC"
	if order == models.SortAsc {
		direction = "ASC"
	}

	column := field.Column()
	if !field.IsTimestamp() && !field.IsAmount() {
		column = "LOWER(" + column + ")"
	}
	return column + " " + direction
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
