package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"school-fee-dashboard/internal/models"
	"school-fee-dashboard/internal/query"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TransactionRepositoryTestSuite is the test suite for Transaction repository
type TransactionRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo TransactionRepositoryInterface
	ctx  context.Context
	seq  int
}

// SetupTest runs before each test
func (s *TransactionRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	sqlDB, err := db.DB()
	require.NoError(s.T(), err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.School{}, &models.Transaction{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewTransactionRepository(db)
	s.ctx = context.Background()
	s.seq = 0
}

// TearDownTest runs after each test
func (s *TransactionRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestTransactionRepositoryTestSuite runs the test suite
func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}

func day(d, hour int) time.Time {
	return time.Date(2024, time.January, d, hour, 0, 0, 0, time.UTC)
}

// newTransaction builds an unsaved transaction with predictable ids and fake student data
func (s *TransactionRepositoryTestSuite) newTransaction(status models.TransactionStatus, amount int64, paidAt time.Time) *models.Transaction {
	s.seq++
	return &models.Transaction{
		CollectID:         fmt.Sprintf("COL-%03d", s.seq),
		CustomOrderID:     fmt.Sprintf("ORD-%03d", s.seq),
		SchoolID:          "school-1",
		Gateway:           "PhonePe",
		StudentName:       gofakeit.Name(),
		StudentID:         gofakeit.DigitN(6),
		StudentEmail:      gofakeit.Email(),
		OrderAmount:       decimal.NewFromInt(amount),
		TransactionAmount: decimal.NewFromInt(amount),
		Status:            status,
		PaymentTime:       paidAt,
	}
}

func (s *TransactionRepositoryTestSuite) insert(txs ...*models.Transaction) {
	for _, tx := range txs {
		require.NoError(s.T(), s.repo.Create(s.ctx, tx))
	}
}

func orderIDsOf(items []models.Transaction) []string {
	ids := make([]string, 0, len(items))
	for _, tx := range items {
		ids = append(ids, tx.CustomOrderID)
	}
	return ids
}

func (s *TransactionRepositoryTestSuite) list(mutate func(state *models.FilterState)) *models.PageResult {
	state := models.NewFilterState()
	if mutate != nil {
		mutate(&state)
	}
	result, err := s.repo.ListTransactions(s.ctx, query.Build(state))
	require.NoError(s.T(), err)
	return result
}

// TestCreate_ValidTransaction tests creating a valid transaction
func (s *TransactionRepositoryTestSuite) TestCreate_ValidTransaction() {
	tx := s.newTransaction(models.TransactionStatusSuccess, 100, day(1, 10))

	err := s.repo.Create(s.ctx, tx)
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, tx.ID)
	assert.False(s.T(), tx.CreatedAt.IsZero())
}

// TestCreate_NilTransaction tests creating a nil transaction
func (s *TransactionRepositoryTestSuite) TestCreate_NilTransaction() {
	err := s.repo.Create(s.ctx, nil)
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "transaction cannot be nil")
}

// TestCreate_DuplicateOrderID tests the unique custom order id
func (s *TransactionRepositoryTestSuite) TestCreate_DuplicateOrderID() {
	first := s.newTransaction(models.TransactionStatusSuccess, 100, day(1, 10))
	s.insert(first)

	second := s.newTransaction(models.TransactionStatusSuccess, 100, day(1, 11))
	second.CustomOrderID = first.CustomOrderID

	err := s.repo.Create(s.ctx, second)
	require.Error(s.T(), err)
}

// TestCreateBatch tests inserting many transactions at once
func (s *TransactionRepositoryTestSuite) TestCreateBatch() {
	batch := make([]models.Transaction, 0, 150)
	for i := 0; i < 150; i++ {
		batch = append(batch, *s.newTransaction(models.TransactionStatusPending, int64(i+1), day(2, 8)))
	}

	require.NoError(s.T(), s.repo.CreateBatch(s.ctx, batch))

	count, err := s.repo.Count(s.ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(150), count)
}

// TestCreateBatch_Empty tests that an empty batch is a no-op
func (s *TransactionRepositoryTestSuite) TestCreateBatch_Empty() {
	require.NoError(s.T(), s.repo.CreateBatch(s.ctx, nil))

	count, err := s.repo.Count(s.ctx)
	require.NoError(s.T(), err)
	assert.Zero(s.T(), count)
}

// TestGetByCustomOrderID tests lookup by order id
func (s *TransactionRepositoryTestSuite) TestGetByCustomOrderID() {
	tx := s.newTransaction(models.TransactionStatusFailed, 250, day(3, 9))
	s.insert(tx)

	found, err := s.repo.GetByCustomOrderID(s.ctx, tx.CustomOrderID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), tx.ID, found.ID)
	assert.Equal(s.T(), models.TransactionStatusFailed, found.Status)

	_, err = s.repo.GetByCustomOrderID(s.ctx, "ORD-missing")
	assert.ErrorIs(s.T(), err, ErrTransactionNotFound)
}

// TestGetRecent tests ordering by newest payment first
func (s *TransactionRepositoryTestSuite) TestGetRecent() {
	s.insert(
		s.newTransaction(models.TransactionStatusSuccess, 10, day(1, 10)),
		s.newTransaction(models.TransactionStatusSuccess, 10, day(5, 10)),
		s.newTransaction(models.TransactionStatusSuccess, 10, day(3, 10)),
	)

	recent, err := s.repo.GetRecent(s.ctx, 2)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"ORD-002", "ORD-003"}, orderIDsOf(recent))
}

// TestListTransactions_DefaultSortAndPaging tests the default newest-first listing
func (s *TransactionRepositoryTestSuite) TestListTransactions_DefaultSortAndPaging() {
	for i := 1; i <= 25; i++ {
		s.insert(s.newTransaction(models.TransactionStatusSuccess, 100, day(i, 12)))
	}

	result := s.list(func(state *models.FilterState) { state.SetPage(3) })

	assert.Equal(s.T(), int64(25), result.TotalCount)
	assert.Equal(s.T(), 3, result.TotalPages)
	assert.Equal(s.T(), 3, result.Page)
	assert.Equal(s.T(), []string{"ORD-005", "ORD-004", "ORD-003", "ORD-002", "ORD-001"}, orderIDsOf(result.Items))
}

// TestListTransactions_Filters tests status, school and gateway filters combined
func (s *TransactionRepositoryTestSuite) TestListTransactions_Filters() {
	a := s.newTransaction(models.TransactionStatusSuccess, 100, day(1, 10))
	b := s.newTransaction(models.TransactionStatusFailed, 100, day(2, 10))
	c := s.newTransaction(models.TransactionStatusSuccess, 100, day(3, 10))
	c.SchoolID = "school-2"
	d := s.newTransaction(models.TransactionStatusPending, 100, day(4, 10))
	d.Gateway = "Razorpay"
	s.insert(a, b, c, d)

	result := s.list(func(state *models.FilterState) {
		state.SetStatuses(models.TransactionStatusSuccess, models.TransactionStatusPending)
		state.SetSchoolIDs("school-1")
	})
	assert.Equal(s.T(), []string{"ORD-004", "ORD-001"}, orderIDsOf(result.Items))

	result = s.list(func(state *models.FilterState) { state.SetGateways("Razorpay") })
	assert.Equal(s.T(), []string{"ORD-004"}, orderIDsOf(result.Items))
	assert.Equal(s.T(), int64(1), result.TotalCount)
}

// TestListTransactions_DateRangeIncludesWholeEndDay tests that dateTo covers its whole calendar day
func (s *TransactionRepositoryTestSuite) TestListTransactions_DateRangeIncludesWholeEndDay() {
	before := s.newTransaction(models.TransactionStatusSuccess, 100, time.Date(2024, 1, 9, 23, 59, 59, 0, time.UTC))
	start := s.newTransaction(models.TransactionStatusSuccess, 100, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	late := s.newTransaction(models.TransactionStatusSuccess, 100, time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC))
	after := s.newTransaction(models.TransactionStatusSuccess, 100, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC))
	s.insert(before, start, late, after)

	result := s.list(func(state *models.FilterState) { state.SetDateRange("2024-01-10", "2024-01-15") })

	assert.Equal(s.T(), []string{late.CustomOrderID, start.CustomOrderID}, orderIDsOf(result.Items))
}

// TestListTransactions_MalformedDate tests that a bad date is reported rather than ignored
func (s *TransactionRepositoryTestSuite) TestListTransactions_MalformedDate() {
	params := query.Build(models.NewFilterState())
	params[query.KeyDateFrom] = "15/01/2024"

	_, err := s.repo.ListTransactions(s.ctx, params)
	require.Error(s.T(), err)
}

// TestListTransactions_Search tests case-insensitive search over name, order id and collect id
func (s *TransactionRepositoryTestSuite) TestListTransactions_Search() {
	a := s.newTransaction(models.TransactionStatusSuccess, 100, day(1, 10))
	a.StudentName = "Asha Verma"
	b := s.newTransaction(models.TransactionStatusSuccess, 100, day(2, 10))
	b.StudentName = "Rahul Singh"
	b.CollectID = "COL-ASHA-77"
	c := s.newTransaction(models.TransactionStatusSuccess, 100, day(3, 10))
	c.StudentName = "Meera_Iyer"
	s.insert(a, b, c)

	tests := []struct {
		search   string
		expected []string
	}{
		{search: "asha", expected: []string{"ORD-002", "ORD-001"}},
		{search: "ord-003", expected: []string{"ORD-003"}},
		{search: "_", expected: []string{"ORD-003"}},
		{search: "%", expected: []string{}},
		{search: "nobody", expected: []string{}},
	}

	for _, tt := range tests {
		s.Run(tt.search, func() {
			result := s.list(func(state *models.FilterState) { state.SetSearch(tt.search) })
			assert.Equal(s.T(), tt.expected, orderIDsOf(result.Items))
		})
	}
}

// TestListTransactions_Sort tests numeric and case-insensitive text ordering
func (s *TransactionRepositoryTestSuite) TestListTransactions_Sort() {
	a := s.newTransaction(models.TransactionStatusSuccess, 900, day(1, 10))
	a.StudentName = "bravo"
	b := s.newTransaction(models.TransactionStatusSuccess, 80, day(2, 10))
	b.StudentName = "Alpha"
	c := s.newTransaction(models.TransactionStatusSuccess, 1000, day(3, 10))
	c.StudentName = "charlie"
	s.insert(a, b, c)

	result := s.list(func(state *models.FilterState) { state.SetSort(models.SortByOrderAmount, models.SortAsc) })
	assert.Equal(s.T(), []string{"ORD-002", "ORD-001", "ORD-003"}, orderIDsOf(result.Items))

	result = s.list(func(state *models.FilterState) { state.SetSort(models.SortByStudentName, models.SortAsc) })
	assert.Equal(s.T(), []string{"ORD-002", "ORD-001", "ORD-003"}, orderIDsOf(result.Items))

	result = s.list(func(state *models.FilterState) { state.SetSort(models.SortByStudentName, models.SortDesc) })
	assert.Equal(s.T(), []string{"ORD-003", "ORD-001", "ORD-002"}, orderIDsOf(result.Items))
}

// TestListTransactions_EqualKeysTieBreak tests the deterministic secondary order
func (s *TransactionRepositoryTestSuite) TestListTransactions_EqualKeysTieBreak() {
	for i := 0; i < 4; i++ {
		s.insert(s.newTransaction(models.TransactionStatusPending, 100, day(1, 10)))
	}

	result := s.list(nil)
	assert.Equal(s.T(), []string{"ORD-001", "ORD-002", "ORD-003", "ORD-004"}, orderIDsOf(result.Items))
}

// TestListTransactions_Empty tests that no results is a valid state
func (s *TransactionRepositoryTestSuite) TestListTransactions_Empty() {
	result := s.list(nil)

	assert.True(s.T(), result.IsEmpty())
	assert.Equal(s.T(), 0, result.TotalPages)
	assert.NotNil(s.T(), result.Items)
}

// TestGetStats tests aggregation over every matching row
func (s *TransactionRepositoryTestSuite) TestGetStats() {
	success := s.newTransaction(models.TransactionStatusSuccess, 100, day(1, 10))
	success.OrderAmount = decimal.NewFromInt(120)
	pending := s.newTransaction(models.TransactionStatusPending, 50, day(2, 10))
	failed := s.newTransaction(models.TransactionStatusFailed, 30, day(3, 10))
	failed.TransactionAmount = decimal.Zero
	s.insert(success, pending, failed)

	stats, err := s.repo.GetStats(s.ctx, query.RequestParams{})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), int64(3), stats.TotalCount)
	assert.Equal(s.T(), int64(1), stats.SuccessCount)
	assert.Equal(s.T(), int64(1), stats.PendingCount)
	assert.Equal(s.T(), int64(1), stats.FailedCount)
	assert.InDelta(s.T(), 33.33, stats.SuccessRatePercent, 0.0001)
	assert.True(s.T(), decimal.NewFromInt(180).Equal(stats.TotalAmount), "got %s", stats.TotalAmount)
}

// TestGetStats_Filtered tests that stats honor the same filters as the listing
func (s *TransactionRepositoryTestSuite) TestGetStats_Filtered() {
	s.insert(
		s.newTransaction(models.TransactionStatusSuccess, 100, day(1, 10)),
		s.newTransaction(models.TransactionStatusSuccess, 100, day(2, 10)),
		s.newTransaction(models.TransactionStatusFailed, 100, day(3, 10)),
	)

	state := models.NewFilterState()
	state.SetStatuses(models.TransactionStatusFailed)

	stats, err := s.repo.GetStats(s.ctx, query.Build(state))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), stats.TotalCount)
	assert.Equal(s.T(), int64(0), stats.SuccessCount)
	assert.Equal(s.T(), 0.0, stats.SuccessRatePercent)
}

// TestGetStats_Empty tests that an empty table aggregates to zero
func (s *TransactionRepositoryTestSuite) TestGetStats_Empty() {
	stats, err := s.repo.GetStats(s.ctx, query.RequestParams{})
	require.NoError(s.T(), err)

	assert.Zero(s.T(), stats.TotalCount)
	assert.Equal(s.T(), 0.0, stats.SuccessRatePercent)
	assert.True(s.T(), stats.TotalAmount.IsZero())
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		field    models.SortField
		order    models.SortOrder
		expected string
	}{
		{models.SortByPaymentTime, models.SortDesc, "payment_time DESC"},
		{models.SortByOrderAmount, models.SortAsc, "order_amount ASC"},
		{models.SortByStudentName, models.SortAsc, "LOWER(student_name) ASC"},
		{"amount; DROP TABLE transactions", models.SortAsc, "payment_time ASC"},
		{models.SortByGateway, "sideways", "LOWER(gateway) DESC"},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			assert.Equal(t, tt.expected, orderClause(tt.field, tt.order))
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%`, escapeLike("50%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\x`, escapeLike(`c:\x`))
}

// TestListTransactions_DatabaseError tests that driver failures are wrapped
func TestListTransactions_DatabaseError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions"`).WillReturnError(fmt.Errorf("connection reset"))

	repo := NewTransactionRepository(db)
	_, err = repo.ListTransactions(context.Background(), query.Build(models.NewFilterState()))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count filtered transactions")
	assert.NoError(t, mock.ExpectationsWereMet())
}
