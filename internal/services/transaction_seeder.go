package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"school-fee-dashboard/internal/models"
	"school-fee-dashboard/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	seedWindowDays     = 90
	defaultSeedSchools = 5
	businessHoursStart = 6
	businessHoursEnd   = 22
	minFeeAmount       = 500.00
	maxFeeAmount       = 25000.00
	seedChunkSize      = 250
)

var (
	seedGateways     = []string{"PhonePe", "Razorpay", "Cashfree", "Paytm", "PayU"}
	seedPaymentModes = []string{"upi", "netbanking", "credit_card", "debit_card", "wallet"}
	seedSchoolKinds  = []string{"Public School", "Academy", "High School", "Convent School", "Vidyalaya"}
	seedFailures     = []string{
		"payment declined by issuing bank",
		"transaction timed out at gateway",
		"insufficient funds",
		"UPI collect request expired",
		"card authentication failed",
	}
)

type transactionSeeder struct {
	transactions repositories.TransactionRepositoryInterface
	schools      repositories.SchoolRepositoryInterface
	faker        *gofakeit.Faker
	logger       *slog.Logger
	metrics      MetricsRecorderInterface
	now          func() time.Time
	progress     func(stored, total int)
}

// SeederOption configures a transaction seeder
type SeederOption func(*transactionSeeder)

// WithSeedProgress reports the running number of stored transactions after each chunk
func WithSeedProgress(fn func(stored, total int)) SeederOption {
	return func(g *transactionSeeder) {
		g.progress = fn
	}
}

// NewTransactionSeeder creates a generator of fee payments. A zero seed picks a random one.
func NewTransactionSeeder(
	transactionRepo repositories.TransactionRepositoryInterface,
	schoolRepo repositories.SchoolRepositoryInterface,
	seed uint64,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
	opts ...SeederOption,
) TransactionSeederInterface {
	g := &transactionSeeder{
		transactions: transactionRepo,
		schools:      schoolRepo,
		faker:        gofakeit.New(seed),
		logger:       logger,
		metrics:      metrics,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds count transactions spread over the last 90 days across schools.
// Roughly 70% succeed, 15% are pending and 15% fail.
func (g *transactionSeeder) Generate(count int, schools []models.School) []models.Transaction {
	if count <= 0 || len(schools) == 0 {
		return []models.Transaction{}
	}

	end := g.now().UTC()
	start := end.AddDate(0, 0, -seedWindowDays)

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		school := schools[g.faker.IntRange(0, len(schools)-1)]
		transactions = append(transactions, g.generateTransaction(i, school.ID, start, end))
	}
	return transactions
}

func (g *transactionSeeder) generateTransaction(index int, schoolID string, start, end time.Time) models.Transaction {
	paymentTime := g.generateTimestamp(start, end)
	orderAmount := decimal.NewFromFloat(g.faker.Float64Range(minFeeAmount, maxFeeAmount)).Round(2)

	tx := models.Transaction{
		CollectID:     g.faker.UUID(),
		CustomOrderID: fmt.Sprintf("ORD-%s-%s%04d", paymentTime.Format("20060102"), strings.ToUpper(g.faker.LetterN(4)), index%10000),
		SchoolID:      schoolID,
		Gateway:       g.faker.RandomString(seedGateways),
		StudentName:   g.faker.Name(),
		StudentID:     g.faker.DigitN(8),
		StudentEmail:  g.faker.Email(),
		OrderAmount:   orderAmount,
		PaymentTime:   paymentTime,
		PaymentMode:   g.faker.RandomString(seedPaymentModes),
	}

	switch roll := g.faker.Float64(); {
	case roll < 0.70:
		// gateway convenience fee of up to 2% on settled payments
		fee := orderAmount.Mul(decimal.NewFromFloat(g.faker.Float64Range(0, 0.02))).Round(2)
		tx.Status = models.TransactionStatusSuccess
		tx.TransactionAmount = orderAmount.Add(fee)
		tx.PaymentMessage = "payment success"
		tx.BankReference = "BR" + g.faker.DigitN(10)
	case roll < 0.85:
		tx.Status = models.TransactionStatusPending
		tx.TransactionAmount = decimal.Zero
		tx.PaymentMessage = "awaiting gateway confirmation"
	default:
		tx.Status = models.TransactionStatusFailed
		tx.TransactionAmount = decimal.Zero
		tx.ErrorMessage = g.faker.RandomString(seedFailures)
	}

	return tx
}

// generateTimestamp picks a day in [start, end) and a time within business hours
func (g *transactionSeeder) generateTimestamp(start, end time.Time) time.Time {
	day := g.faker.DateRange(start, end)
	ts := time.Date(
		day.Year(), day.Month(), day.Day(),
		g.faker.IntRange(businessHoursStart, businessHoursEnd-1),
		g.faker.IntRange(0, 59),
		g.faker.IntRange(0, 59),
		0,
		time.UTC,
	)
	if ts.After(end) {
		return end
	}
	return ts
}

func (g *transactionSeeder) generateSchools(n int) []models.School {
	schools := make([]models.School, 0, n)
	for i := 1; i <= n; i++ {
		schools = append(schools, models.School{
			ID:    fmt.Sprintf("SCH-%03d", i),
			Name:  g.faker.LastName() + " " + g.faker.RandomString(seedSchoolKinds),
			Email: g.faker.Email(),
		})
	}
	return schools
}

// Seed stores count generated transactions, creating a default set of schools when none exist
func (g *transactionSeeder) Seed(ctx context.Context, count int) (int, error) {
	schools, err := g.schools.ListSchools(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load schools: %w", err)
	}

	if len(schools) == 0 {
		schools = g.generateSchools(defaultSeedSchools)
		if err := g.schools.EnsureExists(ctx, schools); err != nil {
			return 0, fmt.Errorf("failed to create schools: %w", err)
		}
	}

	transactions := g.Generate(count, schools)
	stored := 0
	for start := 0; start < len(transactions); start += seedChunkSize {
		end := min(start+seedChunkSize, len(transactions))
		if err := g.transactions.CreateBatch(ctx, transactions[start:end]); err != nil {
			return stored, fmt.Errorf("failed to store generated transactions: %w", err)
		}
		stored = end
		if g.progress != nil {
			g.progress(stored, len(transactions))
		}
	}

	g.metrics.RecordGauge("transactions.seeded", float64(stored), nil)
	g.logger.Info("seeded transactions",
		"count", stored,
		"schools", len(schools),
	)

	return stored, nil
}
