package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"school-fee-dashboard/internal/config"
	"school-fee-dashboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database with the schema applied
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection to :memory: would be a separate empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{DB: db, driver: config.DriverSQLite}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CreateTestTransaction inserts a transaction with realistic fake data, after applying overrides
func CreateTestTransaction(t *testing.T, db *DB, overrides func(tx *models.Transaction)) *models.Transaction {
	t.Helper()

	amount := decimal.NewFromFloat(gofakeit.Price(500, 5000)).Round(2)
	tx := &models.Transaction{
		CollectID:         gofakeit.UUID(),
		CustomOrderID:     fmt.Sprintf("ORD-%s", gofakeit.DigitN(10)),
		SchoolID:          "school-" + gofakeit.DigitN(3),
		Gateway:           gofakeit.RandomString([]string{"PhonePe", "Razorpay", "Cashfree"}),
		StudentName:       gofakeit.Name(),
		StudentID:         gofakeit.DigitN(6),
		StudentEmail:      gofakeit.Email(),
		OrderAmount:       amount,
		TransactionAmount: amount,
		Status:            models.TransactionStatusSuccess,
		PaymentTime:       time.Now().UTC().Add(-time.Duration(gofakeit.IntRange(1, 720)) * time.Hour),
	}
	if overrides != nil {
		overrides(tx)
	}

	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return tx
}

// CreateTestSchool inserts a school with the given id
func CreateTestSchool(t *testing.T, db *DB, id, name string) *models.School {
	t.Helper()

	school := &models.School{ID: id, Name: name, Email: gofakeit.Email()}
	if err := db.Create(school).Error; err != nil {
		t.Fatalf("failed to create test school: %v", err)
	}

	return school
}

// CleanupTestDB removes all rows between tests sharing one database
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range []string{"transactions", "schools"} {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
