package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionStatus is the settlement state reported by the payment gateway
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// TransactionStatuses lists every recognized status in display order
var TransactionStatuses = []TransactionStatus{
	TransactionStatusSuccess,
	TransactionStatusPending,
	TransactionStatusFailed,
}

var (
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidAmount            = errors.New("transaction amount must not be negative")
)

// Transaction represents a school-fee payment collected through a gateway
type Transaction struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CollectID         string            `gorm:"type:varchar(64);not null;uniqueIndex" json:"collect_id"`
	CustomOrderID     string            `gorm:"type:varchar(64);not null;uniqueIndex" json:"custom_order_id"`
	SchoolID          string            `gorm:"type:varchar(64);not null;index" json:"school_id"`
	Gateway           string            `gorm:"type:varchar(50);not null;index" json:"gateway"`
	StudentName       string            `gorm:"type:varchar(255)" json:"student_name"`
	StudentID         string            `gorm:"type:varchar(64)" json:"student_id"`
	StudentEmail      string            `gorm:"type:varchar(255)" json:"student_email"`
	OrderAmount       decimal.Decimal   `gorm:"type:decimal(15,2);not null" json:"order_amount"`
	TransactionAmount decimal.Decimal   `gorm:"type:decimal(15,2);not null;default:0" json:"transaction_amount"`
	Status            TransactionStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentTime       time.Time         `gorm:"not null;index" json:"payment_time"`
	PaymentMessage    string            `gorm:"type:text" json:"payment_message,omitempty"`
	ErrorMessage      string            `gorm:"type:text" json:"error_message,omitempty"`
	PaymentMode       string            `gorm:"type:varchar(50)" json:"payment_mode,omitempty"`
	BankReference     string            `gorm:"type:varchar(100)" json:"bank_reference,omitempty"`
	CreatedAt         time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	if t.Status == "" {
		t.Status = TransactionStatusPending
	}
	if t.PaymentTime.IsZero() {
		t.PaymentTime = now
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.CollectID == "" {
		return errors.New("collect ID is required")
	}
	if t.CustomOrderID == "" {
		return errors.New("custom order ID is required")
	}
	if t.SchoolID == "" {
		return errors.New("school ID is required")
	}
	if !IsValidTransactionStatus(string(t.Status)) {
		return ErrInvalidTransactionStatus
	}
	if t.OrderAmount.IsNegative() || t.TransactionAmount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// IsSuccessful returns true if the gateway settled the payment
func (t *Transaction) IsSuccessful() bool {
	return t.Status == TransactionStatusSuccess
}

// IsPending returns true if the payment is still awaiting settlement
func (t *Transaction) IsPending() bool {
	return t.Status == TransactionStatusPending
}

// IsFailed returns true if the payment attempt failed
func (t *Transaction) IsFailed() bool {
	return t.Status == TransactionStatusFailed
}

// ReportedAmount is the amount counted towards dashboard totals: the settled
// amount for successful payments, the requested amount for everything else.
func (t *Transaction) ReportedAmount() decimal.Decimal {
	if t.IsSuccessful() {
		return t.TransactionAmount
	}
	return t.OrderAmount
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionStatus checks if the status is one of SUCCESS, PENDING, FAILED.
// The match is case-sensitive.
func IsValidTransactionStatus(status string) bool {
	switch TransactionStatus(status) {
	case TransactionStatusSuccess, TransactionStatusPending, TransactionStatusFailed:
		return true
	default:
		return false
	}
}
