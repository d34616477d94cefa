package dto

import (
	"time"

	"school-fee-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// ---------- Transactions ----------

type UpstreamStudentInfo struct {
	Name  string `json:"name"`
	ID    string `json:"id"`
	Email string `json:"email"`
}

type UpstreamPaymentDetails struct {
	PaymentMode string `json:"payment_mode"`
	BankRef     string `json:"bank_ref"`
}

// UpstreamTransaction is a transaction as served by the payments API
type UpstreamTransaction struct {
	CollectID         string                 `json:"collect_id"`
	CustomOrderID     string                 `json:"custom_order_id"`
	SchoolID          string                 `json:"school_id"`
	Gateway           string                 `json:"gateway"`
	OrderAmount       decimal.Decimal        `json:"order_amount"`
	TransactionAmount decimal.Decimal        `json:"transaction_amount"`
	Status            string                 `json:"status"`
	PaymentTime       time.Time              `json:"payment_time"`
	PaymentMessage    string                 `json:"payment_message,omitempty"`
	ErrorMessage      string                 `json:"error_message,omitempty"`
	Details           UpstreamPaymentDetails `json:"details"`
	StudentInfo       UpstreamStudentInfo    `json:"student_info"`
}

// ToModel maps the wire shape onto the local transaction model
func (t UpstreamTransaction) ToModel() models.Transaction {
	return models.Transaction{
		CollectID:         t.CollectID,
		CustomOrderID:     t.CustomOrderID,
		SchoolID:          t.SchoolID,
		Gateway:           t.Gateway,
		StudentName:       t.StudentInfo.Name,
		StudentID:         t.StudentInfo.ID,
		StudentEmail:      t.StudentInfo.Email,
		OrderAmount:       t.OrderAmount,
		TransactionAmount: t.TransactionAmount,
		Status:            models.TransactionStatus(t.Status),
		PaymentTime:       t.PaymentTime.UTC(),
		PaymentMessage:    t.PaymentMessage,
		ErrorMessage:      t.ErrorMessage,
		PaymentMode:       t.Details.PaymentMode,
		BankReference:     t.Details.BankRef,
	}
}

func UpstreamTransactionsToModels(items []UpstreamTransaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(items))
	for _, item := range items {
		out = append(out, item.ToModel())
	}
	return out
}

// ---------- Top-Level Responses ----------

// UpstreamListResponse is a page of transactions. The per-school endpoint fills only Data.
type UpstreamListResponse struct {
	Data       []UpstreamTransaction `json:"data"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"totalPages"`
	Limit      int                   `json:"limit"`
}

type UpstreamItemResponse[T any] struct {
	Data *T `json:"data"`
}

type UpstreamCollectionResponse[T any] struct {
	Data []T `json:"data"`
}

type UpstreamStats struct {
	TotalTransactions      int64           `json:"totalTransactions"`
	SuccessfulTransactions int64           `json:"successfulTransactions"`
	PendingTransactions    int64           `json:"pendingTransactions"`
	FailedTransactions     int64           `json:"failedTransactions"`
	TotalAmount            decimal.Decimal `json:"totalAmount"`
}

type UpstreamSchool struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// ---------- Errors ----------

type UpstreamErrorResponse struct {
	Error UpstreamErrorDetail `json:"error"`
}

type UpstreamErrorDetail struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details"`
	RequestID string         `json:"request_id"`
	Timestamp string         `json:"timestamp"`
}
