package models

import "github.com/shopspring/decimal"

// StatsSummary holds the dashboard counters derived from a transaction set.
// TotalAmount sums TransactionAmount for SUCCESS and OrderAmount for PENDING and FAILED.
type StatsSummary struct {
	TotalCount         int64           `json:"total_count"`
	SuccessCount       int64           `json:"success_count"`
	PendingCount       int64           `json:"pending_count"`
	FailedCount        int64           `json:"failed_count"`
	SuccessRatePercent float64         `json:"success_rate_percent"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
}
