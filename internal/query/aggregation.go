package query

import (
	"github.com/shopspring/decimal"

	"school-fee-dashboard/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Summarize computes status counts, success rate and total amount over items.
//
// The success rate always uses scopeTotalCount as its denominator, i.e. the size
// of the whole matching result set, even when items is only the current page.
//
// TotalAmount is not a single-field sum: SUCCESS items contribute their settled
// TransactionAmount, PENDING and FAILED items contribute their requested OrderAmount.
func Summarize(items []models.Transaction, scopeTotalCount int64) models.StatsSummary {
	summary := models.StatsSummary{
		TotalCount:  scopeTotalCount,
		TotalAmount: decimal.Zero,
	}

	for i := range items {
		tx := &items[i]
		switch tx.Status {
		case models.TransactionStatusSuccess:
			summary.SuccessCount++
		case models.TransactionStatusPending:
			summary.PendingCount++
		case models.TransactionStatusFailed:
			summary.FailedCount++
		default:
			continue
		}
		summary.TotalAmount = summary.TotalAmount.Add(tx.ReportedAmount())
	}

	summary.SuccessRatePercent = SuccessRate(summary.SuccessCount, scopeTotalCount)
	return summary
}

// SummarizeAll summarizes a complete collection, using its length as the scope
func SummarizeAll(items []models.Transaction) models.StatsSummary {
	return Summarize(items, int64(len(items)))
}

// SuccessRate returns successCount/total as a percentage rounded to two places, or 0 when total is 0
func SuccessRate(successCount, total int64) float64 {
	if total <= 0 {
		return 0
	}
	rate := decimal.NewFromInt(successCount).
		Mul(hundred).
		DivRound(decimal.NewFromInt(total), 2)
	f, _ := rate.Float64()
	return f
}
