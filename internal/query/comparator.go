package query

import (
	"slices"
	"strings"

	"school-fee-dashboard/internal/models"
)

// Compare orders two transactions by field, returning -1, 0 or 1.
// Timestamps compare by epoch, amounts numerically, and strings by
// case-insensitive byte order. SortDesc reverses the result.
func Compare(a, b *models.Transaction, field models.SortField, order models.SortOrder) int {
	result := compareAsc(a, b, field)
	if order == models.SortDesc {
		return -result
	}
	return result
}

func compareAsc(a, b *models.Transaction, field models.SortField) int {
	switch field {
	case models.SortByPaymentTime:
		return a.PaymentTime.Compare(b.PaymentTime)
	case models.SortByOrderAmount:
		return a.OrderAmount.Cmp(b.OrderAmount)
	case models.SortByTransactionAmount:
		return a.TransactionAmount.Cmp(b.TransactionAmount)
	case models.SortByStatus:
		return compareFold(string(a.Status), string(b.Status))
	case models.SortBySchoolID:
		return compareFold(a.SchoolID, b.SchoolID)
	case models.SortByGateway:
		return compareFold(a.Gateway, b.Gateway)
	case models.SortByCustomOrderID:
		return compareFold(a.CustomOrderID, b.CustomOrderID)
	case models.SortByCollectID:
		return compareFold(a.CollectID, b.CollectID)
	case models.SortByStudentName:
		return compareFold(a.StudentName, b.StudentName)
	default:
		return 0
	}
}

// SortTransactions sorts items in place. Equal keys keep their input order.
func SortTransactions(items []models.Transaction, field models.SortField, order models.SortOrder) {
	slices.SortStableFunc(items, func(a, b models.Transaction) int {
		return Compare(&a, &b, field, order)
	})
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
