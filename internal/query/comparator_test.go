package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"school-fee-dashboard/internal/models"
)

func TestCompare(t *testing.T) {
	early := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	late := early.Add(time.Minute)

	a := &models.Transaction{
		PaymentTime:   early,
		OrderAmount:   decimal.RequireFromString("9.99"),
		StudentName:   "alice",
		Gateway:       "PhonePe",
		CustomOrderID: "ORD-10",
	}
	b := &models.Transaction{
		PaymentTime:   late,
		OrderAmount:   decimal.RequireFromString("100"),
		StudentName:   "Bob",
		Gateway:       "phonepe",
		CustomOrderID: "ORD-9",
	}

	tests := []struct {
		name  string
		field models.SortField
		order models.SortOrder
		want  int
	}{
		{name: "timestamp asc", field: models.SortByPaymentTime, order: models.SortAsc, want: -1},
		{name: "timestamp desc", field: models.SortByPaymentTime, order: models.SortDesc, want: 1},
		{name: "amount compares numerically", field: models.SortByOrderAmount, order: models.SortAsc, want: -1},
		{name: "string ignores case", field: models.SortByStudentName, order: models.SortAsc, want: -1},
		{name: "equal ignoring case", field: models.SortByGateway, order: models.SortDesc, want: 0},
		{name: "string is ordinal not natural", field: models.SortByCustomOrderID, order: models.SortAsc, want: -1},
		{name: "unknown field", field: "balance", order: models.SortAsc, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(a, b, tt.field, tt.order))
		})
	}
}

func TestSortTransactions_StableOnEqualKeys(t *testing.T) {
	items := []models.Transaction{
		{CustomOrderID: "1", Gateway: "Razorpay"},
		{CustomOrderID: "2", Gateway: "razorpay"},
		{CustomOrderID: "3", Gateway: "RAZORPAY"},
	}

	for _, order := range []models.SortOrder{models.SortAsc, models.SortDesc} {
		SortTransactions(items, models.SortByGateway, order)
		assert.Equal(t, []string{"1", "2", "3"}, orderIDs(items))
	}
}

func TestSortTransactions_RepeatableAndStable(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []models.Transaction{
		{CustomOrderID: "a", OrderAmount: decimal.NewFromInt(50), PaymentTime: base},
		{CustomOrderID: "b", OrderAmount: decimal.NewFromInt(10), PaymentTime: base.Add(time.Hour)},
		{CustomOrderID: "c", OrderAmount: decimal.NewFromInt(50), PaymentTime: base.Add(2 * time.Hour)},
		{CustomOrderID: "d", OrderAmount: decimal.NewFromInt(30), PaymentTime: base.Add(3 * time.Hour)},
	}

	SortTransactions(items, models.SortByOrderAmount, models.SortDesc)
	first := orderIDs(items)
	SortTransactions(items, models.SortByOrderAmount, models.SortDesc)

	assert.Equal(t, []string{"a", "c", "d", "b"}, first)
	assert.Equal(t, first, orderIDs(items))
}

func orderIDs(items []models.Transaction) []string {
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].CustomOrderID
	}
	return ids
}
