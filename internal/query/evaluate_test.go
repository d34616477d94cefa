package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-fee-dashboard/internal/models"
)

func evaluateFixture() []models.Transaction {
	day := func(d, h int) time.Time { return time.Date(2024, 4, d, h, 0, 0, 0, time.UTC) }
	return []models.Transaction{
		{CollectID: "c1", CustomOrderID: "ORD-1", SchoolID: "s1", Gateway: "PhonePe", StudentName: "Asha Rao", Status: models.TransactionStatusSuccess, OrderAmount: decimal.NewFromInt(100), PaymentTime: day(1, 10)},
		{CollectID: "c2", CustomOrderID: "ORD-2", SchoolID: "s1", Gateway: "Razorpay", StudentName: "Ben Ode", Status: models.TransactionStatusFailed, OrderAmount: decimal.NewFromInt(200), PaymentTime: day(2, 23)},
		{CollectID: "c3", CustomOrderID: "ORD-3", SchoolID: "s2", Gateway: "PhonePe", StudentName: "Chen Li", Status: models.TransactionStatusPending, OrderAmount: decimal.NewFromInt(300), PaymentTime: day(3, 8)},
		{CollectID: "c4", CustomOrderID: "ORD-4", SchoolID: "s2", Gateway: "PhonePe", StudentName: "Dana asha", Status: models.TransactionStatusSuccess, OrderAmount: decimal.NewFromInt(400), PaymentTime: day(4, 12)},
	}
}

func TestEvaluate_FiltersSortsAndPaginates(t *testing.T) {
	items := evaluateFixture()
	state := models.NewFilterState()
	state.SetGateways("PhonePe")
	state.SetSort(models.SortByOrderAmount, models.SortAsc)
	state.SetPageSize(2)
	state.SetPage(2)

	result, err := Evaluate(items, Build(state))
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.TotalCount)
	assert.Equal(t, 2, result.TotalPages)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "ORD-4", result.Items[0].CustomOrderID)
	assert.Equal(t, "ORD-1", items[0].CustomOrderID, "input must not be reordered")
}

func TestEvaluate_DateToIncludesWholeDay(t *testing.T) {
	state := models.NewFilterState()
	state.SetDateRange("2024-04-02", "2024-04-02")

	result, err := Evaluate(evaluateFixture(), Build(state))
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "ORD-2", result.Items[0].CustomOrderID)
}

func TestEvaluate_SearchAcrossFields(t *testing.T) {
	tests := []struct {
		search string
		want   []string
	}{
		{search: "asha", want: []string{"ORD-4", "ORD-1"}},
		{search: "ord-3", want: []string{"ORD-3"}},
		{search: "C2", want: []string{"ORD-2"}},
		{search: "nobody", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			state := models.NewFilterState()
			state.SetSearch(tt.search)

			result, err := Evaluate(evaluateFixture(), Build(state))
			require.NoError(t, err)

			assert.Equal(t, tt.want, orderIDs(result.Items))
		})
	}
}

func TestEvaluate_PageBeyondEndIsEmpty(t *testing.T) {
	state := models.NewFilterState()
	state.SetStatuses(models.TransactionStatusSuccess, models.TransactionStatusPending)
	state.SetSchoolIDs("s2")
	state.SetPage(5)

	result, err := Evaluate(evaluateFixture(), Build(state))
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	assert.Equal(t, int64(2), result.TotalCount)
	assert.False(t, result.IsEmpty())
}

func TestEvaluate_MalformedDate(t *testing.T) {
	_, err := Evaluate(evaluateFixture(), RequestParams{KeyDateFrom: "not-a-date"})
	assert.Error(t, err)
}
