package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-fee-dashboard/internal/models"
)

func TestBuild_DefaultStateOmitsEmptyFilters(t *testing.T) {
	state := models.FilterState{
		SchoolIDs: []string{},
		Statuses:  []models.TransactionStatus{},
		Page:      1,
		PageSize:  10,
		SortField: models.SortByPaymentTime,
		SortOrder: models.SortDesc,
	}

	params := Build(state)

	assert.Equal(t, RequestParams{
		KeyPage:      "1",
		KeyPageSize:  "10",
		KeySortField: "payment_time",
		KeySortOrder: "desc",
	}, params)
	assert.False(t, params.Has(KeyStatus))
	assert.False(t, params.Has(KeySchoolIDs))
}

func TestBuild_AllFilters(t *testing.T) {
	state := models.NewFilterState()
	state.SetStatuses(models.TransactionStatusSuccess, models.TransactionStatusFailed)
	state.SetSchoolIDs("school-1", "school-2")
	state.SetGateways("PhonePe")
	state.SetDateRange("2024-03-01", "2024-03-31")
	state.SetSearch("  Asha ")
	state.SetSort(models.SortByStudentName, models.SortAsc)
	state.SetPageSize(25)
	state.SetPage(4)

	params := Build(state)

	assert.Equal(t, "SUCCESS,FAILED", params.Get(KeyStatus))
	assert.Equal(t, []string{"school-1", "school-2"}, params.List(KeySchoolIDs))
	assert.Equal(t, "PhonePe", params.Get(KeyGateways))
	assert.Equal(t, "2024-03-01", params.Get(KeyDateFrom))
	assert.Equal(t, "2024-03-31", params.Get(KeyDateTo), "dateTo is passed through unadjusted")
	assert.Equal(t, "Asha", params.Get(KeySearch))
	assert.Equal(t, 4, params.Page())
	assert.Equal(t, 25, params.PageSize())
	assert.Equal(t, "student_name", params.Get(KeySortField))
	assert.Equal(t, "asc", params.Get(KeySortOrder))
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	state := models.FilterState{SchoolIDs: []string{"a", "a"}}

	Build(state)

	assert.Equal(t, []string{"a", "a"}, state.SchoolIDs)
	assert.Equal(t, 0, state.Page)
}

func TestRequestParams_Filters(t *testing.T) {
	state := models.NewFilterState()
	state.SetStatuses(models.TransactionStatusPending)
	state.SetGateways("Razorpay", "PhonePe")
	state.SetDateRange("2024-01-01", "")
	state.SetSort(models.SortByGateway, models.SortAsc)
	state.SetPage(2)

	assert.Equal(t, state, Build(state).Filters())
}

func TestRequestParams_Values(t *testing.T) {
	params := RequestParams{KeyPage: "2", KeyStatus: "SUCCESS,FAILED"}

	values := params.Values()

	assert.Equal(t, "2", values.Get(KeyPage))
	assert.Equal(t, "SUCCESS,FAILED", values.Get(KeyStatus))
}

func TestRequestParams_IntFallback(t *testing.T) {
	params := RequestParams{KeyPage: "-1", KeyPageSize: "x"}

	assert.Equal(t, 1, params.Page())
	assert.Equal(t, 10, params.PageSize())
	assert.Equal(t, 7, params.Int("missing", 7))
}

func TestDateBounds(t *testing.T) {
	t.Run("end of day applied to dateTo only", func(t *testing.T) {
		from, to, err := DateBounds(RequestParams{KeyDateFrom: "2024-02-01", KeyDateTo: "2024-02-29"})
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC), to)
	})

	t.Run("unset bounds are zero", func(t *testing.T) {
		from, to, err := DateBounds(RequestParams{})
		require.NoError(t, err)

		assert.True(t, from.IsZero())
		assert.True(t, to.IsZero())
	})

	t.Run("malformed date", func(t *testing.T) {
		_, _, err := DateBounds(RequestParams{KeyDateTo: "31/01/2024"})
		assert.Error(t, err)
	})
}
