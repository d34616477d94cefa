package query

import (
	"slices"
	"strings"
	"time"

	"school-fee-dashboard/internal/models"
)

// Evaluate applies params to an already-fetched collection: filter, sort, then
// slice out the requested page. The input slice is not modified.
func Evaluate(items []models.Transaction, params RequestParams) (*models.PageResult, error) {
	state := params.Filters()

	from, to, err := DateBounds(params)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Transaction, 0, len(items))
	for i := range items {
		if Matches(&items[i], state) && withinBounds(&items[i], from, to) {
			matched = append(matched, items[i])
		}
	}

	SortTransactions(matched, state.SortField, state.SortOrder)

	total := int64(len(matched))
	start := min((state.Page-1)*state.PageSize, len(matched))
	end := min(start+state.PageSize, len(matched))

	return &models.PageResult{
		Items:      matched[start:end],
		TotalCount: total,
		TotalPages: models.TotalPagesFor(total, state.PageSize),
		Page:       state.Page,
		PageSize:   state.PageSize,
	}, nil
}

// Matches reports whether tx satisfies every set, search and gateway constraint of state.
// Date bounds are checked separately by the caller through DateBounds.
func Matches(tx *models.Transaction, state models.FilterState) bool {
	if len(state.Statuses) > 0 && !slices.Contains(state.Statuses, tx.Status) {
		return false
	}
	if len(state.SchoolIDs) > 0 && !slices.Contains(state.SchoolIDs, tx.SchoolID) {
		return false
	}
	if len(state.Gateways) > 0 && !slices.Contains(state.Gateways, tx.Gateway) {
		return false
	}
	if state.Search != "" {
		needle := strings.ToLower(state.Search)
		if !strings.Contains(strings.ToLower(tx.StudentName), needle) &&
			!strings.Contains(strings.ToLower(tx.CustomOrderID), needle) &&
			!strings.Contains(strings.ToLower(tx.CollectID), needle) {
			return false
		}
	}
	return true
}

func withinBounds(tx *models.Transaction, from, to time.Time) bool {
	if !from.IsZero() && tx.PaymentTime.Before(from) {
		return false
	}
	if !to.IsZero() && tx.PaymentTime.After(to) {
		return false
	}
	return true
}
