package models

import "strings"

const (
	DefaultPage     = 1
	DefaultPageSize = 10

	// DateLayout is the calendar-date format used for date_from / date_to
	DateLayout = "2006-01-02"
)

// FilterState contains every filter, sort and pagination option of a transaction view.
// Unset values are always the zero value (empty slice or string), never a pointer.
type FilterState struct {
	Statuses  []TransactionStatus `json:"status"`
	SchoolIDs []string            `json:"school_ids"`
	Gateways  []string            `json:"gateways"`
	DateFrom  string              `json:"date_from"`
	DateTo    string              `json:"date_to"`
	Search    string              `json:"search"`
	SortField SortField           `json:"sort_field"`
	SortOrder SortOrder           `json:"sort_order"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
}

// NewFilterState returns a FilterState with all defaults applied
func NewFilterState() FilterState {
	return FilterState{
		Statuses:  []TransactionStatus{},
		SchoolIDs: []string{},
		Gateways:  []string{},
		SortField: DefaultSortField,
		SortOrder: DefaultSortOrder,
		Page:      DefaultPage,
		PageSize:  DefaultPageSize,
	}
}

// Normalize re-applies defaults to missing or invalid fields and de-duplicates sets
func (f *FilterState) Normalize() {
	f.Statuses = uniqueStatuses(f.Statuses)
	f.SchoolIDs = uniqueStrings(f.SchoolIDs)
	f.Gateways = uniqueStrings(f.Gateways)
	f.Search = strings.TrimSpace(f.Search)

	if !IsValidSortField(string(f.SortField)) {
		f.SortField = DefaultSortField
	}
	if !IsValidSortOrder(string(f.SortOrder)) {
		f.SortOrder = DefaultSortOrder
	}
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
}

// SetStatuses replaces the status filter
func (f *FilterState) SetStatuses(statuses ...TransactionStatus) {
	f.Statuses = uniqueStatuses(statuses)
	f.Page = DefaultPage
}

// ToggleStatus adds the status to the filter, or removes it if already present
func (f *FilterState) ToggleStatus(status TransactionStatus) {
	next := make([]TransactionStatus, 0, len(f.Statuses)+1)
	found := false
	for _, s := range f.Statuses {
		if s == status {
			found = true
			continue
		}
		next = append(next, s)
	}
	if !found {
		next = append(next, status)
	}
	f.SetStatuses(next...)
}

// SetSchoolIDs replaces the school filter. A comma separates list elements, so
// "a,b" is two ids.
func (f *FilterState) SetSchoolIDs(ids ...string) {
	f.SchoolIDs = uniqueStrings(ids)
	f.Page = DefaultPage
}

// SetGateways replaces the gateway filter
func (f *FilterState) SetGateways(gateways ...string) {
	f.Gateways = uniqueStrings(gateways)
	f.Page = DefaultPage
}

// SetDateRange sets the inclusive calendar-date range; empty strings clear a bound
func (f *FilterState) SetDateRange(from, to string) {
	f.DateFrom = strings.TrimSpace(from)
	f.DateTo = strings.TrimSpace(to)
	f.Page = DefaultPage
}

// SetSearch sets the free-text search
func (f *FilterState) SetSearch(search string) {
	f.Search = strings.TrimSpace(search)
	f.Page = DefaultPage
}

// SetSort sets the sort field and order, falling back to defaults for unknown values
func (f *FilterState) SetSort(field SortField, order SortOrder) {
	f.SortField = field
	f.SortOrder = order
	if !IsValidSortField(string(field)) {
		f.SortField = DefaultSortField
	}
	if !IsValidSortOrder(string(order)) {
		f.SortOrder = DefaultSortOrder
	}
	f.Page = DefaultPage
}

// SetPageSize changes the page size; the valid page range changes with it
func (f *FilterState) SetPageSize(size int) {
	if size < 1 {
		size = DefaultPageSize
	}
	f.PageSize = size
	f.Page = DefaultPage
}

// SetPage moves to the given page without touching any filter
func (f *FilterState) SetPage(page int) {
	if page < 1 {
		page = DefaultPage
	}
	f.Page = page
}

// Clear drops every filter but keeps the page size and sort
func (f *FilterState) Clear() {
	f.Statuses = []TransactionStatus{}
	f.SchoolIDs = []string{}
	f.Gateways = []string{}
	f.DateFrom = ""
	f.DateTo = ""
	f.Search = ""
	f.Page = DefaultPage
}

// HasFilters reports whether any constraint narrows the result set
func (f *FilterState) HasFilters() bool {
	return len(f.Statuses) > 0 || len(f.SchoolIDs) > 0 || len(f.Gateways) > 0 ||
		f.DateFrom != "" || f.DateTo != "" || f.Search != ""
}

// Clone returns a deep copy so callers can mutate without aliasing
func (f FilterState) Clone() FilterState {
	out := f
	out.Statuses = append([]TransactionStatus{}, f.Statuses...)
	out.SchoolIDs = append([]string{}, f.SchoolIDs...)
	out.Gateways = append([]string{}, f.Gateways...)
	return out
}

func uniqueStatuses(in []TransactionStatus) []TransactionStatus {
	out := make([]TransactionStatus, 0, len(in))
	seen := make(map[TransactionStatus]bool, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// ListSeparator joins set elements in URLs; it never appears inside an element
const ListSeparator = ","

func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, item := range in {
		for _, s := range strings.Split(item, ListSeparator) {
			s = strings.TrimSpace(s)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
