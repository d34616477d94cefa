package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"school-fee-dashboard/internal/models"
)

// RequestParams keys understood by every TransactionLister
const (
	KeyStatus    = "status"
	KeySchoolIDs = "schoolIds"
	KeyGateways  = "gateways"
	KeyDateFrom  = "dateFrom"
	KeyDateTo    = "dateTo"
	KeySearch    = "search"
	KeyPage      = "page"
	KeyPageSize  = "pageSize"
	KeySortField = "sortField"
	KeySortOrder = "sortOrder"
)

// RequestParams is the flat parameter set passed to a transaction listing collaborator.
// List values are comma-joined.
type RequestParams map[string]string

// Build converts a FilterState into RequestParams. Empty filters are omitted;
// paging and sorting are always present. DateTo is passed through untouched.
func Build(state models.FilterState) RequestParams {
	state = state.Clone()
	state.Normalize()

	params := RequestParams{
		KeyPage:      strconv.Itoa(state.Page),
		KeyPageSize:  strconv.Itoa(state.PageSize),
		KeySortField: string(state.SortField),
		KeySortOrder: string(state.SortOrder),
	}

	if len(state.Statuses) > 0 {
		values := make([]string, 0, len(state.Statuses))
		for _, s := range state.Statuses {
			values = append(values, string(s))
		}
		params[KeyStatus] = strings.Join(values, ",")
	}
	if len(state.SchoolIDs) > 0 {
		params[KeySchoolIDs] = strings.Join(state.SchoolIDs, ",")
	}
	if len(state.Gateways) > 0 {
		params[KeyGateways] = strings.Join(state.Gateways, ",")
	}
	if state.DateFrom != "" {
		params[KeyDateFrom] = state.DateFrom
	}
	if state.DateTo != "" {
		params[KeyDateTo] = state.DateTo
	}
	if state.Search != "" {
		params[KeySearch] = state.Search
	}

	return params
}

// Get returns the raw value for key, or "" when absent
func (p RequestParams) Get(key string) string {
	return p[key]
}

// Has reports whether key is present
func (p RequestParams) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// List splits a comma-joined value, dropping empty elements
func (p RequestParams) List(key string) []string {
	raw, ok := p[key]
	if !ok || raw == "" {
		return []string{}
	}
	out := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Int parses key as a positive integer, returning fallback otherwise
func (p RequestParams) Int(key string, fallback int) int {
	return parsePositiveInt(p[key], fallback)
}

// Page returns the requested page, defaulting to 1
func (p RequestParams) Page() int {
	return p.Int(KeyPage, models.DefaultPage)
}

// PageSize returns the requested page size, defaulting to 10
func (p RequestParams) PageSize() int {
	return p.Int(KeyPageSize, models.DefaultPageSize)
}

// Values renders the parameters as url.Values for an HTTP request
func (p RequestParams) Values() url.Values {
	values := url.Values{}
	for k, v := range p {
		values.Set(k, v)
	}
	return values
}

// Filters rebuilds the FilterState these parameters were built from
func (p RequestParams) Filters() models.FilterState {
	state := models.NewFilterState()
	for _, s := range p.List(KeyStatus) {
		if models.IsValidTransactionStatus(s) {
			state.Statuses = append(state.Statuses, models.TransactionStatus(s))
		}
	}
	state.SchoolIDs = p.List(KeySchoolIDs)
	state.Gateways = p.List(KeyGateways)
	state.DateFrom = parseDate(p[KeyDateFrom])
	state.DateTo = parseDate(p[KeyDateTo])
	state.Search = p[KeySearch]
	state.SortField = models.SortField(p[KeySortField])
	state.SortOrder = models.SortOrder(p[KeySortOrder])
	state.Page = p.Page()
	state.PageSize = p.PageSize()
	state.Normalize()
	return state
}

// DateBounds returns the inclusive instants selected by dateFrom/dateTo in UTC.
// dateTo is extended to the last nanosecond of that day. This is the only place
// the end-of-day adjustment happens; a zero time means the bound is unset.
func DateBounds(p RequestParams) (from, to time.Time, err error) {
	if raw := p[KeyDateFrom]; raw != "" {
		from, err = time.Parse(models.DateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid %s %q: %w", KeyDateFrom, raw, err)
		}
	}
	if raw := p[KeyDateTo]; raw != "" {
		day, parseErr := time.Parse(models.DateLayout, raw)
		if parseErr != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid %s %q: %w", KeyDateTo, raw, parseErr)
		}
		to = day.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}
