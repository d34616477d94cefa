package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"school-fee-dashboard/internal/models"
)

// Query-string parameter names used by shareable dashboard URLs
const (
	ParamStatus   = "status"
	ParamSchoolID = "school_id"
	ParamGateway  = "gateway"
	ParamDateFrom = "date_from"
	ParamDateTo   = "date_to"
	ParamSearch   = "search"
	ParamPage     = "page"
	ParamLimit    = "limit"
	ParamSort     = "sort"
	ParamOrder    = "order"
)

// Decode parses a dashboard query string into a FilterState.
// It never fails: every malformed or missing parameter falls back to its default.
func Decode(rawQuery string) models.FilterState {
	state := models.NewFilterState()
	params := parseRawQuery(strings.TrimPrefix(rawQuery, "?"))

	if raw, ok := params[ParamStatus]; ok {
		statuses := make([]models.TransactionStatus, 0)
		for _, s := range splitList(raw) {
			if models.IsValidTransactionStatus(s) {
				statuses = append(statuses, models.TransactionStatus(s))
			}
		}
		state.Statuses = statuses
	}
	if raw, ok := params[ParamSchoolID]; ok {
		state.SchoolIDs = splitList(raw)
	}
	if raw, ok := params[ParamGateway]; ok {
		state.Gateways = splitList(raw)
	}
	if raw, ok := params[ParamDateFrom]; ok {
		state.DateFrom = parseDate(unescape(raw))
	}
	if raw, ok := params[ParamDateTo]; ok {
		state.DateTo = parseDate(unescape(raw))
	}
	if raw, ok := params[ParamSearch]; ok {
		state.Search = strings.TrimSpace(unescape(raw))
	}
	if raw, ok := params[ParamPage]; ok {
		state.Page = parsePositiveInt(unescape(raw), models.DefaultPage)
	}
	if raw, ok := params[ParamLimit]; ok {
		state.PageSize = parsePositiveInt(unescape(raw), models.DefaultPageSize)
	}
	if raw, ok := params[ParamSort]; ok {
		if field := unescape(raw); models.IsValidSortField(field) {
			state.SortField = models.SortField(field)
		}
	}
	if raw, ok := params[ParamOrder]; ok {
		if order := strings.ToLower(unescape(raw)); models.IsValidSortOrder(order) {
			state.SortOrder = models.SortOrder(order)
		}
	}

	state.Normalize()
	return state
}

// Encode serializes a FilterState, emitting only non-default and non-empty fields.
// Parameters appear in a fixed order; list elements keep their current order.
func Encode(state models.FilterState) string {
	parts := make([]string, 0, 10)
	add := func(key, escapedValue string) {
		parts = append(parts, key+"="+escapedValue)
	}

	if len(state.Statuses) > 0 {
		values := make([]string, 0, len(state.Statuses))
		for _, s := range state.Statuses {
			values = append(values, string(s))
		}
		add(ParamStatus, joinList(values))
	}
	if len(state.SchoolIDs) > 0 {
		add(ParamSchoolID, joinList(state.SchoolIDs))
	}
	if len(state.Gateways) > 0 {
		add(ParamGateway, joinList(state.Gateways))
	}
	if state.DateFrom != "" {
		add(ParamDateFrom, url.QueryEscape(state.DateFrom))
	}
	if state.DateTo != "" {
		add(ParamDateTo, url.QueryEscape(state.DateTo))
	}
	if state.Search != "" {
		add(ParamSearch, url.QueryEscape(state.Search))
	}
	if state.Page > models.DefaultPage {
		add(ParamPage, strconv.Itoa(state.Page))
	}
	if state.PageSize > 0 && state.PageSize != models.DefaultPageSize {
		add(ParamLimit, strconv.Itoa(state.PageSize))
	}
	if state.SortField != "" && state.SortField != models.DefaultSortField {
		add(ParamSort, url.QueryEscape(string(state.SortField)))
	}
	if state.SortOrder != "" && state.SortOrder != models.DefaultSortOrder {
		add(ParamOrder, url.QueryEscape(string(state.SortOrder)))
	}

	return strings.Join(parts, "&")
}

// ShareableURL appends the encoded FilterState to base, omitting "?" when nothing is set
func ShareableURL(base string, state models.FilterState) string {
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	encoded := Encode(state)
	if encoded == "" {
		return base
	}
	return base + "?" + encoded
}

// parseRawQuery splits key=value pairs, leaving values escaped. The first
// occurrence of a key wins.
func parseRawQuery(raw string) map[string]string {
	params := make(map[string]string)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = unescape(key)
		if key == "" {
			continue
		}
		if _, exists := params[key]; exists {
			continue
		}
		params[key] = value
	}
	return params
}

// splitList decodes the whole value before splitting, so "a,b" and "a%2Cb"
// (what url.Values and browser URLSearchParams produce) are the same list.
func splitList(raw string) []string {
	out := make([]string, 0)
	for _, item := range strings.Split(unescape(raw), models.ListSeparator) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func joinList(values []string) string {
	escaped := make([]string, 0, len(values))
	for _, v := range values {
		escaped = append(escaped, url.QueryEscape(v))
	}
	return strings.Join(escaped, models.ListSeparator)
}

func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

func parseDate(s string) string {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(models.DateLayout, s); err != nil {
		return ""
	}
	return s
}

func parsePositiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
