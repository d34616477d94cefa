package services

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"school-fee-dashboard/internal/config"
	"school-fee-dashboard/internal/models"
	"school-fee-dashboard/internal/query"
)

// StatsScope selects what the stats block of a listing covers
type StatsScope string

const (
	// StatsScopePage counts the current page against the total of the whole matching set
	StatsScopePage StatsScope = "page"
	// StatsScopeAll aggregates every matching transaction through the source's StatsProvider
	StatsScopeAll StatsScope = "all"
)

// ParseStatsScope maps a query value to a scope, defaulting to StatsScopePage
func ParseStatsScope(raw string) StatsScope {
	if StatsScope(strings.ToLower(strings.TrimSpace(raw))) == StatsScopeAll {
		return StatsScopeAll
	}
	return StatsScopePage
}

// TransactionListing is one rendered transaction screen
type TransactionListing struct {
	Data       []models.Transaction `json:"data"`
	Pagination PageInfo             `json:"pagination"`
	Stats      models.StatsSummary  `json:"stats"`
	StatsScope StatsScope           `json:"stats_scope"`
	Query      string               `json:"query"`
	ShareURL   string               `json:"share_url"`
	Empty      bool                 `json:"empty"`
}

type TransactionQueryService struct {
	source       TransactionSource
	schoolLister SchoolTransactionLister
	config       *config.DashboardConfig
	queryLogger  QueryLoggerInterface
	metrics      MetricsRecorderInterface
}

// NewTransactionQueryService creates the listing service. Sources that also implement
// SchoolTransactionLister serve the per-school listing through it.
func NewTransactionQueryService(
	source TransactionSource,
	cfg *config.DashboardConfig,
	queryLogger QueryLoggerInterface,
	metrics MetricsRecorderInterface,
) TransactionQueryServiceInterface {
	s := &TransactionQueryService{
		source:      source,
		config:      cfg,
		queryLogger: queryLogger,
		metrics:     metrics,
	}
	if schoolLister, ok := source.(SchoolTransactionLister); ok {
		s.schoolLister = schoolLister
	}
	return s
}

// List decodes rawQuery, fetches the selected page and returns it with pagination,
// stats and the canonical query string
func (s *TransactionQueryService) List(ctx context.Context, rawQuery string, scope StatsScope) (*TransactionListing, error) {
	state := s.decode(rawQuery)
	return s.run(ctx, s.source, state, scope, "/transactions", state)
}

// ListForSchool is List restricted to one school, whatever school_id the query carries
func (s *TransactionQueryService) ListForSchool(ctx context.Context, schoolID, rawQuery string, scope StatsScope) (*TransactionListing, error) {
	state := s.decode(rawQuery)
	// assigned directly: SetSchoolIDs would reset the requested page
	state.SchoolIDs = []string{schoolID}

	var lister TransactionLister = s.source
	if s.schoolLister != nil {
		lister = schoolScopedLister{lister: s.schoolLister, schoolID: schoolID}
	}

	shareState := state.Clone()
	shareState.SchoolIDs = []string{}
	return s.run(ctx, lister, state, scope, "/schools/"+url.PathEscape(schoolID)+"/transactions", shareState)
}

func (s *TransactionQueryService) GetStatus(ctx context.Context, customOrderID string) (*models.Transaction, error) {
	tx, err := s.source.GetByCustomOrderID(ctx, customOrderID)
	switch {
	case err == nil:
		s.metrics.IncrementCounter("transaction.status_lookup", map[string]string{"status": "found"})
	case errors.Is(err, ErrTransactionNotFound):
		s.metrics.IncrementCounter("transaction.status_lookup", map[string]string{"status": "not_found"})
	default:
		s.metrics.IncrementCounter("transaction.status_lookup", map[string]string{"status": "error"})
	}
	return tx, err
}

func (s *TransactionQueryService) run(
	ctx context.Context,
	lister TransactionLister,
	state models.FilterState,
	scope StatsScope,
	path string,
	shareState models.FilterState,
) (*TransactionListing, error) {
	opts := []ViewOption{
		WithSource(s.config.ListingSource),
		WithPageWindow(s.config.PageWindow),
		WithViewLogger(s.queryLogger),
		WithViewMetrics(s.metrics),
	}
	if scope == StatsScopeAll {
		opts = append(opts, WithStatsProvider(s.source))
	} else {
		scope = StatsScopePage
	}

	view := NewTransactionView(lister, state, opts...)
	snapshot, err := view.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	// the view may have clamped the page
	shareState.Page = snapshot.State.Page
	s.metrics.IncrementCounter("share_url.issued", nil)

	return &TransactionListing{
		Data:       snapshot.Result.Items,
		Pagination: snapshot.Pagination,
		Stats:      snapshot.Stats,
		StatsScope: scope,
		Query:      snapshot.Query,
		ShareURL:   query.ShareableURL(strings.TrimRight(s.config.PublicBaseURL, "/")+path, shareState),
		Empty:      snapshot.Result.IsEmpty(),
	}, nil
}

// decode parses the dashboard query and applies the configured page size rules
func (s *TransactionQueryService) decode(rawQuery string) models.FilterState {
	state := query.Decode(rawQuery)

	if !hasLimit(rawQuery) && s.config.DefaultPageSize > 0 {
		state.PageSize = s.config.DefaultPageSize
	}
	if s.config.MaxPageSize > 0 && state.PageSize > s.config.MaxPageSize {
		state.PageSize = s.config.MaxPageSize
	}
	return state
}

// hasLimit reports whether the query carries a usable page size; a limit that
// Decode would discard counts as absent
func hasLimit(rawQuery string) bool {
	values, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	limit, err := strconv.Atoi(strings.TrimSpace(values.Get(query.ParamLimit)))
	return err == nil && limit > 0
}

// schoolScopedLister adapts a SchoolTransactionLister to TransactionLister for one school
type schoolScopedLister struct {
	lister   SchoolTransactionLister
	schoolID string
}

func (l schoolScopedLister) ListTransactions(ctx context.Context, params query.RequestParams) (*models.PageResult, error) {
	return l.lister.ListSchoolTransactions(ctx, l.schoolID, params)
}
