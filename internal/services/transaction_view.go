package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"school-fee-dashboard/internal/models"
	"school-fee-dashboard/internal/query"

	"golang.org/x/sync/errgroup"
)

const DefaultPageWindow = 5

// PageInfo is the pagination block returned with every listing
type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	PageWindow []int `json:"page_window"`
}

// ViewSnapshot is a copy of a TransactionView's state that callers may keep
type ViewSnapshot struct {
	State      models.FilterState
	Result     models.PageResult
	Stats      models.StatsSummary
	Pagination PageInfo
	// Query is the canonical URL query string for State
	Query string
}

// TransactionView holds the filter state, pager and last result of one transaction screen.
//
// Refresh may be called concurrently. Each call takes a sequence number before the
// fetch and only the response carrying the latest number is applied; a state change
// through Update or page navigation also supersedes fetches still in flight.
type TransactionView struct {
	mu sync.Mutex

	lister        TransactionLister
	statsProvider StatsProvider
	source        string
	pageWindow    int
	queryLogger   QueryLoggerInterface
	metrics       MetricsRecorderInterface

	state  models.FilterState
	pager  *query.Pager
	result models.PageResult
	stats  models.StatsSummary
	seq    uint64
}

type ViewOption func(*TransactionView)

// WithStatsProvider makes Refresh take stats from provider over the whole matching
// set instead of summarizing the current page
func WithStatsProvider(provider StatsProvider) ViewOption {
	return func(v *TransactionView) { v.statsProvider = provider }
}

func WithSource(name string) ViewOption {
	return func(v *TransactionView) { v.source = name }
}

func WithPageWindow(buttons int) ViewOption {
	return func(v *TransactionView) {
		if buttons > 0 {
			v.pageWindow = buttons
		}
	}
}

func WithViewLogger(logger QueryLoggerInterface) ViewOption {
	return func(v *TransactionView) { v.queryLogger = logger }
}

func WithViewMetrics(metrics MetricsRecorderInterface) ViewOption {
	return func(v *TransactionView) { v.metrics = metrics }
}

// NewTransactionView creates a view starting from state
func NewTransactionView(lister TransactionLister, state models.FilterState, opts ...ViewOption) *TransactionView {
	state = state.Clone()
	state.Normalize()

	v := &TransactionView{
		lister:      lister,
		source:      "unknown",
		pageWindow:  DefaultPageWindow,
		queryLogger: NewQueryLogger(slog.Default()),
		metrics:     NewNoopMetrics(),
		state:       state,
		pager:       query.NewPager(state.Page, state.PageSize),
		result:      emptyPage(state),
		stats:       query.Summarize(nil, 0),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Refresh fetches the page selected by the current state and applies it.
// It returns ErrStaleResponse if a newer request was issued meanwhile, and an
// error wrapping ErrFetchFailed when the lister fails; in both cases the previous
// result stays in place.
func (v *TransactionView) Refresh(ctx context.Context) (*ViewSnapshot, error) {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	state := v.state.Clone()
	v.mu.Unlock()

	params := query.Build(state)
	v.queryLogger.LogQueryStarted(ctx, v.source, params)

	start := time.Now()
	result, stats, err := v.fetch(ctx, params)
	if err == nil {
		// a page past the end is fetched again as the last page, so items and
		// page-scope stats describe the page that is reported
		if clamped := lastValidPage(state, result); clamped != state.Page {
			v.queryLogger.LogPageClamped(ctx, state.Page, clamped)
			state.SetPage(clamped)
			result, stats, err = v.fetch(ctx, query.Build(state))
		}
	}
	duration := time.Since(start)

	v.mu.Lock()
	defer v.mu.Unlock()

	if seq != v.seq {
		v.queryLogger.LogStaleResponse(ctx, seq, v.seq)
		v.metrics.IncrementCounter("transaction.query.stale", map[string]string{"source": v.source})
		return nil, ErrStaleResponse
	}

	v.metrics.RecordProcessingTime("transaction.query", duration)

	if err != nil {
		v.queryLogger.LogQueryFailed(ctx, v.source, err.Error(), duration)
		v.metrics.IncrementCounter("transaction.query", map[string]string{"source": v.source, "status": "failed"})
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	if result == nil {
		empty := emptyPage(state)
		result = &empty
	}
	if result.Items == nil {
		result.Items = []models.Transaction{}
	}

	v.pager = query.NewPager(state.Page, state.PageSize)
	v.pager.Update(result.TotalCount, state.PageSize)
	// the set can still shrink between the two fetches; the pager never points past the end
	v.state.SetPage(v.pager.CurrentPage())

	v.result = *result
	if stats != nil {
		v.stats = *stats
	} else {
		v.stats = query.Summarize(result.Items, result.TotalCount)
	}

	v.queryLogger.LogQueryCompleted(ctx, v.source, len(result.Items), result.TotalCount, duration)
	v.metrics.IncrementCounter("transaction.query", map[string]string{"source": v.source, "status": "success"})
	v.metrics.RecordGauge("transaction.query.result_count", float64(result.TotalCount), map[string]string{"source": v.source})

	snapshot := v.snapshotLocked()
	return &snapshot, nil
}

// fetch loads the page and, with a stats provider, the dataset-level stats concurrently
func (v *TransactionView) fetch(ctx context.Context, params query.RequestParams) (*models.PageResult, *models.StatsSummary, error) {
	if v.statsProvider == nil {
		result, err := v.lister.ListTransactions(ctx, params)
		return result, nil, err
	}

	var (
		result *models.PageResult
		stats  *models.StatsSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		result, err = v.lister.ListTransactions(gctx, params)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = v.statsProvider.GetStats(gctx, params)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return result, stats, nil
}

// Update applies fn to the filter state. Mutators on FilterState reset the page
// themselves; Update re-normalizes afterwards and supersedes any fetch in flight.
func (v *TransactionView) Update(fn func(state *models.FilterState)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	fn(&v.state)
	v.state.Normalize()
	v.pager = query.NewPager(v.state.Page, v.state.PageSize)
	v.seq++
}

// Next moves to the following page within the last known page count
func (v *TransactionView) Next() {
	v.navigate((*query.Pager).Next)
}

func (v *TransactionView) Prev() {
	v.navigate((*query.Pager).Prev)
}

// GoTo moves to page n, clamped to the last known page count
func (v *TransactionView) GoTo(n int) {
	v.navigate(func(p *query.Pager) { p.GoTo(n) })
}

func (v *TransactionView) navigate(move func(p *query.Pager)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	move(v.pager)
	if page := v.pager.CurrentPage(); page != v.state.Page {
		v.state.SetPage(page)
		v.seq++
	}
}

// State returns a copy of the current filter state
func (v *TransactionView) State() models.FilterState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Clone()
}

// Snapshot returns the current state and last applied result
func (v *TransactionView) Snapshot() ViewSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *TransactionView) snapshotLocked() ViewSnapshot {
	result := v.result
	result.Items = slices.Clone(v.result.Items)

	return ViewSnapshot{
		State:  v.state.Clone(),
		Result: result,
		Stats:  v.stats,
		Pagination: PageInfo{
			Page:       v.pager.CurrentPage(),
			PageSize:   v.pager.PageSize(),
			TotalCount: v.pager.TotalCount(),
			TotalPages: v.pager.TotalPages(),
			HasNext:    v.pager.HasNext(),
			HasPrev:    v.pager.HasPrev(),
			PageWindow: v.pager.VisiblePageWindow(v.pageWindow),
		},
		Query: query.Encode(v.state),
	}
}

// lastValidPage is state.Page clamped to the page count implied by result
func lastValidPage(state models.FilterState, result *models.PageResult) int {
	var total int64
	if result != nil {
		total = result.TotalCount
	}
	pager := query.NewPager(state.Page, state.PageSize)
	pager.Update(total, state.PageSize)
	return pager.CurrentPage()
}

func emptyPage(state models.FilterState) models.PageResult {
	return models.PageResult{
		Items:    []models.Transaction{},
		Page:     state.Page,
		PageSize: state.PageSize,
	}
}
