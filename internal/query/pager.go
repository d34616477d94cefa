package query

import "school-fee-dashboard/internal/models"

// Pager tracks the current page of a result set and keeps it within range
type Pager struct {
	currentPage int
	pageSize    int
	totalCount  int64
	totalPages  int
}

// NewPager creates a pager positioned at page. Values below 1 fall back to defaults.
func NewPager(page, pageSize int) *Pager {
	if page < 1 {
		page = models.DefaultPage
	}
	if pageSize < 1 {
		pageSize = models.DefaultPageSize
	}
	return &Pager{
		currentPage: page,
		pageSize:    pageSize,
		totalPages:  1,
	}
}

// Update recomputes the page count and clamps the current page into range
func (p *Pager) Update(totalCount int64, pageSize int) int {
	if pageSize < 1 {
		pageSize = p.pageSize
	}
	if totalCount < 0 {
		totalCount = 0
	}
	p.pageSize = pageSize
	p.totalCount = totalCount
	p.totalPages = max(1, models.TotalPagesFor(totalCount, pageSize))

	if p.currentPage > p.totalPages {
		p.currentPage = p.totalPages
	}
	if p.currentPage < 1 {
		p.currentPage = 1
	}
	return p.totalPages
}

// Next moves forward one page unless already on the last page
func (p *Pager) Next() {
	if p.currentPage < p.totalPages {
		p.currentPage++
	}
}

// Prev moves back one page unless already on the first page
func (p *Pager) Prev() {
	if p.currentPage > 1 {
		p.currentPage--
	}
}

// GoTo moves to page n, clamped into [1, TotalPages]
func (p *Pager) GoTo(n int) {
	p.currentPage = min(max(n, 1), p.totalPages)
}

// VisiblePageWindow returns up to maxButtons consecutive page numbers around the current page
func (p *Pager) VisiblePageWindow(maxButtons int) []int {
	if maxButtons <= 0 {
		return []int{}
	}

	length := min(maxButtons, p.totalPages)
	var start int
	if p.currentPage <= (maxButtons+1)/2 {
		start = 1
	} else {
		start = p.currentPage - maxButtons/2
	}
	if last := p.totalPages - length + 1; start > last {
		start = last
	}
	if start < 1 {
		start = 1
	}

	window := make([]int, length)
	for i := range window {
		window[i] = start + i
	}
	return window
}

func (p *Pager) CurrentPage() int  { return p.currentPage }
func (p *Pager) PageSize() int     { return p.pageSize }
func (p *Pager) TotalCount() int64 { return p.totalCount }
func (p *Pager) TotalPages() int   { return p.totalPages }
func (p *Pager) HasNext() bool     { return p.currentPage < p.totalPages }
func (p *Pager) HasPrev() bool     { return p.currentPage > 1 }

// Offset is the number of records preceding the current page
func (p *Pager) Offset() int {
	return (p.currentPage - 1) * p.pageSize
}
