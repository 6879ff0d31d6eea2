// Package paging slices the full employee collection into 1-based pages and
// produces the bounded page-window sequence used for navigation.
package paging

import "github.com/avolkovs/staffdir/internal/models"

const DefaultPageSize = 10

// Slice is one page of the collection together with its coordinates.
type Slice struct {
	Page       int
	TotalPages int
	Rows       []models.Employee
}

// Pager windows a collection. It holds the current page and page size; the
// rows themselves are supplied by the owner whenever the collection changes.
type Pager struct {
	page     int
	pageSize int
	rows     []models.Employee
}

func New(pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Pager{page: 1, pageSize: pageSize}
}

func (p *Pager) Page() int { return p.page }

func (p *Pager) TotalPages() int {
	n := len(p.rows)
	pages := (n + p.pageSize - 1) / p.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// SetRows replaces the backing collection, clamps the current page to the new
// total and returns the resulting slice.
func (p *Pager) SetRows(rows []models.Employee) Slice {
	p.rows = rows
	p.clamp()
	return p.Current()
}

// SetPageSize changes the page size, clamps and returns the resulting slice.
// Non-positive sizes keep the previous value.
func (p *Pager) SetPageSize(size int) Slice {
	if size > 0 {
		p.pageSize = size
	}
	p.clamp()
	return p.Current()
}

// ChangePage moves to target. Out-of-range targets and the current page are
// rejected silently: the second return value reports whether anything
// changed, and nothing should be re-emitted when it is false.
func (p *Pager) ChangePage(target int) (Slice, bool) {
	if target < 1 || target > p.TotalPages() || target == p.page {
		return Slice{}, false
	}
	p.page = target
	return p.Current(), true
}

// Current returns the slice for the current page without changing state.
func (p *Pager) Current() Slice {
	start := (p.page - 1) * p.pageSize
	end := start + p.pageSize
	if start > len(p.rows) {
		start = len(p.rows)
	}
	if end > len(p.rows) {
		end = len(p.rows)
	}
	return Slice{Page: p.page, TotalPages: p.TotalPages(), Rows: p.rows[start:end]}
}

func (p *Pager) clamp() {
	if t := p.TotalPages(); p.page > t {
		p.page = t
	}
}
