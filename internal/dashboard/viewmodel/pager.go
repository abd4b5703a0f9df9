// Package viewmodel holds the pure display logic of the dashboard: paging,
// row filtering, selection, status mutation bookkeeping, autocomplete state
// and chart geometry. Nothing here touches the network or the terminal, so
// every rule the views depend on is testable in isolation.
package viewmodel

import "fmt"

// Pager tracks the server-side paging window of a listing view. Search and
// date-range inputs live here because changing either resets the window to
// the first page and invalidates any fetch still in flight.
type Pager struct {
	Search   string
	DateFrom string
	DateTo   string

	PageSize int
	Page     int
	Total    int

	// Generation increments whenever the fetch inputs change. A response
	// carrying an older generation is stale and must be dropped.
	Generation int
}

// NewPager returns a pager on the first page with the given window size.
func NewPager(pageSize int) Pager {
	return Pager{PageSize: pageSize}
}

// Offset returns the record offset to request for the current page.
func (p Pager) Offset() int {
	return p.Page * p.PageSize
}

// TotalPages returns the page count implied by the last known total,
// never less than one.
func (p Pager) TotalPages() int {
	if p.Total <= 0 || p.PageSize <= 0 {
		return 1
	}
	pages := (p.Total + p.PageSize - 1) / p.PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// CanPrev reports whether an earlier page exists.
func (p Pager) CanPrev() bool {
	return p.Page > 0
}

// CanNext reports whether a later page exists.
func (p Pager) CanNext() bool {
	return p.Page < p.TotalPages()-1
}

// First moves to the first page. Returns true if the page changed.
func (p *Pager) First() bool {
	return p.goTo(0)
}

// Prev moves one page back, clamped at the first page.
func (p *Pager) Prev() bool {
	return p.goTo(p.Page - 1)
}

// Next moves one page forward, clamped at the last page.
func (p *Pager) Next() bool {
	return p.goTo(p.Page + 1)
}

// Last moves to the last known page.
func (p *Pager) Last() bool {
	return p.goTo(p.TotalPages() - 1)
}

func (p *Pager) goTo(page int) bool {
	if page < 0 {
		page = 0
	}
	if last := p.TotalPages() - 1; page > last {
		page = last
	}
	if page == p.Page {
		return false
	}
	p.Page = page
	p.Generation++
	return true
}

// SetSearch replaces the search term. Any change snaps back to the first
// page and bumps the generation.
func (p *Pager) SetSearch(term string) bool {
	if term == p.Search {
		return false
	}
	p.Search = term
	p.Page = 0
	p.Generation++
	return true
}

// SetDateRange replaces the date bounds. Either bound may be empty.
func (p *Pager) SetDateRange(from, to string) bool {
	if from == p.DateFrom && to == p.DateTo {
		return false
	}
	p.DateFrom = from
	p.DateTo = to
	p.Page = 0
	p.Generation++
	return true
}

// SetTotal records the total reported by the latest page fetch and clamps
// the current page in case the collection shrank underneath us.
func (p *Pager) SetTotal(total int) {
	p.Total = total
	if last := p.TotalPages() - 1; p.Page > last {
		p.Page = last
	}
}

// RangeLabel renders the "X–Y of Z" caption for the current window, using
// the count of rows actually present on the page so a short final page
// reads correctly.
func (p Pager) RangeLabel(rowsOnPage int) string {
	if p.Total == 0 {
		return "0 of 0"
	}
	if rowsOnPage == 0 {
		// Rows were cleared after a failed fetch; the last known total
		// stays visible so a retry lands on the same page.
		return fmt.Sprintf("0 of %d", p.Total)
	}
	start := p.Offset() + 1
	end := p.Offset() + rowsOnPage
	if end > p.Total {
		end = p.Total
	}
	return fmt.Sprintf("%d–%d of %d", start, end, p.Total)
}

// PageLabel renders the "page N of M" caption.
func (p Pager) PageLabel() string {
	return fmt.Sprintf("page %d of %d", p.Page+1, p.TotalPages())
}
