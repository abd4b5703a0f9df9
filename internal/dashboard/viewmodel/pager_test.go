package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPager_TotalPages(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		total    int
		want     int
	}{
		{name: "exact multiple", pageSize: 100, total: 300, want: 3},
		{name: "partial last page", pageSize: 100, total: 301, want: 4},
		{name: "single short page", pageSize: 100, total: 7, want: 1},
		{name: "empty collection", pageSize: 100, total: 0, want: 1},
		{name: "small window", pageSize: 20, total: 41, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager(tt.pageSize)
			p.SetTotal(tt.total)
			assert.Equal(t, tt.want, p.TotalPages())
		})
	}
}

func TestPager_NavigationClamps(t *testing.T) {
	p := NewPager(100)
	p.SetTotal(250)

	assert.False(t, p.Prev(), "already on first page")
	assert.Equal(t, 0, p.Page)

	assert.True(t, p.Next())
	assert.True(t, p.Next())
	assert.Equal(t, 2, p.Page)
	assert.False(t, p.Next(), "already on last page")
	assert.Equal(t, 2, p.Page)

	assert.True(t, p.First())
	assert.Equal(t, 0, p.Page)
	assert.True(t, p.Last())
	assert.Equal(t, 2, p.Page)
}

func TestPager_CanPrevCanNext(t *testing.T) {
	p := NewPager(100)
	p.SetTotal(250)

	assert.False(t, p.CanPrev())
	assert.True(t, p.CanNext())

	p.Last()
	assert.True(t, p.CanPrev())
	assert.False(t, p.CanNext())
}

func TestPager_SearchResetsPage(t *testing.T) {
	p := NewPager(100)
	p.SetTotal(1000)
	p.Next()
	p.Next()
	gen := p.Generation

	assert.True(t, p.SetSearch("ahmed"))
	assert.Equal(t, 0, p.Page)
	assert.Greater(t, p.Generation, gen)

	assert.False(t, p.SetSearch("ahmed"), "same term changes nothing")
}

func TestPager_DateRangeResetsPage(t *testing.T) {
	p := NewPager(100)
	p.SetTotal(1000)
	p.Last()

	assert.True(t, p.SetDateRange("2026-08-01", "2026-08-31"))
	assert.Equal(t, 0, p.Page)

	assert.False(t, p.SetDateRange("2026-08-01", "2026-08-31"))
}

func TestPager_GenerationSupersedesStaleFetches(t *testing.T) {
	p := NewPager(100)
	p.SetTotal(500)

	p.Next()
	staleGen := p.Generation
	p.Next()

	// A response for the first navigation arrives after the second; its
	// generation no longer matches and must be dropped.
	assert.NotEqual(t, staleGen, p.Generation)
}

func TestPager_SetTotalClampsPage(t *testing.T) {
	p := NewPager(50)
	p.SetTotal(200)
	p.Last()
	assert.Equal(t, 3, p.Page)

	p.SetTotal(60)
	assert.Equal(t, 1, p.Page)
}

func TestPager_Offset(t *testing.T) {
	p := NewPager(20)
	p.SetTotal(100)
	p.Next()
	p.Next()
	assert.Equal(t, 40, p.Offset())
}

func TestPager_RangeLabel(t *testing.T) {
	tests := []struct {
		name       string
		pageSize   int
		total      int
		page       int
		rowsOnPage int
		want       string
	}{
		{name: "first full page", pageSize: 100, total: 341, page: 0, rowsOnPage: 100, want: "1–100 of 341"},
		{name: "middle page", pageSize: 100, total: 341, page: 2, rowsOnPage: 100, want: "201–300 of 341"},
		{name: "short last page", pageSize: 100, total: 341, page: 3, rowsOnPage: 41, want: "301–341 of 341"},
		{name: "empty", pageSize: 100, total: 0, page: 0, rowsOnPage: 0, want: "0 of 0"},
		{name: "rows cleared after failed fetch", pageSize: 100, total: 341, page: 0, rowsOnPage: 0, want: "0 of 341"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager(tt.pageSize)
			p.SetTotal(tt.total)
			p.Page = tt.page
			assert.Equal(t, tt.want, p.RangeLabel(tt.rowsOnPage))
		})
	}
}
