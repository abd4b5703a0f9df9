package components

import (
	"fmt"
	"strings"

	"github.com/omarelders/shipdash/internal/dashboard/themes"
	"github.com/omarelders/shipdash/internal/dashboard/viewmodel"
	"github.com/omarelders/shipdash/internal/model"
)

// AnalyticsView renders the precomputed analytics snapshot: the status
// distribution ring, top destination cities, the daily trend and the
// headline summary. A segment can be highlighted to show its share.
type AnalyticsView struct {
	Snapshot *model.AnalyticsSnapshot

	// Highlight is the index of the focused ring segment, -1 for none.
	Highlight int
}

// NewAnalyticsView returns an empty view awaiting its snapshot.
func NewAnalyticsView() AnalyticsView {
	return AnalyticsView{Highlight: -1}
}

// Segments returns the ring layout of the current snapshot.
func (a AnalyticsView) Segments() []viewmodel.DonutSegment {
	if a.Snapshot == nil {
		return nil
	}
	return viewmodel.DonutSegments(a.Snapshot.StatusDistribution)
}

// MoveHighlight cycles the focused segment by delta, wrapping around.
func (a *AnalyticsView) MoveHighlight(delta int) {
	segments := a.Segments()
	if len(segments) == 0 {
		a.Highlight = -1
		return
	}
	a.Highlight = (a.Highlight + delta + len(segments)) % len(segments)
}

const ringWidth = 36

// View renders all four panels.
func (a AnalyticsView) View(theme themes.Theme) string {
	if a.Snapshot == nil {
		return theme.Faint.Render("loading analytics…")
	}

	var b strings.Builder
	b.WriteString(a.viewSummary(theme))
	b.WriteString("\n")
	b.WriteString(a.viewRing(theme))
	b.WriteString("\n")
	b.WriteString(a.viewCities(theme))
	b.WriteString("\n")
	b.WriteString(a.viewTrend(theme))
	return b.String()
}

func (a AnalyticsView) viewSummary(theme themes.Theme) string {
	s := a.Snapshot.Summary
	var b strings.Builder
	b.WriteString(theme.Title.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d    %s %.2f    %s %.1f%%\n",
		theme.Faint.Render("shipments"), s.TotalShipments,
		theme.Faint.Render("total value"), s.TotalValue,
		theme.Faint.Render("delivery rate"), s.DeliveryRate))
	if s.TopClient != "" {
		b.WriteString(fmt.Sprintf("%s %s (%d)\n",
			theme.Faint.Render("top client"), s.TopClient, s.TopClientCount))
	}
	return b.String()
}

// viewRing flattens the donut onto a single proportional band: each
// segment gets its share of the band width, in its status color. The
// center label shows the highlighted share or the grand total.
func (a AnalyticsView) viewRing(theme themes.Theme) string {
	segments := a.Segments()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Status distribution"))
	b.WriteString("\n")
	if len(segments) == 0 {
		b.WriteString(theme.Faint.Render("no shipments"))
		b.WriteString("\n")
		return b.String()
	}

	total := 0
	for _, seg := range segments {
		total += seg.Count
	}

	for _, seg := range segments {
		width := int(seg.Sweep / 360 * ringWidth)
		if width < 1 {
			width = 1
		}
		b.WriteString(theme.StatusBadge(seg.Status))
		b.WriteString(" ")
		b.WriteString(theme.Donut.Render(strings.Repeat("█", width)))
		b.WriteString(theme.Faint.Render(fmt.Sprintf(" %d", seg.Count)))
		b.WriteString("\n")
	}

	if a.Highlight >= 0 && a.Highlight < len(segments) {
		seg := segments[a.Highlight]
		b.WriteString(theme.Bold.Render(fmt.Sprintf("%s: %.1f%%", seg.Status, seg.Percent)))
	} else {
		b.WriteString(theme.Bold.Render(fmt.Sprintf("total: %d", total)))
	}
	b.WriteString("\n")
	return b.String()
}

const barWidth = 30

func (a AnalyticsView) viewCities(theme themes.Theme) string {
	cities := a.Snapshot.TopCities

	var b strings.Builder
	b.WriteString(theme.Title.Render("Top cities"))
	b.WriteString("\n")
	if len(cities) == 0 {
		b.WriteString(theme.Faint.Render("no data"))
		b.WriteString("\n")
		return b.String()
	}

	widths := viewmodel.BarWidths(cities, barWidth)
	for i, city := range cities {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			pad(city.City, 14),
			theme.Bar.Render(strings.Repeat("▇", widths[i])),
			theme.Faint.Render(fmt.Sprintf("%d", city.Count))))
	}
	return b.String()
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

func (a AnalyticsView) viewTrend(theme themes.Theme) string {
	points := viewmodel.TrendPoints(a.Snapshot.DailyTrends)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Daily trend"))
	b.WriteString("\n")
	if len(points) == 0 {
		b.WriteString(theme.Faint.Render("no data"))
		b.WriteString("\n")
		return b.String()
	}

	var spark strings.Builder
	for _, pt := range points {
		idx := int(pt.Y * float64(len(sparkLevels)-1))
		spark.WriteRune(sparkLevels[idx])
	}
	b.WriteString(theme.Bar.Render(spark.String()))
	b.WriteString("\n")
	b.WriteString(theme.Faint.Render(fmt.Sprintf("%s … %s",
		points[0].Date, points[len(points)-1].Date)))
	b.WriteString("\n")
	return b.String()
}
