package viewmodel

import (
	"sort"

	"github.com/omarelders/shipdash/internal/model"
)

// DonutSegment is one slice of the status distribution ring. Angles are in
// degrees with zero at twelve o'clock, growing clockwise.
type DonutSegment struct {
	Status  string
	Count   int
	Percent float64
	Start   float64
	Sweep   float64
}

// DonutSegments lays out the status distribution as ring segments, largest
// first. Each sweep is the slice's exact share of 360 degrees, so the
// segments always close the ring. An empty or all-zero distribution yields
// no segments.
func DonutSegments(dist []model.StatusCount) []DonutSegment {
	total := 0
	for _, sc := range dist {
		total += sc.Count
	}
	if total == 0 {
		return nil
	}

	ordered := make([]model.StatusCount, len(dist))
	copy(ordered, dist)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Count > ordered[j].Count
	})

	segments := make([]DonutSegment, 0, len(ordered))
	angle := 0.0
	for _, sc := range ordered {
		if sc.Count == 0 {
			continue
		}
		share := float64(sc.Count) / float64(total)
		segments = append(segments, DonutSegment{
			Status:  sc.Status,
			Count:   sc.Count,
			Percent: share * 100,
			Start:   angle,
			Sweep:   share * 360,
		})
		angle += share * 360
	}
	return segments
}

// BarWidths scales city counts to bar lengths, with the busiest city
// getting the full width. Zero max yields all-zero widths.
func BarWidths(cities []model.CityCount, maxWidth int) []int {
	widths := make([]int, len(cities))
	max := 0
	for _, c := range cities {
		if c.Count > max {
			max = c.Count
		}
	}
	if max == 0 {
		return widths
	}
	for i, c := range cities {
		w := c.Count * maxWidth / max
		if c.Count > 0 && w == 0 {
			w = 1
		}
		widths[i] = w
	}
	return widths
}

// TrendPoint is a daily count normalized into the unit square: X spreads
// the days evenly left to right, Y puts the busiest day at 1.
type TrendPoint struct {
	Date  string
	Count int
	X     float64
	Y     float64
}

// TrendPoints normalizes the daily series for plotting. A single point
// sits at the left edge; a flat series sits on the baseline.
func TrendPoints(daily []model.DailyCount) []TrendPoint {
	if len(daily) == 0 {
		return nil
	}
	max := 0
	for _, d := range daily {
		if d.Count > max {
			max = d.Count
		}
	}
	points := make([]TrendPoint, len(daily))
	for i, d := range daily {
		var x, y float64
		if len(daily) > 1 {
			x = float64(i) / float64(len(daily)-1)
		}
		if max > 0 {
			y = float64(d.Count) / float64(max)
		}
		points[i] = TrendPoint{Date: d.Date, Count: d.Count, X: x, Y: y}
	}
	return points
}
