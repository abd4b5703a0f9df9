package components

import (
	"strings"

	"github.com/omarelders/shipdash/internal/dashboard/themes"
)

// DayList renders the shipping days sidebar of the by-day view.
type DayList struct {
	Days   []string
	Cursor int
}

// MoveUp moves the cursor one day up.
func (d *DayList) MoveUp() {
	if d.Cursor > 0 {
		d.Cursor--
	}
}

// MoveDown moves the cursor one day down.
func (d *DayList) MoveDown() {
	if d.Cursor < len(d.Days)-1 {
		d.Cursor++
	}
}

// CurrentDay returns the day under the cursor.
func (d DayList) CurrentDay() (string, bool) {
	if d.Cursor < 0 || d.Cursor >= len(d.Days) {
		return "", false
	}
	return d.Days[d.Cursor], true
}

// View renders the list with the active day marked.
func (d DayList) View(theme themes.Theme, activeDay string) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Shipping days"))
	b.WriteString("\n")
	if len(d.Days) == 0 {
		b.WriteString(theme.Faint.Render("no days"))
		return b.String()
	}
	for i, day := range d.Days {
		line := "  " + day
		if day == activeDay {
			line = "  " + theme.Bold.Render(day)
		}
		if i == d.Cursor {
			line = theme.Highlighted.Render("> " + day)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
