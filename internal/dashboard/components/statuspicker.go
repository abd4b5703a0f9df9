package components

import (
	"strings"

	"github.com/omarelders/shipdash/internal/dashboard/themes"
)

// StatusPicker is the menu of target statuses shown when changing a row.
type StatusPicker struct {
	Code    string
	Targets []string
	Cursor  int
	Active  bool
}

// NewStatusPicker opens the picker for a row.
func NewStatusPicker(code string, targets []string) StatusPicker {
	return StatusPicker{Code: code, Targets: targets, Active: true}
}

// MoveUp moves the highlight up, wrapping at the top.
func (p *StatusPicker) MoveUp() {
	if len(p.Targets) == 0 {
		return
	}
	p.Cursor = (p.Cursor - 1 + len(p.Targets)) % len(p.Targets)
}

// MoveDown moves the highlight down, wrapping at the bottom.
func (p *StatusPicker) MoveDown() {
	if len(p.Targets) == 0 {
		return
	}
	p.Cursor = (p.Cursor + 1) % len(p.Targets)
}

// Selected returns the highlighted target status.
func (p StatusPicker) Selected() (string, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Targets) {
		return "", false
	}
	return p.Targets[p.Cursor], true
}

// View renders the picker.
func (p StatusPicker) View(theme themes.Theme) string {
	var b strings.Builder
	b.WriteString(theme.Bold.Render("New status for " + p.Code))
	b.WriteString("\n\n")
	for i, target := range p.Targets {
		line := "  " + theme.StatusBadge(target)
		if i == p.Cursor {
			line = "> " + theme.StatusBadge(target)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Faint.Render("enter: apply   esc: cancel"))
	return theme.BorderedBox.Render(b.String())
}
