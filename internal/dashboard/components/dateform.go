package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/omarelders/shipdash/internal/dashboard/themes"
	"github.com/omarelders/shipdash/internal/dashboard/viewmodel"
)

// DateForm collects the date range bounds for the orders view. Both bounds
// are optional but must be YYYY-MM-DD when present.
type DateForm struct {
	from     textinput.Model
	to       textinput.Model
	focusIdx int

	Active bool
	Err    string
}

// NewDateForm builds the modal pre-filled from the active range.
func NewDateForm(from, to string) DateForm {
	mk := func(placeholder, value string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 10
		in.Width = 12
		in.SetValue(value)
		return in
	}
	f := DateForm{from: mk("YYYY-MM-DD", from), to: mk("YYYY-MM-DD", to), Active: true}
	f.from.Focus()
	return f
}

// Update routes input between the two fields. Tab switches focus.
func (f *DateForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "tab" {
		f.focusIdx = (f.focusIdx + 1) % 2
		if f.focusIdx == 0 {
			f.to.Blur()
			return f.from.Focus()
		}
		f.from.Blur()
		return f.to.Focus()
	}

	var cmd tea.Cmd
	if f.focusIdx == 0 {
		f.from, cmd = f.from.Update(msg)
	} else {
		f.to, cmd = f.to.Update(msg)
	}
	return cmd
}

// Range validates and returns the bounds. Empty bounds stay empty.
func (f DateForm) Range() (from, to string, ok bool) {
	from = strings.TrimSpace(f.from.Value())
	to = strings.TrimSpace(f.to.Value())
	if from != "" && !viewmodel.ValidDate(from) {
		return "", "", false
	}
	if to != "" && !viewmodel.ValidDate(to) {
		return "", "", false
	}
	return from, to, true
}

// View renders the modal.
func (f DateForm) View(theme themes.Theme) string {
	var b strings.Builder
	b.WriteString(theme.Bold.Render("Date range"))
	b.WriteString("\n\n")
	b.WriteString(theme.Faint.Render("From"))
	b.WriteString("\n")
	b.WriteString(f.from.View())
	b.WriteString("\n")
	b.WriteString(theme.Faint.Render("To"))
	b.WriteString("\n")
	b.WriteString(f.to.View())
	b.WriteString("\n\n")
	if f.Err != "" {
		b.WriteString(theme.ErrorBar.Render(f.Err))
		b.WriteString("\n")
	}
	b.WriteString(theme.Faint.Render("tab: switch field   enter: apply   esc: cancel"))
	return theme.BorderedBox.Render(b.String())
}
