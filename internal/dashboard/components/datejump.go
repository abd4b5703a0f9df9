package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/omarelders/shipdash/internal/dashboard/themes"
	"github.com/omarelders/shipdash/internal/dashboard/viewmodel"
)

// DateJump is the single-date prompt on the by-day view: enter a day
// directly instead of scrolling the list. The date is validated before any
// request goes out.
type DateJump struct {
	input textinput.Model

	Err string
}

// NewDateJump builds the prompt with focus in the field.
func NewDateJump() DateJump {
	in := textinput.New()
	in.Placeholder = "YYYY-MM-DD"
	in.CharLimit = 10
	in.Width = 12
	in.Focus()
	return DateJump{input: in}
}

// SetValue replaces the entered date.
func (j *DateJump) SetValue(v string) {
	j.input.SetValue(v)
}

// Update feeds a message to the text input.
func (j *DateJump) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	j.input, cmd = j.input.Update(msg)
	return cmd
}

// Date validates and returns the entered day.
func (j DateJump) Date() (string, bool) {
	date := strings.TrimSpace(j.input.Value())
	if !viewmodel.ValidDate(date) {
		return "", false
	}
	return date, true
}

// View renders the prompt.
func (j DateJump) View(theme themes.Theme) string {
	var b strings.Builder
	b.WriteString(theme.Bold.Render("Jump to day"))
	b.WriteString("\n\n")
	b.WriteString(j.input.View())
	b.WriteString("\n\n")
	if j.Err != "" {
		b.WriteString(theme.ErrorBar.Render(j.Err))
		b.WriteString("\n")
	}
	b.WriteString(theme.Faint.Render("enter: open day   esc: cancel"))
	return theme.BorderedBox.Render(b.String())
}
