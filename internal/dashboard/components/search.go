package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/omarelders/shipdash/internal/dashboard/themes"
	"github.com/omarelders/shipdash/internal/dashboard/viewmodel"
	"github.com/omarelders/shipdash/internal/model"
)

var suggestionHeadings = map[model.SuggestionType]string{
	model.SuggestionCode:      "Codes",
	model.SuggestionClient:    "Clients",
	model.SuggestionRecipient: "Recipients",
	model.SuggestionCity:      "Cities",
}

// SearchBox is the search input with its autocomplete dropdown.
type SearchBox struct {
	input textinput.Model

	// State is the suggestion bookkeeping: debounce sequence, dropdown
	// contents and cursor.
	State viewmodel.Autocomplete
}

// NewSearchBox returns an unfocused search box.
func NewSearchBox() SearchBox {
	in := textinput.New()
	in.Placeholder = "search code, client, recipient or city"
	in.CharLimit = 120
	in.Width = 50
	return SearchBox{input: in}
}

// Focus puts the cursor into the input.
func (s *SearchBox) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes focus and closes the dropdown.
func (s *SearchBox) Blur() {
	s.input.Blur()
	s.State.Close()
}

// Focused reports whether the input has focus.
func (s SearchBox) Focused() bool {
	return s.input.Focused()
}

// Value returns the current query text.
func (s SearchBox) Value() string {
	return s.input.Value()
}

// SetValue replaces the query text without triggering a fetch.
func (s *SearchBox) SetValue(v string) {
	s.input.SetValue(v)
	s.State.Query = v
}

// Update feeds a message to the text input. When the text changed it
// returns the new debounce sequence and whether a fetch should be
// scheduled once the debounce fires.
func (s *SearchBox) Update(msg tea.Msg) (tea.Cmd, int, bool) {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	after := s.input.Value()
	if after == before {
		return cmd, 0, false
	}
	seq, fetch := s.State.Keystroke(after)
	return cmd, seq, fetch
}

// View renders the input and, when open, the grouped dropdown below it.
func (s SearchBox) View(theme themes.Theme) string {
	var b strings.Builder
	b.WriteString(s.input.View())

	if !s.State.Open {
		return b.String()
	}

	b.WriteString("\n")
	var lastType model.SuggestionType
	for i, sug := range s.State.Suggestions {
		if sug.Type != lastType {
			b.WriteString(theme.Faint.Render(suggestionHeadings[sug.Type]))
			b.WriteString("\n")
			lastType = sug.Type
		}
		line := fmt.Sprintf("  %s (%d)", sug.Value, sug.Count)
		if i == s.State.Cursor {
			line = theme.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
