package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/omarelders/shipdash/internal/dashboard/themes"
	"github.com/omarelders/shipdash/internal/dashboard/viewmodel"
)

// FilterForm collects the page-local row filter criteria. Applying it
// narrows the rows already fetched; it never refetches.
type FilterForm struct {
	fields   []textinput.Model
	focusIdx int

	Active     bool
	WithStatus bool
	Err        string
}

const (
	fieldPriceType = iota
	fieldAmountMin
	fieldAmountMax
	fieldStatus
)

// NewFilterForm builds the modal pre-filled from the active filter. The
// status field only appears on views that filter by status.
func NewFilterForm(current viewmodel.RowFilter, withStatus bool) FilterForm {
	mk := func(placeholder, value string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 40
		in.Width = 24
		in.SetValue(value)
		return in
	}

	fields := []textinput.Model{
		mk("price type (exact)", current.PriceType),
		mk("min amount", floatText(current.AmountMin)),
		mk("max amount", floatText(current.AmountMax)),
	}
	if withStatus {
		fields = append(fields, mk("status (exact)", current.Status))
	}
	fields[0].Focus()

	return FilterForm{fields: fields, Active: true, WithStatus: withStatus}
}

func floatText(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

// Update routes input to the focused field. Tab cycles the fields.
func (f *FilterForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "tab" {
		f.fields[f.focusIdx].Blur()
		f.focusIdx = (f.focusIdx + 1) % len(f.fields)
		return f.fields[f.focusIdx].Focus()
	}

	var cmd tea.Cmd
	f.fields[f.focusIdx], cmd = f.fields[f.focusIdx].Update(msg)
	return cmd
}

// Filter builds the row filter from the fields. Empty fields mean the
// criterion is unset; a non-numeric amount bound fails the form.
func (f FilterForm) Filter() (viewmodel.RowFilter, error) {
	out := viewmodel.RowFilter{
		PriceType: strings.TrimSpace(f.fields[fieldPriceType].Value()),
	}
	var err error
	if out.AmountMin, err = parseBound(f.fields[fieldAmountMin].Value()); err != nil {
		return viewmodel.RowFilter{}, err
	}
	if out.AmountMax, err = parseBound(f.fields[fieldAmountMax].Value()); err != nil {
		return viewmodel.RowFilter{}, err
	}
	if f.WithStatus {
		out.Status = strings.TrimSpace(f.fields[fieldStatus].Value())
	}
	return out, nil
}

func parseBound(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// View renders the modal.
func (f FilterForm) View(theme themes.Theme) string {
	labels := []string{"Price type", "Min amount", "Max amount", "Status"}

	var b strings.Builder
	b.WriteString(theme.Bold.Render("Filters"))
	b.WriteString("\n\n")
	for i, field := range f.fields {
		b.WriteString(theme.Faint.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(field.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if f.Err != "" {
		b.WriteString(theme.ErrorBar.Render(f.Err))
		b.WriteString("\n")
	}
	b.WriteString(theme.Faint.Render("tab: next field   enter: apply   ctrl+r: clear   esc: cancel"))
	return theme.BorderedBox.Render(b.String())
}
