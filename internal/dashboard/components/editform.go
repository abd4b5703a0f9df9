package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/omarelders/shipdash/internal/dashboard/themes"
	"github.com/omarelders/shipdash/internal/dashboard/viewmodel"
	"github.com/omarelders/shipdash/internal/model"
)

// EditForm is the modal for editing a single shipment's amount and
// description.
type EditForm struct {
	form        viewmodel.EditForm
	amount      textinput.Model
	description textinput.Model
	focusIdx    int

	Active bool
	Err    string
}

// NewEditForm builds the modal pre-filled from the row being edited.
func NewEditForm(s model.Shipment) EditForm {
	vm := viewmodel.NewEditForm(s)

	amount := textinput.New()
	amount.SetValue(vm.Amount)
	amount.CharLimit = 16
	amount.Width = 16
	amount.Focus()

	desc := textinput.New()
	desc.SetValue(vm.Description)
	desc.CharLimit = 200
	desc.Width = 40

	return EditForm{form: vm, amount: amount, description: desc, Active: true}
}

// Code returns the code of the row being edited.
func (f EditForm) Code() string {
	return f.form.Code
}

// Update routes input between the two fields. Tab switches focus.
func (f *EditForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "tab" {
		f.focusIdx = (f.focusIdx + 1) % 2
		if f.focusIdx == 0 {
			f.description.Blur()
			return f.amount.Focus()
		}
		f.amount.Blur()
		return f.description.Focus()
	}

	var cmd tea.Cmd
	if f.focusIdx == 0 {
		f.amount, cmd = f.amount.Update(msg)
	} else {
		f.description, cmd = f.description.Update(msg)
	}
	return cmd
}

// Patch builds the partial update from the edited fields.
func (f *EditForm) Patch() (model.ShipmentPatch, error) {
	f.form.Amount = f.amount.Value()
	f.form.Description = f.description.Value()
	return f.form.Patch()
}

// View renders the modal.
func (f EditForm) View(theme themes.Theme) string {
	var b strings.Builder
	b.WriteString(theme.Bold.Render("Edit " + f.form.Code))
	b.WriteString("\n\n")
	b.WriteString(theme.Faint.Render("Amount"))
	b.WriteString("\n")
	b.WriteString(f.amount.View())
	b.WriteString("\n")
	b.WriteString(theme.Faint.Render("Description"))
	b.WriteString("\n")
	b.WriteString(f.description.View())
	b.WriteString("\n\n")
	if f.Err != "" {
		b.WriteString(theme.ErrorBar.Render(f.Err))
		b.WriteString("\n")
	}
	b.WriteString(theme.Faint.Render("tab: switch field   enter: save   esc: cancel"))
	return theme.BorderedBox.Render(b.String())
}
