package components

import (
	"fmt"

	"github.com/omarelders/shipdash/internal/dashboard/themes"
)

// Confirm is a yes/no prompt shown before destructive actions.
type Confirm struct {
	Prompt string
	Active bool
}

// Ask opens the prompt with the given question.
func (c *Confirm) Ask(prompt string) {
	c.Prompt = prompt
	c.Active = true
}

// Dismiss closes the prompt.
func (c *Confirm) Dismiss() {
	c.Active = false
	c.Prompt = ""
}

// View renders the prompt box.
func (c Confirm) View(theme themes.Theme) string {
	if !c.Active {
		return ""
	}
	body := fmt.Sprintf("%s\n\n%s",
		theme.Bold.Render(c.Prompt),
		theme.Faint.Render("y: confirm   n/esc: cancel"))
	return theme.BorderedBox.Render(body)
}
