// Package components holds the reusable view pieces of the dashboard:
// tables, the search box with its suggestion dropdown, modals and chart
// renderers. Components render state; they never talk to the network.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/omarelders/shipdash/internal/dashboard/themes"
	"github.com/omarelders/shipdash/internal/model"
)

// ShipmentTable renders pages of shipment rows with a movable cursor and
// optional selection marks.
type ShipmentTable struct {
	Rows   []model.Shipment
	Cursor int

	// ShowDeleted swaps the date column for the deletion timestamp,
	// used by the recycle bin.
	ShowDeleted bool

	// Selected reports whether a row is marked; nil means no selection
	// column is drawn.
	Selected func(code string) bool

	// Busy reports whether a mutation for the row is still running.
	Busy func(code string) bool
}

// MoveUp moves the cursor one row up, stopping at the top.
func (t *ShipmentTable) MoveUp() {
	if t.Cursor > 0 {
		t.Cursor--
	}
}

// MoveDown moves the cursor one row down, stopping at the bottom.
func (t *ShipmentTable) MoveDown() {
	if t.Cursor < len(t.Rows)-1 {
		t.Cursor++
	}
}

// ClampCursor pulls the cursor back inside the row range after the rows
// changed underneath it.
func (t *ShipmentTable) ClampCursor() {
	if t.Cursor >= len(t.Rows) {
		t.Cursor = len(t.Rows) - 1
	}
	if t.Cursor < 0 {
		t.Cursor = 0
	}
}

// CurrentRow returns the row under the cursor.
func (t ShipmentTable) CurrentRow() (model.Shipment, bool) {
	if t.Cursor < 0 || t.Cursor >= len(t.Rows) {
		return model.Shipment{}, false
	}
	return t.Rows[t.Cursor], true
}

const (
	colCode      = 12
	colDate      = 11
	colClient    = 16
	colRecipient = 16
	colCity      = 12
	colStatus    = 18
	colAmount    = 10
)

// View renders the table.
func (t ShipmentTable) View(theme themes.Theme) string {
	var b strings.Builder

	dateHeading := "Date"
	if t.ShowDeleted {
		dateHeading = "Deleted"
	}
	header := fmt.Sprintf("%s %s %s %s %s %s %s",
		pad("Code", colCode),
		pad(dateHeading, colDate),
		pad("Client", colClient),
		pad("Recipient", colRecipient),
		pad("City", colCity),
		pad("Status", colStatus),
		pad("Amount", colAmount),
	)
	if t.Selected != nil {
		header = "    " + header
	}
	b.WriteString(theme.TableHeader.Render(header))
	b.WriteString("\n")

	if len(t.Rows) == 0 {
		b.WriteString(theme.Faint.Render("no shipments"))
		return b.String()
	}

	for i, row := range t.Rows {
		date := row.Date
		if t.ShowDeleted {
			date = row.DeletedAt
		}
		line := fmt.Sprintf("%s %s %s %s %s %s %s",
			pad(row.Code, colCode),
			pad(date, colDate),
			pad(row.Client, colClient),
			pad(row.Recipient, colRecipient),
			pad(row.City, colCity),
			padStyled(theme.StatusBadge(row.Status), row.Status, colStatus),
			pad(fmt.Sprintf("%.2f", row.Amount), colAmount),
		)
		if t.Busy != nil && t.Busy(row.Code) {
			line += " " + theme.Faint.Render("…")
		}
		if t.Selected != nil {
			mark := "[ ]"
			if t.Selected(row.Code) {
				mark = "[x]"
			}
			line = mark + " " + line
		}
		if i == t.Cursor {
			line = theme.Highlighted.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// pad truncates or right-pads a cell to the given display width.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// padStyled pads based on the plain text but emits the styled rendering,
// so ANSI sequences don't count toward the width.
func padStyled(styled, plain string, width int) string {
	plainWidth := lipgloss.Width(plain)
	if plainWidth >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-plainWidth)
}
