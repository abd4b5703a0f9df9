package components

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/omarelders/shipdash/internal/dashboard/themes"
	"github.com/omarelders/shipdash/internal/model"
)

// PaymentTable renders one page of a payment file together with the
// server-computed money totals for the whole file.
type PaymentTable struct {
	Filename string
	Rows     []model.PaymentRecord
	Totals   model.PaymentTotals
	Cursor   int
}

// MoveUp moves the cursor one row up.
func (t *PaymentTable) MoveUp() {
	if t.Cursor > 0 {
		t.Cursor--
	}
}

// MoveDown moves the cursor one row down.
func (t *PaymentTable) MoveDown() {
	if t.Cursor < len(t.Rows)-1 {
		t.Cursor++
	}
}

// ClampCursor pulls the cursor back inside range after the rows changed.
func (t *PaymentTable) ClampCursor() {
	if t.Cursor >= len(t.Rows) {
		t.Cursor = len(t.Rows) - 1
	}
	if t.Cursor < 0 {
		t.Cursor = 0
	}
}

// View renders the page and the totals strip.
func (t PaymentTable) View(theme themes.Theme) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(t.Filename))
	b.WriteString("\n")

	header := fmt.Sprintf("%s %s %s %s %s",
		pad("Code", colCode),
		pad("Client", colClient),
		pad("City", colCity),
		pad("Status", colStatus),
		pad("Amount", colAmount))
	b.WriteString(theme.TableHeader.Render(header))
	b.WriteString("\n")

	if len(t.Rows) == 0 {
		b.WriteString(theme.Faint.Render("no records"))
		b.WriteString("\n")
	}
	for i, row := range t.Rows {
		line := fmt.Sprintf("%s %s %s %s %s",
			pad(row.Code, colCode),
			pad(row.Client, colClient),
			pad(row.City, colCity),
			padStyled(theme.StatusBadge(row.Status), row.Status, colStatus),
			pad(fmt.Sprintf("%.2f", row.Amount), colAmount))
		if i == t.Cursor {
			line = theme.Highlighted.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.viewTotals(theme))
	return b.String()
}

func (t PaymentTable) viewTotals(theme themes.Theme) string {
	cells := []struct {
		label string
		value decimal.Decimal
	}{
		{"delivery value", t.Totals.DeliveryValue},
		{"due fees", t.Totals.DueFees},
		{"net package price", t.Totals.NetPackagePrice},
		{"amount due", t.Totals.AmountDue},
		{"net due", t.Totals.NetDue},
	}

	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf("%s %s",
			theme.Faint.Render(c.label), theme.Bold.Render(c.value.StringFixed(2)))
	}
	return strings.Join(parts, "   ")
}
