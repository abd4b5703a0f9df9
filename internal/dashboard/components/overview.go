package components

import (
	"fmt"
	"strings"

	"github.com/omarelders/shipdash/internal/dashboard/themes"
	"github.com/omarelders/shipdash/internal/model"
	"github.com/omarelders/shipdash/internal/statuses"
)

// Overview is the landing panel: headline numbers derived from a single
// recent-shipments fetch plus the five newest rows. It is a quick glance,
// not an aggregate; the analytics view has the server-computed numbers.
type Overview struct {
	Rows  []model.Shipment
	Total int
}

// SetPage installs the fetched sample.
func (o *Overview) SetPage(rows []model.Shipment, total int) {
	o.Rows = rows
	o.Total = total
}

// Stats derives the headline counters from the sample.
func (o Overview) Stats() (delivered, inDelivery, returned int, value float64) {
	for _, row := range o.Rows {
		switch row.Status {
		case statuses.Delivered:
			delivered++
		case statuses.InDelivery:
			inDelivery++
		case statuses.Returned:
			returned++
		}
		if row.Status != statuses.Excluded {
			value += row.Amount
		}
	}
	return delivered, inDelivery, returned, value
}

// Recent returns the five newest rows of the sample.
func (o Overview) Recent() []model.Shipment {
	if len(o.Rows) <= 5 {
		return o.Rows
	}
	return o.Rows[:5]
}

// View renders the panel.
func (o Overview) View(theme themes.Theme) string {
	delivered, inDelivery, returned, value := o.Stats()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Overview"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d    %s %d    %s %d    %s %d    %s %.2f\n\n",
		theme.Faint.Render("total"), o.Total,
		theme.Faint.Render("delivered"), delivered,
		theme.Faint.Render("in delivery"), inDelivery,
		theme.Faint.Render("returned"), returned,
		theme.Faint.Render("sample value"), value))

	b.WriteString(theme.Subtitle.Render("Recent shipments"))
	b.WriteString("\n")
	recent := ShipmentTable{Rows: o.Recent(), Cursor: -1}
	b.WriteString(recent.View(theme))
	return b.String()
}
