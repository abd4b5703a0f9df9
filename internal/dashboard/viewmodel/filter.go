package viewmodel

import (
	"fmt"

	"github.com/omarelders/shipdash/internal/model"
)

// RowFilter narrows the rows of the current page only. It never reaches the
// server; clearing it brings back the full fetched page.
type RowFilter struct {
	PriceType string
	Status    string
	AmountMin *float64
	AmountMax *float64
}

// IsActive reports whether any criterion is set.
func (f RowFilter) IsActive() bool {
	return f.PriceType != "" || f.Status != "" || f.AmountMin != nil || f.AmountMax != nil
}

// Matches reports whether a single row passes every set criterion. A row
// with no amount is treated as zero, so it survives a minimum of zero and
// fails any positive minimum.
func (f RowFilter) Matches(s model.Shipment) bool {
	if f.PriceType != "" && s.PriceType != f.PriceType {
		return false
	}
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.AmountMin != nil && s.Amount < *f.AmountMin {
		return false
	}
	if f.AmountMax != nil && s.Amount > *f.AmountMax {
		return false
	}
	return true
}

// Apply returns the rows of the page that pass the filter, preserving
// order. With no active criteria it returns the input slice unchanged.
func (f RowFilter) Apply(rows []model.Shipment) []model.Shipment {
	if !f.IsActive() {
		return rows
	}
	out := make([]model.Shipment, 0, len(rows))
	for _, s := range rows {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// ShownLabel renders the "(N shown after filters)" hint, or an empty string
// when the filter is inactive.
func (f RowFilter) ShownLabel(shown int) string {
	if !f.IsActive() {
		return ""
	}
	if shown == 1 {
		return "(1 shown after filters)"
	}
	return fmt.Sprintf("(%d shown after filters)", shown)
}
