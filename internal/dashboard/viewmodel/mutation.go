package viewmodel

import (
	"github.com/omarelders/shipdash/internal/model"
	"github.com/omarelders/shipdash/internal/statuses"
)

// Mutations tracks status changes in flight so a row cannot be mutated
// twice concurrently. Completed changes are applied to the fetched page in
// place; no refetch happens on success.
type Mutations struct {
	inFlight map[string]bool
}

// NewMutations returns an empty in-flight tracker.
func NewMutations() Mutations {
	return Mutations{inFlight: make(map[string]bool)}
}

// Begin marks a row as mutating. Returns false if a change for the same
// code is already running, in which case the caller must not start another.
func (m *Mutations) Begin(code string) bool {
	if m.inFlight[code] {
		return false
	}
	m.inFlight[code] = true
	return true
}

// End clears the in-flight mark whether the change succeeded or failed.
func (m *Mutations) End(code string) {
	delete(m.inFlight, code)
}

// InFlight reports whether a change for the code is running.
func (m Mutations) InFlight(code string) bool {
	return m.inFlight[code]
}

// ApplyStatus patches the row with the given code in place and returns the
// old status. The bool result is false when the code is not on the page,
// which happens when the user paged away while the request ran.
func ApplyStatus(rows []model.Shipment, code, newStatus string) (string, bool) {
	for i := range rows {
		if rows[i].Code == code {
			old := rows[i].Status
			rows[i].Status = newStatus
			return old, true
		}
	}
	return "", false
}

// ApplyPatch applies a partial edit to the row with the given code.
func ApplyPatch(rows []model.Shipment, code string, patch model.ShipmentPatch) bool {
	for i := range rows {
		if rows[i].Code != code {
			continue
		}
		if patch.Amount != nil {
			rows[i].Amount = *patch.Amount
		}
		if patch.Description != nil {
			rows[i].Description = *patch.Description
		}
		return true
	}
	return false
}

// TotalAdjustment returns the delta to apply to the displayed total value
// when a row moves between statuses. Returned shipments do not count toward
// the total, so moving a row into that status subtracts its amount and
// moving it out adds the amount back. Every other transition is neutral.
func TotalAdjustment(oldStatus, newStatus string, amount float64) float64 {
	wasExcluded := oldStatus == statuses.Excluded
	isExcluded := newStatus == statuses.Excluded
	switch {
	case wasExcluded && !isExcluded:
		return amount
	case !wasExcluded && isExcluded:
		return -amount
	default:
		return 0
	}
}

// ShiftHistogram moves one unit between status buckets after a successful
// change, keeping the distribution consistent without a refetch. Buckets
// never go negative; an empty source bucket is removed. An empty new status
// removes the unit without adding it anywhere, used when a row is deleted.
func ShiftHistogram(hist map[string]int, oldStatus, newStatus string) {
	if oldStatus == newStatus {
		return
	}
	if hist[oldStatus] > 0 {
		hist[oldStatus]--
		if hist[oldStatus] == 0 {
			delete(hist, oldStatus)
		}
	}
	if newStatus != "" {
		hist[newStatus]++
	}
}
