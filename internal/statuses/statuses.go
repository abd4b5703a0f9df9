// Package statuses defines the shipment status taxonomy: the local fallback
// lists, display colors, and transition rules. The fallback lists exist only
// to keep the UI usable before the live /statuses fetch lands; the server
// enumeration is always authoritative and replaces them.
package statuses

import "strings"

// Shipment status values, as stored by the backend.
const (
	RequestedAlt  = "طلب الشحن"
	Requested     = "طلب شحن"
	AtWarehouse   = "تم الاستلام بالمخزن"
	InDelivery    = "قيد التوصيل"
	Delivered     = "تم التسليم"
	Returned      = "مرتجع"
	PartDelivered = "تسليم جزئي"
	Cancelled     = "ملغى"
)

// Excluded is the terminal status whose rows are excluded from the cached
// total-value aggregate. Transitions into or out of it adjust the total by
// the row's amount.
const Excluded = Returned

// FallbackChangeable lists statuses a row may be changed FROM when the live
// taxonomy has not loaded yet.
var FallbackChangeable = []string{
	RequestedAlt,
	Requested,
	AtWarehouse,
	InDelivery,
	Delivered,
	Returned,
	PartDelivered,
	Cancelled,
}

// FallbackTargets lists statuses a row may be changed TO when the live
// taxonomy has not loaded yet.
var FallbackTargets = []string{
	Delivered,
	Returned,
	PartDelivered,
	InDelivery,
}

// Color names used by the themes package to pick a badge style.
const (
	ColorSuccess = "success"
	ColorInfo    = "info"
	ColorWarning = "warning"
	ColorError   = "error"
	ColorPending = "pending"
	ColorDefault = "default"
)

var colors = map[string]string{
	Delivered:     ColorSuccess,
	AtWarehouse:   ColorInfo,
	RequestedAlt:  ColorPending,
	Requested:     ColorPending,
	Returned:      ColorError,
	Cancelled:     ColorError,
	InDelivery:    ColorInfo,
	PartDelivered: ColorWarning,
}

// ColorFor maps a status to its display color name. Unknown statuses fall
// back to substring matching before defaulting.
func ColorFor(status string) string {
	if status == "" {
		return ColorDefault
	}
	if c, ok := colors[status]; ok {
		return c
	}
	switch {
	case strings.Contains(status, "تم"):
		return ColorSuccess
	case strings.Contains(status, "الاستلام"):
		return ColorInfo
	case strings.Contains(status, "ملغى"):
		return ColorError
	}
	return ColorDefault
}

// Taxonomy holds the target-status set a page operates against. It starts on
// the fallback list and is replaced by the live server enumeration as soon as
// one is available.
type Taxonomy struct {
	targets []string
	live    bool
}

// NewTaxonomy returns a taxonomy seeded with the fallback target list.
func NewTaxonomy() *Taxonomy {
	t := &Taxonomy{}
	t.targets = append(t.targets, FallbackTargets...)
	return t
}

// SetLive replaces the fallback list with the server-declared enumeration.
// An empty live list is ignored; the fallback stays in effect.
func (t *Taxonomy) SetLive(targets []string) {
	if len(targets) == 0 {
		return
	}
	t.targets = append(t.targets[:0:0], targets...)
	t.live = true
}

// Targets returns the current target-status set.
func (t *Taxonomy) Targets() []string {
	return t.targets
}

// IsLive reports whether the taxonomy came from the server rather than the
// stale local fallback.
func (t *Taxonomy) IsLive() bool {
	return t.live
}

// IsTarget reports whether status is a legal transition target.
func (t *Taxonomy) IsTarget(status string) bool {
	for _, s := range t.targets {
		if s == status {
			return true
		}
	}
	return false
}

// CanChange reports whether a row in the given status may be transitioned at
// all. Every known status is changeable; unknown values are not.
func CanChange(status string) bool {
	for _, s := range FallbackChangeable {
		if s == status {
			return true
		}
	}
	return false
}
