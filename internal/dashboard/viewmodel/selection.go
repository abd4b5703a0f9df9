package viewmodel

import "github.com/omarelders/shipdash/internal/model"

// Selection tracks the set of row codes picked in edit mode. The set only
// exists while edit mode is on; leaving edit mode, changing page or
// changing filters clears it.
type Selection struct {
	codes map[string]bool

	// EditMode gates all selection input. When off the set is empty.
	EditMode bool
}

// NewSelection returns an empty selection with edit mode off.
func NewSelection() Selection {
	return Selection{codes: make(map[string]bool)}
}

// ToggleEditMode flips edit mode. Turning it off drops the selection.
func (s *Selection) ToggleEditMode() {
	s.EditMode = !s.EditMode
	if !s.EditMode {
		s.Clear()
	}
}

// Toggle adds or removes a single code. Ignored outside edit mode.
func (s *Selection) Toggle(code string) {
	if !s.EditMode {
		return
	}
	if s.codes[code] {
		delete(s.codes, code)
		return
	}
	s.codes[code] = true
}

// ToggleAll selects every visible row, or clears the selection when every
// visible row is already selected. Visibility means after filtering, so
// hidden rows are never swept in.
func (s *Selection) ToggleAll(visible []model.Shipment) {
	if !s.EditMode {
		return
	}
	all := len(visible) > 0
	for _, row := range visible {
		if !s.codes[row.Code] {
			all = false
			break
		}
	}
	if all {
		s.Clear()
		return
	}
	for _, row := range visible {
		s.codes[row.Code] = true
	}
}

// Has reports whether a code is selected.
func (s Selection) Has(code string) bool {
	return s.codes[code]
}

// Count returns the number of selected codes.
func (s Selection) Count() int {
	return len(s.codes)
}

// Codes returns the selected codes in no particular order.
func (s Selection) Codes() []string {
	out := make([]string, 0, len(s.codes))
	for code := range s.codes {
		out = append(out, code)
	}
	return out
}

// CanEdit reports whether the single-row edit action is available.
func (s Selection) CanEdit() bool {
	return s.EditMode && len(s.codes) == 1
}

// CanDelete reports whether the bulk delete action is available.
func (s Selection) CanDelete() bool {
	return s.EditMode && len(s.codes) >= 1
}

// Clear empties the selection without touching edit mode.
func (s *Selection) Clear() {
	s.codes = make(map[string]bool)
}

// PruneTo drops any selected code no longer among the visible rows. Called
// after filters change so the selection never refers to hidden rows.
func (s *Selection) PruneTo(visible []model.Shipment) {
	keep := make(map[string]bool, len(s.codes))
	for _, row := range visible {
		if s.codes[row.Code] {
			keep[row.Code] = true
		}
	}
	s.codes = keep
}
