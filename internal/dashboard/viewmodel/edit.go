package viewmodel

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/omarelders/shipdash/internal/model"
)

// EditForm collects the editable fields of a single shipment. Fields start
// from the row's current values; only fields the user actually changed end
// up in the patch, so untouched values are never resent.
type EditForm struct {
	Code string

	originalAmount      float64
	originalDescription string

	Amount      string
	Description string
}

// NewEditForm seeds a form from the row being edited.
func NewEditForm(s model.Shipment) EditForm {
	return EditForm{
		Code:                s.Code,
		originalAmount:      s.Amount,
		originalDescription: s.Description,
		Amount:              strconv.FormatFloat(s.Amount, 'f', -1, 64),
		Description:         s.Description,
	}
}

// Patch builds the partial update from the edited fields. An unparseable
// amount fails the whole form; a form with no changes yields a zero patch
// and the caller skips the request.
func (f EditForm) Patch() (model.ShipmentPatch, error) {
	var patch model.ShipmentPatch

	amountText := strings.TrimSpace(f.Amount)
	if amountText != "" {
		amount, err := strconv.ParseFloat(amountText, 64)
		if err != nil {
			return model.ShipmentPatch{}, err
		}
		if amount != f.originalAmount {
			patch.Amount = &amount
		}
	}
	if f.Description != f.originalDescription {
		desc := f.Description
		patch.Description = &desc
	}
	return patch, nil
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDate reports whether a date input is in YYYY-MM-DD form. Free-form
// dates are rejected before they reach the server.
func ValidDate(s string) bool {
	return datePattern.MatchString(s)
}
