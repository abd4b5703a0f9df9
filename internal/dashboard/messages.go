package dashboard

import (
	"github.com/omarelders/shipdash/internal/api"
	"github.com/omarelders/shipdash/internal/model"
)

// Data loading messages. Each fetch message carries the generation or
// sequence number of the request that produced it so stale responses can
// be recognized and dropped.
type ordersPageMsg struct {
	err  error
	page api.ShipmentPage
	gen  int
}

type overviewLoadedMsg struct {
	err  error
	page api.ShipmentPage
}

type deletedPageMsg struct {
	err  error
	page api.ShipmentPage
	gen  int
}

type shipmentFilesMsg struct {
	err   error
	files []model.UploadedFile
}

type fileDataMsg struct {
	err    error
	page   api.FilePage
	fileID int64
	gen    int
}

type paymentFilesMsg struct {
	err   error
	files []model.UploadedFile
}

type paymentDataMsg struct {
	err    error
	page   api.PaymentPage
	fileID int64
	gen    int
}

type daysLoadedMsg struct {
	err  error
	days []string
}

type dayShipmentsMsg struct {
	err  error
	date string
	rows []model.Shipment
}

type searchResultsMsg struct {
	err   error
	query string
	rows  []model.Shipment
}

type analyticsMsg struct {
	err  error
	snap *model.AnalyticsSnapshot
}

type taxonomyMsg struct {
	err error
	tax api.StatusTaxonomy
}

// Autocomplete messages.
type debounceFiredMsg struct {
	seq int
}

type suggestionsMsg struct {
	err         error
	suggestions []model.Suggestion
	seq         int
}

// Mutation results.
type statusChangedMsg struct {
	err       error
	code      string
	newStatus string
}

type shipmentPatchedMsg struct {
	err   error
	code  string
	patch model.ShipmentPatch
}

// rowsDeletedMsg reports a finished batch delete. Failures are collapsed
// into a count; the page is refetched either way.
type rowsDeletedMsg struct {
	requested int
	failed    int
}

type rowRestoredMsg struct {
	err  error
	code string
}

type fileDeletedMsg struct {
	err     error
	fileID  int64
	payment bool
}

// Preference messages.
type themeLoadedMsg struct {
	name string
}

type themeSavedMsg struct {
	err  error
	name string
}
