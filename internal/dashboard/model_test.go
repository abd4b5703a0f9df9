package dashboard

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarelders/shipdash/internal/api"
	"github.com/omarelders/shipdash/internal/dashboard/components"
	"github.com/omarelders/shipdash/internal/model"
	"github.com/omarelders/shipdash/internal/statuses"
)

func newTestModel() Model {
	client := api.NewClient("http://localhost:1", time.Second)
	return NewModel(client, nil, time.Second)
}

func ordersPage(codes ...string) api.ShipmentPage {
	rows := make([]model.Shipment, len(codes))
	for i, code := range codes {
		rows[i] = model.Shipment{Code: code, Status: statuses.InDelivery, Amount: 100}
	}
	return api.ShipmentPage{Data: rows, Total: len(codes)}
}

func TestUpdate_OrdersPageInstalled(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(ordersPageMsg{gen: 0, page: ordersPage("A", "B")})
	got := updated.(Model)

	require.Len(t, got.ordersTable.Rows, 2)
	assert.Equal(t, 2, got.ordersPager.Total)
}

func TestUpdate_StaleOrdersPageDropped(t *testing.T) {
	m := newTestModel()
	m.ordersPager.SetSearch("newer query") // bumps generation to 1

	updated, _ := m.Update(ordersPageMsg{gen: 0, page: ordersPage("A")})
	got := updated.(Model)

	assert.Empty(t, got.ordersTable.Rows, "response for an old generation must be ignored")
}

func TestUpdate_FetchErrorSurfacedVerbatim(t *testing.T) {
	m := newTestModel()

	apiErr := &api.Error{Detail: "database is locked", StatusCode: 503}
	updated, _ := m.Update(ordersPageMsg{gen: 0, err: apiErr})
	got := updated.(Model)

	assert.Equal(t, "database is locked", got.lastError)
}

func TestUpdate_StatusChangePatchesRowInPlace(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(ordersPageMsg{gen: 0, page: ordersPage("A", "B")})
	m = updated.(Model)
	m.mutations.Begin("B")

	updated, _ = m.Update(statusChangedMsg{code: "B", newStatus: statuses.Delivered})
	got := updated.(Model)

	assert.Equal(t, statuses.Delivered, got.ordersRows[1].Status)
	assert.Equal(t, statuses.InDelivery, got.ordersRows[0].Status)
	assert.False(t, got.mutations.InFlight("B"))
}

func TestUpdate_TotalValueTracksExcludedTransitions(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(ordersPageMsg{gen: 0, page: ordersPage("A", "B")})
	m = updated.(Model)
	assert.Equal(t, 200.0, m.ordersValue, "both rows count while neither is returned")

	m.mutations.Begin("A")
	updated, _ = m.Update(statusChangedMsg{code: "A", newStatus: statuses.Returned})
	m = updated.(Model)
	assert.Equal(t, 100.0, m.ordersValue, "moving a row into returned subtracts its amount")

	m.mutations.Begin("A")
	updated, _ = m.Update(statusChangedMsg{code: "A", newStatus: statuses.Delivered})
	m = updated.(Model)
	assert.Equal(t, 200.0, m.ordersValue, "moving it back adds the amount again")
}

func TestUpdate_StatusChangeFailureKeepsRow(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(ordersPageMsg{gen: 0, page: ordersPage("A")})
	m = updated.(Model)
	m.mutations.Begin("A")

	updated, _ = m.Update(statusChangedMsg{
		code:      "A",
		newStatus: statuses.Delivered,
		err:       &api.Error{Detail: "transition not allowed", StatusCode: 409},
	})
	got := updated.(Model)

	assert.Equal(t, statuses.InDelivery, got.ordersRows[0].Status, "row must keep its old status")
	assert.Equal(t, "transition not allowed", got.lastError)
	assert.False(t, got.mutations.InFlight("A"), "failed change must release the row")
}

func TestUpdate_BatchDeleteRefetchesOnSuccess(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(ordersPageMsg{gen: 0, page: ordersPage("A", "B", "C")})
	m = updated.(Model)

	updated, cmd := m.Update(rowsDeletedMsg{requested: 2, failed: 0})
	got := updated.(Model)

	assert.Empty(t, got.lastError)
	assert.NotNil(t, cmd, "the page must be refetched after a batch delete")
}

func TestUpdate_PartialDeleteFailureAggregatedAndRefetched(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(ordersPageMsg{gen: 0, page: ordersPage("A", "B", "C")})
	m = updated.(Model)

	updated, cmd := m.Update(rowsDeletedMsg{requested: 3, failed: 1})
	got := updated.(Model)

	assert.Equal(t, "failed to delete 1 of 3 shipments", got.lastError)
	assert.NotNil(t, cmd, "the refetch happens even on partial failure")
}

func TestUpdate_FetchErrorClearsRowsKeepsTotal(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(ordersPageMsg{gen: 0, page: ordersPage("A", "B")})
	m = updated.(Model)

	updated, _ = m.Update(ordersPageMsg{gen: 0, err: errors.New("boom")})
	got := updated.(Model)

	assert.Empty(t, got.ordersTable.Rows, "a failed fetch clears the stale rows")
	assert.Equal(t, 2, got.ordersPager.Total, "the old total stays so a retry lands on the same page")
}

func TestUpdate_RestoreRemovesFromRecycleBin(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(deletedPageMsg{gen: 0, page: ordersPage("X", "Y")})
	m = updated.(Model)
	m.mutations.Begin("X")

	updated, cmd := m.Update(rowRestoredMsg{code: "X"})
	got := updated.(Model)

	require.Len(t, got.recycleTable.Rows, 1)
	assert.Equal(t, "Y", got.recycleTable.Rows[0].Code)
	assert.Equal(t, 1, got.recyclePager.Total)
	assert.False(t, got.mutations.InFlight("X"))
	assert.NotNil(t, cmd, "the recycle page is refetched after a restore")
}

func TestUpdate_TaxonomyReplacesFallback(t *testing.T) {
	m := newTestModel()
	assert.False(t, m.taxonomy.IsLive())

	updated, _ := m.Update(taxonomyMsg{tax: api.StatusTaxonomy{
		Targets: []string{statuses.Delivered, statuses.Returned},
	}})
	got := updated.(Model)

	assert.True(t, got.taxonomy.IsLive())
	assert.Equal(t, []string{statuses.Delivered, statuses.Returned}, got.taxonomy.Targets())
}

func TestUpdate_TaxonomyFetchFailureKeepsFallback(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(taxonomyMsg{err: errors.New("boom")})
	got := updated.(Model)

	assert.False(t, got.taxonomy.IsLive())
	assert.Equal(t, statuses.FallbackTargets, got.taxonomy.Targets())
}

func TestUpdate_StaleDayResultDropped(t *testing.T) {
	m := newTestModel()
	m.activeDay = "2026-08-02"

	updated, _ := m.Update(dayShipmentsMsg{
		date: "2026-08-01",
		rows: []model.Shipment{{Code: "A"}},
	})
	got := updated.(Model)

	assert.Empty(t, got.dayTable.Rows, "result for a day the user left must be dropped")
}

func TestUpdate_DayJumpValidatesBeforeFetching(t *testing.T) {
	m := newTestModel()
	m.view = ViewByDay
	jump := components.NewDateJump()
	m.dayJump = &jump
	m.dayJump.SetValue("2026-8-1")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)

	require.NotNil(t, got.dayJump)
	assert.NotEmpty(t, got.dayJump.Err)
	assert.Nil(t, cmd, "a malformed date must never reach the network")

	got.dayJump.SetValue("2026-08-01")
	updated, cmd = got.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got = updated.(Model)

	assert.Nil(t, got.dayJump)
	assert.Equal(t, "2026-08-01", got.activeDay)
	assert.NotNil(t, cmd, "a valid date fetches that day's shipments")
}

func TestUpdate_ThemeLoaded(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(themeLoadedMsg{name: "light"})
	got := updated.(Model)
	assert.Equal(t, "light", got.theme.Name)

	updated, _ = got.Update(themeLoadedMsg{name: ""})
	got = updated.(Model)
	assert.Equal(t, "light", got.theme.Name, "missing preference keeps the current theme")
}

func TestUpdate_SuggestionsAcceptedOnlyWhenCurrent(t *testing.T) {
	m := newTestModel()
	seq, fetch := m.search.State.Keystroke("ahm")
	require.True(t, fetch)

	updated, _ := m.Update(suggestionsMsg{
		seq:         seq,
		suggestions: []model.Suggestion{{Value: "أحمد", Type: model.SuggestionClient, Count: 3}},
	})
	got := updated.(Model)
	assert.True(t, got.search.State.Open)

	// A stale sequence arriving later must not reopen or replace.
	got.search.State.Keystroke("ahme")
	updated, _ = got.Update(suggestionsMsg{seq: seq, suggestions: nil})
	got = updated.(Model)
	assert.True(t, got.search.State.Open, "stale empty result must not clobber the open dropdown")
}

func TestUpdate_DebounceFiresOnlyForCurrentKeystroke(t *testing.T) {
	m := newTestModel()
	m.search.State.Keystroke("a")
	stale, _ := m.search.State.Keystroke("ah")
	current, fetch := m.search.State.Keystroke("ahm")
	require.True(t, fetch)
	m.search.SetValue("ahm")

	_, cmd := m.Update(debounceFiredMsg{seq: stale})
	assert.Nil(t, cmd, "a superseded tick must not fetch")

	_, cmd = m.Update(debounceFiredMsg{seq: current})
	assert.NotNil(t, cmd, "only the last keystroke's tick fetches")
}

func TestUpdate_DebounceSkipsShortQueries(t *testing.T) {
	m := newTestModel()
	seq, _ := m.search.State.Keystroke("a")
	m.search.SetValue("a")

	_, cmd := m.Update(debounceFiredMsg{seq: seq})
	assert.Nil(t, cmd, "queries below the minimum length never reach the network")
}

func TestUpdate_StatusPickerRefusedWhileChangeInFlight(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(ordersPageMsg{gen: 0, page: ordersPage("A")})
	m = updated.(Model)
	m.view = ViewOrders
	m.mutations.Begin("A")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	got := updated.(Model)

	assert.Nil(t, got.statusPicker)
	assert.Equal(t, "another change for this shipment is still running", got.lastError)
}

func TestUpdate_DeleteWithoutSelectionReportsError(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(ordersPageMsg{gen: 0, page: ordersPage("A")})
	m = updated.(Model)
	m.view = ViewOrders
	m.selection.ToggleEditMode()

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	got := updated.(Model)

	assert.False(t, got.confirm.Active)
	assert.Equal(t, "no rows selected", got.lastError)
}

func TestUpdate_FileDeletedRemovedFromList(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(shipmentFilesMsg{files: []model.UploadedFile{
		{ID: 1, Filename: "a.xlsx"},
		{ID: 2, Filename: "b.xlsx"},
	}})
	m = updated.(Model)

	updated, _ = m.Update(fileDeletedMsg{fileID: 1})
	got := updated.(Model)

	require.Len(t, got.files.Files, 1)
	assert.Equal(t, int64(2), got.files.Files[0].ID)
}
