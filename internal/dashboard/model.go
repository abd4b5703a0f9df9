// Package dashboard implements the interactive terminal client for the
// shipment management API.
package dashboard

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/omarelders/shipdash/internal/api"
	"github.com/omarelders/shipdash/internal/dashboard/components"
	"github.com/omarelders/shipdash/internal/dashboard/themes"
	"github.com/omarelders/shipdash/internal/dashboard/viewmodel"
	"github.com/omarelders/shipdash/internal/model"
	"github.com/omarelders/shipdash/internal/prefs"
	"github.com/omarelders/shipdash/internal/statuses"
)

// View identifies the active screen.
type View int

// Dashboard screens.
const (
	ViewOverview View = iota
	ViewOrders
	ViewByDay
	ViewFiles
	ViewFileData
	ViewPayments
	ViewPaymentData
	ViewRecycle
	ViewAnalytics
)

// Page sizes per listing, matching what each screen can usefully show.
const (
	ordersPageSize  = 100
	detailPageSize  = 20
	recyclePageSize = 50
)

// pendingAction describes what a confirmed prompt will do.
type pendingAction struct {
	codes   []string
	fileID  int64
	kind    actionKind
	payment bool
}

type actionKind int

const (
	actionNone actionKind = iota
	actionDeleteRows
	actionDeleteFile
	actionRestoreRow
)

// Model holds the complete dashboard state.
type Model struct {
	client  *api.Client
	prefs   *prefs.Store
	timeout time.Duration
	keymap  KeyMap
	theme   themes.Theme

	view      View
	width     int
	height    int
	lastError string
	quitting  bool
	showHelp  bool

	taxonomy  *statuses.Taxonomy
	mutations viewmodel.Mutations

	overview components.Overview

	// All orders: the main listing.
	ordersPager  viewmodel.Pager
	ordersRows   []shipmentRow
	ordersHist   map[string]int
	ordersValue  float64
	ordersFilter viewmodel.RowFilter
	ordersTable  components.ShipmentTable
	selection    viewmodel.Selection
	search       components.SearchBox

	// Orders by day.
	days      components.DayList
	activeDay string
	dayTable  components.ShipmentTable
	daySearch components.SearchBox

	// Shipment files and their per-file pages.
	files          components.FileList
	filePager      viewmodel.Pager
	fileRows       []shipmentRow
	fileFilter     viewmodel.RowFilter
	fileTable      components.ShipmentTable
	activeFileID   int64
	activeFilename string

	// Payment files and their per-file pages.
	paymentFiles  components.FileList
	paymentPager  viewmodel.Pager
	paymentTable  components.PaymentTable
	activePayFile int64

	// Recycle bin.
	recyclePager viewmodel.Pager
	recycleTable components.ShipmentTable

	analytics components.AnalyticsView

	// Modals. At most one is active at a time.
	confirm      components.Confirm
	pending      pendingAction
	editForm     *components.EditForm
	statusPicker *components.StatusPicker
	filterForm   *components.FilterForm
	dateForm     *components.DateForm
	dayJump      *components.DateJump
}

// shipmentRow aliases the domain type so page slices read naturally.
type shipmentRow = model.Shipment

// NewModel builds the initial dashboard state.
func NewModel(client *api.Client, store *prefs.Store, timeout time.Duration) Model {
	return Model{
		client:       client,
		prefs:        store,
		timeout:      timeout,
		keymap:       DefaultKeyMap(),
		theme:        themes.Dark,
		view:         ViewOverview,
		taxonomy:     statuses.NewTaxonomy(),
		mutations:    viewmodel.NewMutations(),
		selection:    viewmodel.NewSelection(),
		search:       components.NewSearchBox(),
		daySearch:    components.NewSearchBox(),
		ordersPager:  viewmodel.NewPager(ordersPageSize),
		filePager:    viewmodel.NewPager(detailPageSize),
		paymentPager: viewmodel.NewPager(detailPageSize),
		recyclePager: viewmodel.NewPager(recyclePageSize),
		files:        components.FileList{Title: "Shipment files"},
		paymentFiles: components.FileList{Title: "Payment files"},
		analytics:    components.NewAnalyticsView(),
	}
}

// Init kicks off the initial loads.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.loadTheme(),
		m.loadTaxonomy(),
		m.loadOverview(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case themeLoadedMsg:
		if msg.name != "" {
			m.theme = themes.ByName(msg.name)
		}
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
		}
		return m, nil

	case taxonomyMsg:
		if msg.err == nil {
			m.taxonomy.SetLive(msg.tax.Targets)
		}
		return m, nil

	case overviewLoadedMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.overview.SetPage(msg.page.Data, msg.page.Total)
		return m, nil

	case ordersPageMsg:
		return m.handleOrdersPage(msg)

	case deletedPageMsg:
		return m.handleDeletedPage(msg)

	case shipmentFilesMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.files.Files = msg.files
		m.files.ClampCursor()
		return m, nil

	case fileDataMsg:
		return m.handleFileData(msg)

	case paymentFilesMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.paymentFiles.Files = msg.files
		m.paymentFiles.ClampCursor()
		return m, nil

	case paymentDataMsg:
		return m.handlePaymentData(msg)

	case daysLoadedMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.days.Days = msg.days
		if len(msg.days) > 0 && m.activeDay == "" {
			m.activeDay = msg.days[0]
			return m, m.loadDayShipments(m.activeDay)
		}
		return m, nil

	case dayShipmentsMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		if msg.date != m.activeDay {
			return m, nil // user moved to another day meanwhile
		}
		m.dayTable.Rows = msg.rows
		m.dayTable.ClampCursor()
		return m, nil

	case searchResultsMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		if msg.query != m.daySearch.Value() {
			return m, nil
		}
		m.activeDay = ""
		m.dayTable.Rows = msg.rows
		m.dayTable.ClampCursor()
		return m, nil

	case analyticsMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.analytics.Snapshot = msg.snap
		m.analytics.Highlight = -1
		return m, nil

	case debounceFiredMsg:
		return m.handleDebounce(msg)

	case suggestionsMsg:
		if msg.err != nil {
			// A failed suggestion fetch is silent; the user can still
			// submit the typed text.
			return m, nil
		}
		m.activeSearch().State.Accept(msg.seq, msg.suggestions)
		return m, nil

	case statusChangedMsg:
		return m.handleStatusChanged(msg)

	case shipmentPatchedMsg:
		return m.handlePatched(msg)

	case rowsDeletedMsg:
		return m.handleRowsDeleted(msg)

	case rowRestoredMsg:
		return m.handleRowRestored(msg)

	case fileDeletedMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		if msg.payment {
			m.paymentFiles.Remove(msg.fileID)
		} else {
			m.files.Remove(msg.fileID)
		}
		return m, nil
	}

	return m, nil
}

// activeSearch returns the search box belonging to the current view.
func (m *Model) activeSearch() *components.SearchBox {
	if m.view == ViewByDay {
		return &m.daySearch
	}
	return &m.search
}

func (m Model) handleDebounce(msg debounceFiredMsg) (tea.Model, tea.Cmd) {
	box := m.activeSearch()
	if msg.seq != box.State.Seq {
		return m, nil // a newer keystroke superseded this tick
	}
	query := box.Value()
	if len([]rune(query)) < viewmodel.MinQueryLen {
		return m, nil
	}
	return m, m.fetchSuggestions(query, msg.seq)
}

func (m Model) handleOrdersPage(msg ordersPageMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.ordersPager.Generation {
		return m, nil
	}
	if msg.err != nil {
		// Rows always reflect the last attempt; the old total stays so a
		// retry lands on the same page.
		m.lastError = msg.err.Error()
		m.ordersRows = nil
		m.ordersHist = nil
		m.ordersValue = 0
		m.refreshOrdersTable()
		return m, nil
	}
	m.lastError = ""
	m.ordersRows = msg.page.Data
	m.ordersHist = make(map[string]int, len(msg.page.Data))
	m.ordersValue = 0
	for _, row := range msg.page.Data {
		m.ordersHist[row.Status]++
		if row.Status != statuses.Excluded {
			m.ordersValue += row.Amount
		}
	}
	m.ordersPager.SetTotal(msg.page.Total)
	m.refreshOrdersTable()
	return m, nil
}

// refreshOrdersTable reapplies the row filter and selection pruning after
// the fetched page or the filter changed.
func (m *Model) refreshOrdersTable() {
	visible := m.ordersFilter.Apply(m.ordersRows)
	m.ordersTable.Rows = visible
	m.ordersTable.ClampCursor()
	m.selection.PruneTo(visible)
}

func (m Model) handleDeletedPage(msg deletedPageMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.recyclePager.Generation {
		return m, nil
	}
	if msg.err != nil {
		m.lastError = msg.err.Error()
		m.recycleTable.Rows = nil
		return m, nil
	}
	m.lastError = ""
	m.recycleTable.Rows = msg.page.Data
	m.recycleTable.ShowDeleted = true
	m.recycleTable.ClampCursor()
	m.recyclePager.SetTotal(msg.page.Total)
	return m, nil
}

func (m Model) handleFileData(msg fileDataMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.filePager.Generation || msg.fileID != m.activeFileID {
		return m, nil
	}
	if msg.err != nil {
		m.lastError = msg.err.Error()
		m.fileRows = nil
		m.refreshFileTable()
		return m, nil
	}
	m.lastError = ""
	m.fileRows = msg.page.Data
	m.activeFilename = msg.page.Filename
	m.filePager.SetTotal(msg.page.Total)
	m.refreshFileTable()
	return m, nil
}

func (m *Model) refreshFileTable() {
	m.fileTable.Rows = m.fileFilter.Apply(m.fileRows)
	m.fileTable.ClampCursor()
}

func (m Model) handlePaymentData(msg paymentDataMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.paymentPager.Generation || msg.fileID != m.activePayFile {
		return m, nil
	}
	if msg.err != nil {
		m.lastError = msg.err.Error()
		m.paymentTable.Rows = nil
		m.paymentTable.ClampCursor()
		return m, nil
	}
	m.lastError = ""
	m.paymentTable.Filename = msg.page.Filename
	m.paymentTable.Rows = msg.page.Data
	m.paymentTable.Totals = msg.page.Totals
	m.paymentTable.ClampCursor()
	m.paymentPager.SetTotal(msg.page.Total)
	return m, nil
}

func (m Model) handleStatusChanged(msg statusChangedMsg) (tea.Model, tea.Cmd) {
	m.mutations.End(msg.code)
	if msg.err != nil {
		m.lastError = msg.err.Error()
		return m, nil
	}
	m.lastError = ""
	// The row may be visible on several screens; patch wherever it is.
	if old, ok := viewmodel.ApplyStatus(m.ordersRows, msg.code, msg.newStatus); ok {
		viewmodel.ShiftHistogram(m.ordersHist, old, msg.newStatus)
		for _, row := range m.ordersRows {
			if row.Code == msg.code {
				m.ordersValue += viewmodel.TotalAdjustment(old, msg.newStatus, row.Amount)
				break
			}
		}
	}
	viewmodel.ApplyStatus(m.fileRows, msg.code, msg.newStatus)
	viewmodel.ApplyStatus(m.dayTable.Rows, msg.code, msg.newStatus)
	m.refreshOrdersTable()
	m.refreshFileTable()
	return m, nil
}

func (m Model) handlePatched(msg shipmentPatchedMsg) (tea.Model, tea.Cmd) {
	m.mutations.End(msg.code)
	if msg.err != nil {
		m.lastError = msg.err.Error()
		return m, nil
	}
	m.lastError = ""
	viewmodel.ApplyPatch(m.ordersRows, msg.code, msg.patch)
	viewmodel.ApplyPatch(m.fileRows, msg.code, msg.patch)
	viewmodel.ApplyPatch(m.dayTable.Rows, msg.code, msg.patch)
	m.refreshOrdersTable()
	m.refreshFileTable()
	return m, nil
}

// handleRowsDeleted runs after the whole batch finished. The selection is
// already gone, so only the aggregate error and the refetch remain; the
// refetch happens even on partial failure so survivors come back from the
// server, not from local guesswork.
func (m Model) handleRowsDeleted(msg rowsDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.failed > 0 {
		m.lastError = fmt.Sprintf("failed to delete %d of %d shipments", msg.failed, msg.requested)
	} else {
		m.lastError = ""
	}
	return m, tea.Batch(
		m.loadOrdersPage(m.ordersParams(), m.ordersPager.Generation),
		m.loadOverview(),
	)
}

func (m Model) handleRowRestored(msg rowRestoredMsg) (tea.Model, tea.Cmd) {
	m.mutations.End(msg.code)
	if msg.err != nil {
		m.lastError = msg.err.Error()
		return m, nil
	}
	m.lastError = ""
	m.recycleTable.Rows = removeByCode(m.recycleTable.Rows, msg.code)
	m.recycleTable.ClampCursor()
	if m.recyclePager.Total > 0 {
		m.recyclePager.SetTotal(m.recyclePager.Total - 1)
	}
	return m, m.loadDeletedPage(m.recyclePager.PageSize, m.recyclePager.Offset(), m.recyclePager.Generation)
}

func removeByCode(rows []shipmentRow, code string) []shipmentRow {
	for i, row := range rows {
		if row.Code == code {
			return append(rows[:i], rows[i+1:]...)
		}
	}
	return rows
}
