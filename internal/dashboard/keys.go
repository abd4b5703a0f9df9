package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/omarelders/shipdash/internal/api"
	"github.com/omarelders/shipdash/internal/common"
	"github.com/omarelders/shipdash/internal/dashboard/components"
	"github.com/omarelders/shipdash/internal/dashboard/themes"
	"github.com/omarelders/shipdash/internal/dashboard/viewmodel"
	"github.com/omarelders/shipdash/internal/statuses"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	// Modals swallow input while active.
	if m.confirm.Active {
		return m.handleConfirmKey(msg)
	}
	if m.editForm != nil {
		return m.handleEditFormKey(msg)
	}
	if m.statusPicker != nil {
		return m.handleStatusPickerKey(msg)
	}
	if m.filterForm != nil {
		return m.handleFilterFormKey(msg)
	}
	if m.dateForm != nil {
		return m.handleDateFormKey(msg)
	}
	if m.dayJump != nil {
		return m.handleDayJumpKey(msg)
	}
	if m.activeSearch().Focused() {
		return m.handleSearchKey(msg)
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keymap.ToggleTheme):
		return m.toggleTheme()
	case key.Matches(msg, m.keymap.Overview):
		m.view = ViewOverview
		return m, m.loadOverview()
	case key.Matches(msg, m.keymap.Orders):
		return m.switchToOrders()
	case key.Matches(msg, m.keymap.ByDay):
		m.view = ViewByDay
		return m, m.loadDays()
	case key.Matches(msg, m.keymap.Files):
		m.view = ViewFiles
		return m, m.loadShipmentFiles()
	case key.Matches(msg, m.keymap.Payments):
		m.view = ViewPayments
		return m, m.loadPaymentFiles()
	case key.Matches(msg, m.keymap.Recycle):
		return m.switchToRecycle()
	case key.Matches(msg, m.keymap.Analytics):
		m.view = ViewAnalytics
		return m, m.loadAnalytics()
	}

	switch m.view {
	case ViewOrders:
		return m.handleOrdersKey(msg)
	case ViewByDay:
		return m.handleByDayKey(msg)
	case ViewFiles:
		return m.handleFilesKey(msg)
	case ViewFileData:
		return m.handleFileDataKey(msg)
	case ViewPayments:
		return m.handlePaymentsKey(msg)
	case ViewPaymentData:
		return m.handlePaymentDataKey(msg)
	case ViewRecycle:
		return m.handleRecycleKey(msg)
	case ViewAnalytics:
		return m.handleAnalyticsKey(msg)
	}
	return m, nil
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	next := "light"
	if m.theme.Name == "light" {
		next = "dark"
	}
	m.theme = themes.ByName(next)
	return m, m.saveTheme(next)
}

func (m Model) switchToOrders() (tea.Model, tea.Cmd) {
	m.view = ViewOrders
	return m, m.loadOrdersPage(m.ordersParams(), m.ordersPager.Generation)
}

func (m Model) ordersParams() api.ListParams {
	return api.ListParams{
		Search:   m.ordersPager.Search,
		DateFrom: m.ordersPager.DateFrom,
		DateTo:   m.ordersPager.DateTo,
		Limit:    m.ordersPager.PageSize,
		Offset:   m.ordersPager.Offset(),
	}
}

func (m Model) switchToRecycle() (tea.Model, tea.Cmd) {
	m.view = ViewRecycle
	return m, m.loadDeletedPage(m.recyclePager.PageSize, m.recyclePager.Offset(), m.recyclePager.Generation)
}

// Orders view.

func (m Model) handleOrdersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		m.ordersTable.MoveUp()
	case key.Matches(msg, m.keymap.Down):
		m.ordersTable.MoveDown()

	case key.Matches(msg, m.keymap.NextPage):
		if m.ordersPager.Next() {
			return m.ordersPageChanged()
		}
	case key.Matches(msg, m.keymap.PrevPage):
		if m.ordersPager.Prev() {
			return m.ordersPageChanged()
		}
	case key.Matches(msg, m.keymap.FirstPage):
		if m.ordersPager.First() {
			return m.ordersPageChanged()
		}
	case key.Matches(msg, m.keymap.LastPage):
		if m.ordersPager.Last() {
			return m.ordersPageChanged()
		}

	case key.Matches(msg, m.keymap.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keymap.Filter):
		form := components.NewFilterForm(m.ordersFilter, false)
		m.filterForm = &form
		return m, nil
	case msg.String() == "D":
		form := components.NewDateForm(m.ordersPager.DateFrom, m.ordersPager.DateTo)
		m.dateForm = &form
		return m, nil

	case key.Matches(msg, m.keymap.EditMode):
		m.selection.ToggleEditMode()
	case key.Matches(msg, m.keymap.ToggleSelect):
		if row, ok := m.ordersTable.CurrentRow(); ok {
			m.selection.Toggle(row.Code)
		}
	case key.Matches(msg, m.keymap.SelectAll):
		m.selection.ToggleAll(m.ordersTable.Rows)

	case key.Matches(msg, m.keymap.Edit):
		if m.selection.CanEdit() {
			code := m.selection.Codes()[0]
			for _, row := range m.ordersTable.Rows {
				if row.Code == code {
					form := components.NewEditForm(row)
					m.editForm = &form
					break
				}
			}
		}
	case key.Matches(msg, m.keymap.Delete):
		if !m.selection.CanDelete() {
			if m.selection.EditMode {
				m.lastError = common.ErrNoRowsSelected.Error()
			}
			return m, nil
		}
		m.pending = pendingAction{kind: actionDeleteRows, codes: m.selection.Codes()}
		m.confirm.Ask(fmt.Sprintf("Delete %d shipment(s)?", m.selection.Count()))

	case key.Matches(msg, m.keymap.ChangeStatus):
		if row, ok := m.ordersTable.CurrentRow(); ok {
			return m.openStatusPicker(row.Code, row.Status)
		}
	case key.Matches(msg, m.keymap.Refresh):
		return m, m.loadOrdersPage(m.ordersParams(), m.ordersPager.Generation)
	}
	return m, nil
}

// ordersPageChanged runs after any page navigation: the selection belongs
// to the previous page and is dropped, then the new page is fetched.
func (m Model) ordersPageChanged() (tea.Model, tea.Cmd) {
	m.selection.Clear()
	return m, m.loadOrdersPage(m.ordersParams(), m.ordersPager.Generation)
}

func (m Model) openStatusPicker(code, current string) (tea.Model, tea.Cmd) {
	if !statuses.CanChange(current) {
		m.lastError = "this status cannot be changed"
		return m, nil
	}
	if m.mutations.InFlight(code) {
		m.lastError = common.ErrMutationInFlight.Error()
		return m, nil
	}
	picker := components.NewStatusPicker(code, m.taxonomy.Targets())
	m.statusPicker = &picker
	return m, nil
}

// Search input handling, shared by the orders and by-day views.

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	box := m.activeSearch()
	switch msg.String() {
	case "esc":
		if box.State.Open {
			box.State.Close()
			return m, nil
		}
		box.Blur()
		return m, nil
	case "up":
		box.State.MoveUp()
		return m, nil
	case "down":
		box.State.MoveDown()
		return m, nil
	case "enter":
		term := box.State.Submit()
		box.SetValue(term)
		box.Blur()
		return m.submitSearch(term)
	}

	cmd, seq, fetch := box.Update(msg)
	if fetch {
		return m, tea.Batch(cmd, debounce(seq))
	}
	return m, cmd
}

func (m Model) submitSearch(term string) (tea.Model, tea.Cmd) {
	if m.view == ViewByDay {
		if len([]rune(term)) < viewmodel.MinQueryLen {
			m.lastError = fmt.Sprintf("enter at least %d characters", viewmodel.MinQueryLen)
			return m, nil
		}
		return m, m.searchShipments(term)
	}
	m.ordersPager.SetSearch(term)
	return m.ordersPageChanged()
}

// By-day view.

func (m Model) handleByDayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		m.days.MoveUp()
	case key.Matches(msg, m.keymap.Down):
		m.days.MoveDown()
	case key.Matches(msg, m.keymap.Select):
		if day, ok := m.days.CurrentDay(); ok && day != m.activeDay {
			m.activeDay = day
			m.dayTable.Rows = nil
			return m, m.loadDayShipments(day)
		}
	case key.Matches(msg, m.keymap.Search):
		return m, m.daySearch.Focus()
	case msg.String() == "D":
		jump := components.NewDateJump()
		m.dayJump = &jump
	case key.Matches(msg, m.keymap.Refresh):
		return m, m.loadDays()
	}
	return m, nil
}

func (m Model) handleDayJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dayJump = nil
		return m, nil
	case "enter":
		date, ok := m.dayJump.Date()
		if !ok {
			m.dayJump.Err = "date must be YYYY-MM-DD"
			return m, nil
		}
		m.dayJump = nil
		m.activeDay = date
		m.dayTable.Rows = nil
		return m, m.loadDayShipments(date)
	}
	return m, m.dayJump.Update(msg)
}

// Shipment files view.

func (m Model) handleFilesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		m.files.MoveUp()
	case key.Matches(msg, m.keymap.Down):
		m.files.MoveDown()
	case key.Matches(msg, m.keymap.Select):
		if file, ok := m.files.CurrentFile(); ok {
			m.view = ViewFileData
			m.activeFileID = file.ID
			m.activeFilename = file.Filename
			m.fileRows = nil
			m.fileTable.Rows = nil
			m.fileFilter = viewmodel.RowFilter{}
			m.filePager = viewmodel.NewPager(detailPageSize)
			return m, m.loadFileData(file.ID, m.fileParams(), m.filePager.Generation)
		}
	case key.Matches(msg, m.keymap.Delete):
		if file, ok := m.files.CurrentFile(); ok {
			m.pending = pendingAction{kind: actionDeleteFile, fileID: file.ID}
			m.confirm.Ask(fmt.Sprintf("Delete file %q and all its shipments?", file.Filename))
		}
	case key.Matches(msg, m.keymap.Refresh):
		return m, m.loadShipmentFiles()
	}
	return m, nil
}

func (m Model) fileParams() api.ListParams {
	return api.ListParams{
		Limit:  m.filePager.PageSize,
		Offset: m.filePager.Offset(),
	}
}

// Per-file shipment data view.

func (m Model) handleFileDataKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		m.view = ViewFiles
	case key.Matches(msg, m.keymap.Up):
		m.fileTable.MoveUp()
	case key.Matches(msg, m.keymap.Down):
		m.fileTable.MoveDown()
	case key.Matches(msg, m.keymap.NextPage):
		if m.filePager.Next() {
			return m, m.loadFileData(m.activeFileID, m.fileParams(), m.filePager.Generation)
		}
	case key.Matches(msg, m.keymap.PrevPage):
		if m.filePager.Prev() {
			return m, m.loadFileData(m.activeFileID, m.fileParams(), m.filePager.Generation)
		}
	case key.Matches(msg, m.keymap.Filter):
		form := components.NewFilterForm(m.fileFilter, true)
		m.filterForm = &form
	case key.Matches(msg, m.keymap.ChangeStatus):
		if row, ok := m.fileTable.CurrentRow(); ok {
			return m.openStatusPicker(row.Code, row.Status)
		}
	case key.Matches(msg, m.keymap.Refresh):
		return m, m.loadFileData(m.activeFileID, m.fileParams(), m.filePager.Generation)
	}
	return m, nil
}

// Payment files view.

func (m Model) handlePaymentsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		m.paymentFiles.MoveUp()
	case key.Matches(msg, m.keymap.Down):
		m.paymentFiles.MoveDown()
	case key.Matches(msg, m.keymap.Select):
		if file, ok := m.paymentFiles.CurrentFile(); ok {
			m.view = ViewPaymentData
			m.activePayFile = file.ID
			m.paymentTable = components.PaymentTable{Filename: file.Filename}
			m.paymentPager = viewmodel.NewPager(detailPageSize)
			return m, m.loadPaymentData(file.ID, m.paymentParams(), m.paymentPager.Generation)
		}
	case key.Matches(msg, m.keymap.Delete):
		if file, ok := m.paymentFiles.CurrentFile(); ok {
			m.pending = pendingAction{kind: actionDeleteFile, fileID: file.ID, payment: true}
			m.confirm.Ask(fmt.Sprintf("Delete payment file %q?", file.Filename))
		}
	case key.Matches(msg, m.keymap.Refresh):
		return m, m.loadPaymentFiles()
	}
	return m, nil
}

func (m Model) paymentParams() api.ListParams {
	return api.ListParams{
		Limit:  m.paymentPager.PageSize,
		Offset: m.paymentPager.Offset(),
	}
}

// Per-file payment data view.

func (m Model) handlePaymentDataKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		m.view = ViewPayments
	case key.Matches(msg, m.keymap.Up):
		m.paymentTable.MoveUp()
	case key.Matches(msg, m.keymap.Down):
		m.paymentTable.MoveDown()
	case key.Matches(msg, m.keymap.NextPage):
		if m.paymentPager.Next() {
			return m, m.loadPaymentData(m.activePayFile, m.paymentParams(), m.paymentPager.Generation)
		}
	case key.Matches(msg, m.keymap.PrevPage):
		if m.paymentPager.Prev() {
			return m, m.loadPaymentData(m.activePayFile, m.paymentParams(), m.paymentPager.Generation)
		}
	case key.Matches(msg, m.keymap.Refresh):
		return m, m.loadPaymentData(m.activePayFile, m.paymentParams(), m.paymentPager.Generation)
	}
	return m, nil
}

// Recycle bin view.

func (m Model) handleRecycleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		m.recycleTable.MoveUp()
	case key.Matches(msg, m.keymap.Down):
		m.recycleTable.MoveDown()
	case key.Matches(msg, m.keymap.NextPage):
		if m.recyclePager.Next() {
			return m.switchToRecycle()
		}
	case key.Matches(msg, m.keymap.PrevPage):
		if m.recyclePager.Prev() {
			return m.switchToRecycle()
		}
	case key.Matches(msg, m.keymap.Restore):
		if row, ok := m.recycleTable.CurrentRow(); ok {
			m.pending = pendingAction{kind: actionRestoreRow, codes: []string{row.Code}}
			m.confirm.Ask(fmt.Sprintf("Restore shipment %s?", row.Code))
		}
	case key.Matches(msg, m.keymap.Refresh):
		return m.switchToRecycle()
	}
	return m, nil
}

// Analytics view.

func (m Model) handleAnalyticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		m.analytics.MoveHighlight(-1)
	case key.Matches(msg, m.keymap.Down):
		m.analytics.MoveHighlight(1)
	case key.Matches(msg, m.keymap.Refresh):
		return m, m.loadAnalytics()
	}
	return m, nil
}

// Modal handlers.

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		action := m.pending
		m.pending = pendingAction{}
		m.confirm.Dismiss()
		return m.runAction(action)
	case "n", "N", "esc":
		m.pending = pendingAction{}
		m.confirm.Dismiss()
	}
	return m, nil
}

func (m Model) runAction(action pendingAction) (tea.Model, tea.Cmd) {
	switch action.kind {
	case actionDeleteRows:
		m.selection.Clear()
		return m, m.deleteShipments(action.codes)
	case actionDeleteFile:
		return m, m.deleteFile(action.fileID, action.payment)
	case actionRestoreRow:
		if len(action.codes) == 1 && m.mutations.Begin(action.codes[0]) {
			return m, m.restoreShipment(action.codes[0])
		}
	}
	return m, nil
}

func (m Model) handleEditFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editForm = nil
		return m, nil
	case "enter":
		patch, err := m.editForm.Patch()
		if err != nil {
			m.editForm.Err = "amount must be a number"
			return m, nil
		}
		if patch.IsZero() {
			m.editForm.Err = common.ErrNothingToSave.Error()
			return m, nil
		}
		code := m.editForm.Code()
		m.editForm = nil
		if !m.mutations.Begin(code) {
			return m, nil
		}
		return m, m.patchShipment(code, patch)
	}
	return m, m.editForm.Update(msg)
}

func (m Model) handleStatusPickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.statusPicker = nil
		return m, nil
	case "up", "k":
		m.statusPicker.MoveUp()
		return m, nil
	case "down", "j":
		m.statusPicker.MoveDown()
		return m, nil
	case "enter":
		target, ok := m.statusPicker.Selected()
		code := m.statusPicker.Code
		m.statusPicker = nil
		if !ok {
			return m, nil
		}
		if !m.mutations.Begin(code) {
			return m, nil
		}
		return m, m.changeStatus(code, target)
	}
	return m, nil
}

func (m Model) handleFilterFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterForm = nil
		return m, nil
	case "ctrl+r":
		m.filterForm = nil
		return m.applyFilter(viewmodel.RowFilter{})
	case "enter":
		filter, err := m.filterForm.Filter()
		if err != nil {
			m.filterForm.Err = "amount bounds must be numbers"
			return m, nil
		}
		m.filterForm = nil
		return m.applyFilter(filter)
	}
	return m, m.filterForm.Update(msg)
}

func (m Model) applyFilter(filter viewmodel.RowFilter) (tea.Model, tea.Cmd) {
	if m.view == ViewFileData {
		m.fileFilter = filter
		m.refreshFileTable()
		return m, nil
	}
	m.ordersFilter = filter
	m.selection.Clear()
	m.refreshOrdersTable()
	return m, nil
}

func (m Model) handleDateFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dateForm = nil
		return m, nil
	case "enter":
		from, to, ok := m.dateForm.Range()
		if !ok {
			m.dateForm.Err = "dates must be YYYY-MM-DD"
			return m, nil
		}
		m.dateForm = nil
		m.ordersPager.SetDateRange(from, to)
		return m.ordersPageChanged()
	}
	return m, m.dateForm.Update(msg)
}
