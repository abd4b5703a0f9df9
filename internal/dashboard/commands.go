package dashboard

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/omarelders/shipdash/internal/api"
	"github.com/omarelders/shipdash/internal/common"
	"github.com/omarelders/shipdash/internal/dashboard/viewmodel"
	"github.com/omarelders/shipdash/internal/model"
)

// debounceDelay is how long the search input stays idle before the
// suggestion fetch fires.
const debounceDelay = 250 * time.Millisecond

func (m Model) withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}

func (m Model) loadOrdersPage(params api.ListParams, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		page, err := m.client.ListShipments(ctx, params)
		if err != nil {
			common.LogError(err, "Failed to load shipments page", common.Fields{
				"offset": params.Offset,
				"search": params.Search,
			})
			return ordersPageMsg{gen: gen, err: err}
		}
		return ordersPageMsg{gen: gen, page: *page}
	}
}

func (m Model) loadOverview() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		page, err := m.client.ListShipments(ctx, api.ListParams{Limit: 100})
		if err != nil {
			return overviewLoadedMsg{err: err}
		}
		return overviewLoadedMsg{page: *page}
	}
}

func (m Model) loadDeletedPage(limit, offset, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		page, err := m.client.DeletedShipments(ctx, limit, offset)
		if err != nil {
			return deletedPageMsg{gen: gen, err: err}
		}
		return deletedPageMsg{gen: gen, page: *page}
	}
}

func (m Model) loadShipmentFiles() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		files, err := m.client.ShipmentFiles(ctx)
		return shipmentFilesMsg{files: files, err: err}
	}
}

func (m Model) loadFileData(fileID int64, params api.ListParams, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		page, err := m.client.FileShipments(ctx, fileID, params)
		if err != nil {
			return fileDataMsg{fileID: fileID, gen: gen, err: err}
		}
		return fileDataMsg{fileID: fileID, gen: gen, page: *page}
	}
}

func (m Model) loadPaymentFiles() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		files, err := m.client.PaymentFiles(ctx)
		return paymentFilesMsg{files: files, err: err}
	}
}

func (m Model) loadPaymentData(fileID int64, params api.ListParams, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		page, err := m.client.PaymentFileData(ctx, fileID, params)
		if err != nil {
			return paymentDataMsg{fileID: fileID, gen: gen, err: err}
		}
		return paymentDataMsg{fileID: fileID, gen: gen, page: *page}
	}
}

func (m Model) loadDays() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		days, err := m.client.ShippingDays(ctx)
		return daysLoadedMsg{days: days, err: err}
	}
}

func (m Model) loadDayShipments(date string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		rows, err := m.client.ShipmentsByDay(ctx, date)
		return dayShipmentsMsg{date: date, rows: rows, err: err}
	}
}

func (m Model) searchShipments(query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		rows, err := m.client.SearchShipments(ctx, query)
		return searchResultsMsg{query: query, rows: rows, err: err}
	}
}

func (m Model) loadAnalytics() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		snap, err := m.client.Analytics(ctx)
		return analyticsMsg{snap: snap, err: err}
	}
}

func (m Model) loadTaxonomy() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		tax, err := m.client.Statuses(ctx)
		if err != nil {
			return taxonomyMsg{err: err}
		}
		return taxonomyMsg{tax: *tax}
	}
}

// debounce schedules the suggestion fetch for a keystroke. When it fires,
// the sequence number is compared against the current one; a newer
// keystroke in the meantime makes this tick a no-op.
func debounce(seq int) tea.Cmd {
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceFiredMsg{seq: seq}
	})
}

func (m Model) fetchSuggestions(query string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		common.LogDebug("Fetching suggestions", common.Fields{"query": query, "seq": seq})
		result, err := m.client.Autocomplete(ctx, query, viewmodel.SuggestionLimit)
		if err != nil {
			return suggestionsMsg{seq: seq, err: err}
		}
		return suggestionsMsg{seq: seq, suggestions: result.Suggestions}
	}
}

func (m Model) changeStatus(code, newStatus string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		err := m.client.ChangeStatus(ctx, code, newStatus)
		if err != nil {
			common.LogError(err, "Status change rejected", common.Fields{
				"code":       code,
				"new_status": newStatus,
			})
		}
		return statusChangedMsg{code: code, newStatus: newStatus, err: err}
	}
}

func (m Model) patchShipment(code string, patch model.ShipmentPatch) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		err := m.client.UpdateShipment(ctx, code, patch)
		return shipmentPatchedMsg{code: code, patch: patch, err: err}
	}
}

// deleteShipments issues one delete per selected row, all concurrently, and
// waits for every response. Partial failures collapse into one aggregate
// count; the handler refetches the page regardless of the outcome.
func (m Model) deleteShipments(codes []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		var (
			wg     sync.WaitGroup
			mu     sync.Mutex
			failed int
		)
		for _, code := range codes {
			wg.Add(1)
			go func(code string) {
				defer wg.Done()
				if err := m.client.DeleteShipment(ctx, code); err != nil {
					common.LogError(err, "Failed to delete shipment", common.Fields{"code": code})
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}(code)
		}
		wg.Wait()
		return rowsDeletedMsg{requested: len(codes), failed: failed}
	}
}

func (m Model) restoreShipment(code string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		err := m.client.RestoreShipment(ctx, code)
		return rowRestoredMsg{code: code, err: err}
	}
}

func (m Model) deleteFile(fileID int64, payment bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		var err error
		if payment {
			err = m.client.DeletePaymentFile(ctx, fileID)
		} else {
			err = m.client.DeleteShipmentFile(ctx, fileID)
		}
		return fileDeletedMsg{fileID: fileID, payment: payment, err: err}
	}
}

func (m Model) loadTheme() tea.Cmd {
	return func() tea.Msg {
		if m.prefs == nil {
			return themeLoadedMsg{name: ""}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		name, err := m.prefs.Theme(ctx)
		if err != nil {
			return themeLoadedMsg{name: ""}
		}
		return themeLoadedMsg{name: name}
	}
}

func (m Model) saveTheme(name string) tea.Cmd {
	return func() tea.Msg {
		if m.prefs == nil {
			return themeSavedMsg{name: name}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := m.prefs.SetTheme(ctx, name)
		return themeSavedMsg{name: name, err: err}
	}
}
