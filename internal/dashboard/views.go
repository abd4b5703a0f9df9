package dashboard

import (
	"fmt"
	"sort"
	"strings"
)

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	// A modal replaces the screen body while active.
	switch {
	case m.confirm.Active:
		b.WriteString(m.confirm.View(m.theme))
	case m.editForm != nil:
		b.WriteString(m.editForm.View(m.theme))
	case m.statusPicker != nil:
		b.WriteString(m.statusPicker.View(m.theme))
	case m.filterForm != nil:
		b.WriteString(m.filterForm.View(m.theme))
	case m.dateForm != nil:
		b.WriteString(m.dateForm.View(m.theme))
	case m.dayJump != nil:
		b.WriteString(m.dayJump.View(m.theme))
	case m.showHelp:
		b.WriteString(m.viewHelp())
	default:
		b.WriteString(m.viewBody())
	}

	b.WriteString("\n")
	if m.lastError != "" {
		b.WriteString(m.theme.ErrorBar.Render("✗ " + m.lastError))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.HelpBar.Render("1-7: views   ?: help   q: quit"))
	return b.String()
}

var tabNames = []string{
	"Overview", "Orders", "By day", "Files", "Payments", "Recycle", "Analytics",
}

// tabFor maps the active view onto its tab, folding the detail screens
// into their parent tab.
func (m Model) tabFor() int {
	switch m.view {
	case ViewOverview:
		return 0
	case ViewOrders:
		return 1
	case ViewByDay:
		return 2
	case ViewFiles, ViewFileData:
		return 3
	case ViewPayments, ViewPaymentData:
		return 4
	case ViewRecycle:
		return 5
	case ViewAnalytics:
		return 6
	}
	return 0
}

func (m Model) viewTabs() string {
	active := m.tabFor()
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if i == active {
			parts[i] = m.theme.Selected.Render(" " + name + " ")
		} else {
			parts[i] = m.theme.Faint.Render(" " + name + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) viewBody() string {
	switch m.view {
	case ViewOverview:
		return m.overview.View(m.theme)
	case ViewOrders:
		return m.viewOrders()
	case ViewByDay:
		return m.viewByDay()
	case ViewFiles:
		return m.files.View(m.theme)
	case ViewFileData:
		return m.viewFileData()
	case ViewPayments:
		return m.paymentFiles.View(m.theme)
	case ViewPaymentData:
		return m.viewPaymentData()
	case ViewRecycle:
		return m.viewRecycle()
	case ViewAnalytics:
		return m.analytics.View(m.theme)
	}
	return ""
}

func (m Model) viewOrders() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("All orders"))
	b.WriteString("\n")
	b.WriteString(m.search.View(m.theme))
	b.WriteString("\n")

	table := m.ordersTable
	if m.selection.EditMode {
		table.Selected = m.selection.Has
	}
	table.Busy = m.mutations.InFlight
	b.WriteString(table.View(m.theme))

	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render(m.ordersPager.RangeLabel(len(m.ordersRows))))
	if len(m.ordersRows) > 0 {
		b.WriteString("  ")
		b.WriteString(m.theme.Bold.Render(fmt.Sprintf("total value: %.2f", m.ordersValue)))
	}
	if label := m.ordersFilter.ShownLabel(len(m.ordersTable.Rows)); label != "" {
		b.WriteString(" ")
		b.WriteString(m.theme.Faint.Render(label))
	}
	if m.selection.EditMode {
		b.WriteString("  ")
		b.WriteString(m.theme.Bold.Render(fmt.Sprintf("edit mode: %d selected", m.selection.Count())))
	}
	b.WriteString("\n")
	if line := m.histogramLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.theme.HelpBar.Render("/: search   f: filters   D: dates   e: edit mode   s: status   ←→: pages"))
	return b.String()
}

// histogramLine summarizes the status distribution of the fetched page,
// most common first. Status changes shift the buckets without a refetch.
func (m Model) histogramLine() string {
	if len(m.ordersHist) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m.ordersHist))
	for status := range m.ordersHist {
		keys = append(keys, status)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m.ordersHist[keys[i]] != m.ordersHist[keys[j]] {
			return m.ordersHist[keys[i]] > m.ordersHist[keys[j]]
		}
		return keys[i] < keys[j]
	})
	parts := make([]string, 0, len(keys))
	for _, status := range keys {
		parts = append(parts, fmt.Sprintf("%s %d", m.theme.StatusBadge(status), m.ordersHist[status]))
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewByDay() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Orders by day"))
	b.WriteString("\n")
	b.WriteString(m.daySearch.View(m.theme))
	b.WriteString("\n")
	b.WriteString(m.days.View(m.theme, m.activeDay))
	b.WriteString("\n")
	if m.activeDay != "" {
		b.WriteString(m.theme.Subtitle.Render(m.activeDay))
	} else if m.daySearch.Value() != "" {
		b.WriteString(m.theme.Subtitle.Render("search results"))
	}
	b.WriteString("\n")
	b.WriteString(m.dayTable.View(m.theme))
	b.WriteString("\n")
	b.WriteString(m.theme.HelpBar.Render("enter: open day   D: jump to date   /: search all days"))
	return b.String()
}

func (m Model) viewFileData() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.activeFilename))
	b.WriteString("\n")

	table := m.fileTable
	table.Busy = m.mutations.InFlight
	b.WriteString(table.View(m.theme))

	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render(m.filePager.RangeLabel(len(m.fileRows))))
	if label := m.fileFilter.ShownLabel(len(m.fileTable.Rows)); label != "" {
		b.WriteString(" ")
		b.WriteString(m.theme.Faint.Render(label))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.HelpBar.Render("f: filters   s: status   ←→: pages   backspace: files"))
	return b.String()
}

func (m Model) viewPaymentData() string {
	var b strings.Builder
	b.WriteString(m.paymentTable.View(m.theme))
	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render(m.paymentPager.RangeLabel(len(m.paymentTable.Rows))))
	b.WriteString("\n")
	b.WriteString(m.theme.HelpBar.Render("←→: pages   backspace: files"))
	return b.String()
}

func (m Model) viewRecycle() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Recycle bin"))
	b.WriteString("\n")
	table := m.recycleTable
	table.Busy = m.mutations.InFlight
	b.WriteString(table.View(m.theme))
	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render(m.recyclePager.RangeLabel(len(m.recycleTable.Rows))))
	b.WriteString("\n")
	b.WriteString(m.theme.HelpBar.Render("r: restore   ←→: pages"))
	return b.String()
}

func (m Model) viewHelp() string {
	rows := []struct{ keys, what string }{
		{"1-7", "switch view"},
		{"↑/k ↓/j", "move cursor"},
		{"←/h →/l", "previous / next page"},
		{"g / G", "first / last page"},
		{"/", "search with suggestions"},
		{"f", "page filters"},
		{"D", "date range (orders)"},
		{"e", "toggle edit mode"},
		{"space", "select row"},
		{"a", "select all visible"},
		{"E", "edit selected row"},
		{"d", "delete selection / file"},
		{"s", "change shipment status"},
		{"r", "restore (recycle bin)"},
		{"R", "refresh"},
		{"t", "toggle theme"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Keys"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			m.theme.Bold.Render(fmt.Sprintf("%-10s", row.keys)),
			m.theme.Normal.Render(row.what)))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render("press any key to close"))
	return b.String()
}
