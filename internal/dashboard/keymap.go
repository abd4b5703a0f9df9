package dashboard

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Paging
	NextPage  key.Binding
	PrevPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding

	// Views
	Overview  key.Binding
	Orders    key.Binding
	ByDay     key.Binding
	Files     key.Binding
	Payments  key.Binding
	Recycle   key.Binding
	Analytics key.Binding
	Back      key.Binding

	// Actions
	Select       key.Binding
	Search       key.Binding
	Filter       key.Binding
	EditMode     key.Binding
	ToggleSelect key.Binding
	SelectAll    key.Binding
	Edit         key.Binding
	Delete       key.Binding
	Restore      key.Binding
	ChangeStatus key.Binding
	Refresh      key.Binding
	ToggleTheme  key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),

		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←", "previous page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home/g", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End/G", "last page"),
		),

		Overview: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "overview"),
		),
		Orders: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "all orders"),
		),
		ByDay: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "orders by day"),
		),
		Files: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "shipment files"),
		),
		Payments: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "payment files"),
		),
		Recycle: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "recycle bin"),
		),
		Analytics: key.NewBinding(
			key.WithKeys("7"),
			key.WithHelp("7", "analytics"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("Backspace", "back"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "open"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filters"),
		),
		EditMode: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit mode"),
		),
		ToggleSelect: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "select row"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		Edit: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "edit row"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
		ChangeStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "change status"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R", "f5"),
			key.WithHelp("R", "refresh"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "quit"),
		),
	}
}
