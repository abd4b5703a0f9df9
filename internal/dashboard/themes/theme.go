// Package themes defines the visual styles of the dashboard.
package themes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/omarelders/shipdash/internal/statuses"
)

// Theme defines the visual style for the dashboard.
type Theme struct {
	Name string

	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Bold        lipgloss.Style
	Faint       lipgloss.Style
	Selected    lipgloss.Style
	Highlighted lipgloss.Style
	TableHeader lipgloss.Style
	Box         lipgloss.Style
	BorderedBox lipgloss.Style
	ErrorBar    lipgloss.Style
	HelpBar     lipgloss.Style
	Donut       lipgloss.Style
	Bar         lipgloss.Style

	StatusSuccess lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusPending lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style

	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Foreground lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Info       lipgloss.Color
}

// Dark is the default theme.
var Dark = build("dark", palette{
	primary:    "#7c3aed",
	foreground: "#fafafa",
	muted:      "#737373",
	border:     "#404040",
	highlight:  "#262626",
	success:    "#10b981",
	warning:    "#f59e0b",
	errorCol:   "#ef4444",
	info:       "#3b82f6",
})

// Light is the alternative theme for bright terminals.
var Light = build("light", palette{
	primary:    "#6d28d9",
	foreground: "#171717",
	muted:      "#6b7280",
	border:     "#d4d4d4",
	highlight:  "#e5e7eb",
	success:    "#047857",
	warning:    "#b45309",
	errorCol:   "#b91c1c",
	info:       "#1d4ed8",
})

// ByName returns the theme with the given name, defaulting to Dark.
func ByName(name string) Theme {
	if name == "light" {
		return Light
	}
	return Dark
}

type palette struct {
	primary    string
	foreground string
	muted      string
	border     string
	highlight  string
	success    string
	warning    string
	errorCol   string
	info       string
}

func build(name string, p palette) Theme {
	fg := lipgloss.Color(p.foreground)
	return Theme{
		Name: name,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Faint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.primary)).
			Foreground(fg).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Background(lipgloss.Color(p.highlight)).
			Foreground(fg),
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.muted)).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.border)),
		Box: lipgloss.NewStyle().
			Padding(1, 2),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(1, 2),
		ErrorBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.errorCol)).
			Bold(true),
		HelpBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		Donut: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.primary)),
		Bar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.primary)),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.info)).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.errorCol)).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)).
			Bold(true),

		Primary:    lipgloss.Color(p.primary),
		Muted:      lipgloss.Color(p.muted),
		Border:     lipgloss.Color(p.border),
		Foreground: fg,
		Success:    lipgloss.Color(p.success),
		Warning:    lipgloss.Color(p.warning),
		Error:      lipgloss.Color(p.errorCol),
		Info:       lipgloss.Color(p.info),
	}
}

// StatusBadge renders a shipment status with its semantic color.
func (t Theme) StatusBadge(status string) string {
	switch statuses.ColorFor(status) {
	case statuses.ColorSuccess:
		return t.StatusSuccess.Render(status)
	case statuses.ColorInfo:
		return t.StatusInfo.Render(status)
	case statuses.ColorError:
		return t.StatusError.Render(status)
	case statuses.ColorWarning:
		return t.StatusWarning.Render(status)
	default:
		return t.StatusPending.Render(status)
	}
}
