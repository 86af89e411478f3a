package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorCritical = lipgloss.Color("196") //nolint:gochecknoglobals // Shared palette.
	ColorMuted    = lipgloss.Color("241") //nolint:gochecknoglobals // Shared palette.
	ColorSpinner  = lipgloss.Color("205") //nolint:gochecknoglobals // Shared palette.
	ColorAccent   = lipgloss.Color("57")  //nolint:gochecknoglobals // Shared palette.
	ColorBorder   = lipgloss.Color("240") //nolint:gochecknoglobals // Shared palette.
)

// Styles used by the posts view.
//
//nolint:gochecknoglobals // Styles are immutable values shared across renders.
var (
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)

	TableHeaderStyle = lipgloss.NewStyle().
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true).
				Bold(true)
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(ColorAccent)

	ControlStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Bold(true)
	DisabledControlStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorMuted).
				Foreground(ColorMuted)
	PageIndicatorStyle = lipgloss.NewStyle().Padding(0, 2) //nolint:mnd // Horizontal gap between controls.
)
