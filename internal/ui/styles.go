package ui

import "github.com/charmbracelet/lipgloss"

// Overlay palette
var (
	ColorBright    = lipgloss.Color("#00FF41")
	ColorGreen     = lipgloss.Color("#00CC33")
	ColorMidGreen  = lipgloss.Color("#008F11")
	ColorDimGreen  = lipgloss.Color("#004A0A")
	ColorContact   = lipgloss.Color("#00FFAA")
	ColorWarning   = lipgloss.Color("#FFAA00")
	ColorError     = lipgloss.Color("#FF3300")
	ColorAhead     = lipgloss.Color("#33CCFF")
	ColorBehind    = lipgloss.Color("#FF5C33")
	ColorBarShade  = lipgloss.Color("#002200")
	ColorHighlight = lipgloss.Color("#003300")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarShade).
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleMenuOff = lipgloss.NewStyle().
			Foreground(ColorDimGreen)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarShade).
			Foreground(ColorGreen).
			Padding(0, 1)

	StyleStatusLive = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleStatusWarn = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StyleStatusError = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorMidGreen)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleContactName = lipgloss.NewStyle().
				Foreground(ColorContact)

	StyleContactDist = lipgloss.NewStyle().
				Foreground(ColorGreen)

	StyleContactDim = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimGreen)
)
