package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"raceoverlay/internal/config"
)

// RenderMenuBar renders the top menu bar with the widget toggles and the
// connection status.
func RenderMenuBar(width int, radar, progress, delta bool, status string) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	toggles := []struct {
		key, label string
		on         bool
	}{
		{"R", "adar", radar},
		{"P", "rogress", progress},
		{"D", "elta", delta},
	}

	menu := ""
	for _, t := range toggles {
		label := StyleMenuLabel
		if !t.on {
			label = StyleMenuOff
		}
		menu += "  " + StyleMenuKey.Render("["+t.key+"]") + label.Render(t.label)
	}
	menu += "  " + StyleMenuKey.Render("[C]") + StyleMenuLabel.Render("onnect")
	menu += "  " + StyleMenuKey.Render("[Q]") + StyleMenuLabel.Render("uit")

	left := StyleMenuKey.Render(title) + menu
	right := StatusStyle(status).Render(status) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}

// StatusStyle picks the status colour for a connection status label.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "Connected":
		return StyleStatusLive
	case "Error", "Invalid":
		return StyleStatusError
	default:
		return StyleStatusWarn
	}
}
