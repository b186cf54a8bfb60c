package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"raceoverlay/internal/config"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, status, endpoint string, contacts int, deltaText string) string {
	state := StatusStyle(status).Render("[" + status + "]")

	info := fmt.Sprintf(" %s  Cars: %d  Delta: %s  Range: 0-%.0fm",
		endpoint, contacts, deltaText, config.MaxRange)

	content := state + StyleStatusBar.Foreground(ColorGreen).Render(info)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
