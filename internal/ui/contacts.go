package ui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"raceoverlay/internal/telemetry"
)

const maxNameLen = 12

// RenderContacts renders the side panel listing radar contacts nearest
// first, with distance and relative bearing.
func RenderContacts(cars []telemetry.Contact, width, height int) string {
	innerW := width - 2
	innerH := height - 2
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 1 {
		innerH = 1
	}

	sorted := make([]telemetry.Contact, len(cars))
	copy(sorted, cars)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Distance < sorted[j].Distance
	})

	var lines []string
	lines = append(lines, StylePanelTitle.Render("CONTACTS"))
	for i, c := range sorted {
		if i >= innerH-1 {
			break
		}
		name := c.Name
		if r := []rune(name); len(r) > maxNameLen {
			name = string(r[:maxNameLen])
		}
		bearing := math.Atan2(c.RelX, c.RelY) * 180 / math.Pi
		line := fmt.Sprintf("%-*s %6.1fm %4.0f°", maxNameLen, name, c.Distance, bearing)
		if r := []rune(line); len(r) > innerW {
			line = string(r[:innerW])
		}
		lines = append(lines, StyleContactName.Render(line))
	}
	if len(sorted) == 0 {
		lines = append(lines, StyleContactDim.Render(" no contacts"))
	}

	content := strings.Join(lines, "\n")
	return StylePanelBorder.Width(innerW).Height(innerH).Render(content)
}

// RenderOverlayPanel wraps the rendered canvas with a styled border.
func RenderOverlayPanel(width, height int, content string) string {
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

// ComposeLayout joins the overlay panel and the contact list horizontally,
// with the menu bar on top and the status bar on the bottom.
func ComposeLayout(menuBar, overlay, contacts, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, overlay, contacts)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
