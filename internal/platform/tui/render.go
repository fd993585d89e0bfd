package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ambient/internal/core"
)

var (
	screenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	statusStyle = lipgloss.NewStyle().Faint(true)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

// RenderScreen converts a screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return screenStyle.Render(s.String())
}

// StatusBar renders the one-line footer with key hints and pause state.
func StatusBar(keys KeyMap, paused bool) string {
	var hints []string
	for _, b := range keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}

	bar := statusStyle.Render(strings.Join(hints, " · "))
	if paused {
		bar += "  " + pausedStyle.Render("PAUSED")
	}
	return bar
}
