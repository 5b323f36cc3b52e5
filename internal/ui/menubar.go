package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"robot-rig.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, tracking, demo bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"T", "rack"},
		{"A/D", " drive"},
		{"W/S", " lift"},
		{"G", "rip"},
		{"Esc", " stop"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := StyleStatusIdle.Render("IDLE")
	if tracking {
		status = StyleStatusTracking.Render("TRACKING")
	}
	mode := StyleMenuLabel.Render("mouse")
	if demo {
		mode = StyleMenuLabel.Render("demo")
	}

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + mode + " "

	// Padding takes one column on each side.
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	line := fitLine(left+strings.Repeat(" ", gap)+right, width-2)

	return StyleMenuBar.Width(width).Render(line)
}

// fitLine truncates a styled line so it never wraps.
func fitLine(s string, width int) string {
	return lipgloss.NewStyle().MaxWidth(max(width, 0)).Render(s)
}
