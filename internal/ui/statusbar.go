package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"robot-rig.klederson.com/internal/sensors"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, tracking bool, frame sensors.Frame, heading float64, gripperPct int, recorded int) string {
	status := StyleStatusIdle.Render("[IDLE]")
	if tracking {
		status = StyleStatusTracking.Render("[TRACKING]")
	}

	sector := frame.Sector
	zone := "out"
	if frame.InsideDonut {
		zone = "in"
	}
	info := fmt.Sprintf(" Sector: %d (%.1f-%.1f)  Cursor: %.0fpx @ %.0fdeg  Donut: %s  Active: %d  Heading: %ddeg  Grip: %d%%",
		sector.Index()+1, sector.Min, sector.Max, frame.Distance, frame.Angle, zone,
		frame.ActiveCount(), int(heading), gripperPct)
	content := status + StyleStatusBar.Foreground(ColorGreen).Render(info)
	if recorded > 0 {
		content += StyleRecording.Render(fmt.Sprintf("  Rec: %d", recorded))
	}

	gap := width - 2 - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(fitLine(content+strings.Repeat(" ", gap), width-2))
}
