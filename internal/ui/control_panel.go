package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"robot-rig.klederson.com/internal/rig"
)

// RenderControlPanel renders the wheel controls, heading, gripper slider
// and the tracking toggle.
func RenderControlPanel(drive *rig.Drive, gripper *rig.Gripper, tracker *rig.Tracker, now time.Time, width, height int) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	lines := []string{
		StylePanelTitle.Render("CONTROLS"),
		StyleSeparator.Render(strings.Repeat("-", innerW)),
		renderWheelLine(drive.Left, "Z/X", "C", now),
		renderWheelLine(drive.Right, "N/M", "B", now),
		StyleLabel.Render("  Heading   ") + StyleValue.Render(fmt.Sprintf("%5.1fdeg", drive.Heading.Angle)),
		"",
		StyleLabel.Render("  Gripper   ") + renderGripperButton(gripper) + StyleHelp.Render("  [G]"),
		StyleLabel.Render("  Lift      ") + renderSlider(gripper.Percent(), innerW-22) +
			StyleValue.Render(fmt.Sprintf(" %3d%%", gripper.Percent())),
		"",
		"  " + renderTrackingButton(tracker) + StyleHelp.Render("  [T]"),
	}

	return clampPanel(StylePanelBorder, lines, width, height)
}

func renderWheelLine(w *rig.Wheel, speedKeys, flipKey string, now time.Time) string {
	arrow := "v"
	if w.Arrow().Run {
		arrow = "^"
	}

	sty := StyleUnpowered
	power := "off"
	if w.Powered(now) {
		sty = StylePowered
		power = "ON "
	}

	return StyleLabel.Render(fmt.Sprintf("  Wheel %s   ", w.Name)) +
		sty.Render(fmt.Sprintf("%s %s", arrow, power)) +
		StyleValue.Render(fmt.Sprintf(" spd %4.1f %s", w.Speed, w.Direction)) +
		StyleHelp.Render(fmt.Sprintf(" [%s][%s]", speedKeys, flipKey))
}

func renderGripperButton(g *rig.Gripper) string {
	if g.Open {
		return StyleButtonOn.Render(g.Label())
	}
	return StyleButtonOff.Render(g.Label())
}

func renderTrackingButton(t *rig.Tracker) string {
	if t.Enabled() {
		return StyleButtonOn.Render(t.Label())
	}
	return StyleButtonOff.Render(t.Label())
}

// renderSlider draws a 0..100 slider with a knob.
func renderSlider(percent, width int) string {
	if width < 5 {
		width = 5
	}
	knob := int(math.Round(float64(percent) / 100 * float64(width-1)))
	return StyleHelp.Render("[") +
		StyleValue.Render(strings.Repeat("=", knob)) +
		StylePowered.Render("o") +
		StyleUnpowered.Render(strings.Repeat("-", width-1-knob)) +
		StyleHelp.Render("]")
}
