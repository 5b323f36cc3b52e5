package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"robot-rig.klederson.com/internal/sensors"
)

// RenderSensorPanel renders the eight sensor readouts with a proximity bar
// and a short value history per sensor.
func RenderSensorPanel(frame sensors.Frame, params sensors.Params, history [sensors.AxisCount][]sensors.Reading, width, height int) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	title := StylePanelTitle.Render("SENSORS")
	sector := StyleHelp.Render(fmt.Sprintf("main %v side %v", frame.Sector.Main, frame.Sector.Side))
	titleLine := title + strings.Repeat(" ", max(0, innerW-lipgloss.Width(title)-lipgloss.Width(sector))) + sector

	lines := []string{titleLine, StyleSeparator.Render(strings.Repeat("-", innerW))}

	// "#8 337.5 " + bar + " 80 SAT " + spark
	barW := 10
	sparkW := innerW - 9 - (barW + 2) - 8
	if sparkW < 0 {
		sparkW = 0
	}

	for i, axis := range sensors.Axes {
		rd := frame.Readings[i]
		head := StyleLabel.Render(fmt.Sprintf("#%d %5.1f ", axis.Index, axis.Angle))
		bar := renderProximityBar(rd, params, barW)

		state := "SAT"
		sty := StyleSensorSaturated
		if rd.State == sensors.Active {
			state = "ACT"
			sty = StyleSensorActive
		}
		val := sty.Render(fmt.Sprintf(" %2d %s ", rd.Value, state))

		line := head + bar + val
		if sparkW > 0 && len(history[i]) > 0 {
			line += lipgloss.NewStyle().Foreground(ColorGreen).Render(renderSparkline(history[i], params, sparkW))
		}
		lines = append(lines, line)
	}

	return clampPanel(StylePanelBorder, lines, width, height)
}

// renderProximityBar fills more of the bar the closer the reading.
func renderProximityBar(rd sensors.Reading, params sensors.Params, width int) string {
	ratio := float64(params.MaxDist-rd.Value) / float64(params.MaxDist-params.MinDist)
	ratio = math.Min(math.Max(ratio, 0), 1)
	filled := int(math.Round(ratio * float64(width)))

	bar := strings.Repeat("|", filled) + strings.Repeat("-", width-filled)
	color := ColorDimGreen
	if rd.State == sensors.Active {
		color = ColorMatrixGreen
	}
	filledPart := lipgloss.NewStyle().Foreground(color).Render(bar[:filled])
	emptyPart := lipgloss.NewStyle().Foreground(ColorDimGreen).Render(bar[filled:])
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}

// renderSparkline plots recent readings on the fixed distance scale, tall
// when close. Saturated samples leave a gap.
func renderSparkline(history []sensors.Reading, params sensors.Params, width int) string {
	if len(history) == 0 || width <= 0 {
		return ""
	}
	if len(history) > width {
		history = history[len(history)-width:]
	}

	levels := []byte{'_', '.', '-', '~', '^'}
	span := float64(params.MaxDist - params.MinDist)

	var sb strings.Builder
	for _, rd := range history {
		if rd.State != sensors.Active {
			sb.WriteByte(' ')
			continue
		}
		closeness := float64(params.MaxDist-rd.Value) / span
		idx := int(math.Round(closeness * float64(len(levels)-1)))
		sb.WriteByte(levels[max(0, min(idx, len(levels)-1))])
	}
	return sb.String()
}

// clampPanel renders lines inside a border of exactly height rows.
// lipgloss Height() only sets a minimum; it won't truncate overflow.
func clampPanel(style lipgloss.Style, lines []string, width, height int) string {
	innerH := height - 2
	if innerH < 1 {
		innerH = 1
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}

	rendered := style.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))

	outLines := strings.Split(rendered, "\n")
	if len(outLines) > height {
		outLines = outLines[:height]
	}
	for len(outLines) < height {
		outLines = append(outLines, "")
	}
	return strings.Join(outLines, "\n")
}
