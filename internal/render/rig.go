package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r2"
	"robot-rig.klederson.com/internal/rig"
	"robot-rig.klederson.com/internal/sensors"
)

var (
	colorBright = lipgloss.Color("#00FF41")
	colorMid    = lipgloss.Color("#008F11")
	colorDim    = lipgloss.Color("#004A0A")
	colorGrey   = lipgloss.Color("#5F5F5F")
	colorAmber  = lipgloss.Color("#FFAA00")
	colorCursor = lipgloss.Color("#FF3300")
)

// Layers are drawn in increasing priority; a cell keeps the highest.
type layer int

const (
	layerEmpty layer = iota
	layerZone
	layerDonut
	layerPlatform
	layerLine
	layerLabel
	layerWheel
	layerWheelArrow
	layerHeading
	layerSensorIdle
	layerSensorActive
	layerCenter
	layerCursor
)

var layerStyles = map[layer]lipgloss.Style{
	layerZone:         lipgloss.NewStyle().Foreground(colorDim),
	layerDonut:        lipgloss.NewStyle().Foreground(colorDim),
	layerPlatform:     lipgloss.NewStyle().Foreground(colorMid),
	layerLine:         lipgloss.NewStyle().Foreground(colorMid),
	layerLabel:        lipgloss.NewStyle().Foreground(colorMid).Bold(true),
	layerWheel:        lipgloss.NewStyle().Foreground(colorMid),
	layerWheelArrow:   lipgloss.NewStyle().Foreground(colorMid),
	layerHeading:      lipgloss.NewStyle().Foreground(colorAmber).Bold(true),
	layerSensorIdle:   lipgloss.NewStyle().Foreground(colorGrey),
	layerSensorActive: lipgloss.NewStyle().Foreground(colorBright).Bold(true),
	layerCenter:       lipgloss.NewStyle().Foreground(colorBright).Bold(true),
	layerCursor:       lipgloss.NewStyle().Foreground(colorCursor).Bold(true),
}

var stylePowered = lipgloss.NewStyle().Foreground(colorBright).Bold(true)

type cell struct {
	ch      rune
	kind    layer
	powered bool
}

// Wheel is the drawable state of one wheel.
type Wheel struct {
	Arrow   rig.Arrow
	Powered bool
}

// Scene is everything the rig panel draws in one frame.
type Scene struct {
	Params         sensors.Params
	PlatformRadius float64 // rig pixels
	ArrowLength    float64 // rig pixels
	Readings       [sensors.AxisCount]sensors.Reading
	Heading        float64 // degrees
	Left, Right    Wheel
	Cursor         r2.Vec // offset from center
	ShowCursor     bool
}

type canvas struct {
	v     Viewport
	cells [][]cell
}

func newCanvas(v Viewport) *canvas {
	cells := make([][]cell, v.Height)
	for i := range cells {
		cells[i] = make([]cell, v.Width)
		for j := range cells[i] {
			cells[i][j] = cell{ch: ' '}
		}
	}
	return &canvas{v: v, cells: cells}
}

func (c *canvas) set(col, row int, ch rune, kind layer) {
	if !c.v.Contains(col, row) || c.cells[row][col].kind > kind {
		return
	}
	c.cells[row][col] = cell{ch: ch, kind: kind}
}

func (c *canvas) setAt(offset r2.Vec, ch rune, kind layer) {
	col, row := c.v.CellAt(offset)
	c.set(col, row, ch, kind)
}

func (c *canvas) ray(deg, from, to float64, kind layer) {
	step := c.v.Scale / 2
	ch := LineChar(deg)
	for r := from; r <= to; r += step {
		c.setAt(Polar(deg, r), ch, kind)
	}
}

// Render draws the rig into a width x height block of styled text.
func Render(v Viewport, s Scene) string {
	if v.Width < 10 || v.Height < 5 {
		return ""
	}

	c := newCanvas(v)
	drawBackground(c, s)
	drawSensors(c, s)
	drawWheels(c, s)

	c.ray(s.Heading, v.Scale, s.ArrowLength, layerHeading)
	c.setAt(Polar(s.Heading, s.ArrowLength), ArrowHead(s.Heading), layerHeading)
	c.set(v.CenterCol, v.CenterRow, '+', layerCenter)

	if s.ShowCursor {
		c.setAt(s.Cursor, 'X', layerCursor)
	}

	var sb strings.Builder
	for row, line := range c.cells {
		for _, cl := range line {
			sb.WriteString(styleCell(cl))
		}
		if row < len(c.cells)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func styleCell(cl cell) string {
	if cl.kind == layerEmpty {
		return string(cl.ch)
	}
	if cl.powered {
		return stylePowered.Render(string(cl.ch))
	}
	return layerStyles[cl.kind].Render(string(cl.ch))
}

// drawBackground paints the donut zone edges, a sparse dot fill inside the
// zone, and the platform outline.
func drawBackground(c *canvas, s Scene) {
	tol := 0.8 * c.v.Scale
	for row := 0; row < c.v.Height; row++ {
		for col := 0; col < c.v.Width; col++ {
			off := c.v.Offset(col, row)
			d := r2.Norm(off)
			deg := sensors.Angle(off)

			switch {
			case math.Abs(d-s.Params.DonutMin) < tol, math.Abs(d-s.Params.DonutMax) < tol:
				c.set(col, row, RingChar(deg), layerDonut)
			case math.Abs(d-s.PlatformRadius) < tol:
				c.set(col, row, RingChar(deg), layerPlatform)
			case s.Params.InDonut(d) && (col+row)%4 == 0:
				c.set(col, row, '.', layerZone)
			}
		}
	}
}

func drawSensors(c *canvas, s Scene) {
	for i, axis := range sensors.Axes {
		c.ray(axis.Angle, s.Params.MinPos, s.Params.MaxPos, layerLine)

		label := rune('0' + axis.Index)
		c.setAt(Polar(axis.Angle, s.Params.MaxPos+2*c.v.Scale), label, layerLabel)

		rd := s.Readings[i]
		if rd.State == sensors.Active {
			c.setAt(Polar(axis.Angle, rd.Position), 'O', layerSensorActive)
		} else {
			c.setAt(Polar(axis.Angle, rd.Position), 'o', layerSensorIdle)
		}
	}
}

// drawWheels places a three-row wheel on each side of the platform with
// its run or stop arrow beside it.
func drawWheels(c *canvas, s Scene) {
	for _, w := range []struct {
		side  float64
		wheel Wheel
	}{
		{-1, s.Left},
		{1, s.Right},
	} {
		col, row := c.v.CellAt(r2.Vec{X: w.side * s.PlatformRadius})
		for dr := -1; dr <= 1; dr++ {
			c.set(col, row+dr, '#', layerWheel)
		}

		arrow := 'v'
		if w.wheel.Arrow.Run {
			arrow = '^'
		}
		ac := col + int(w.side)
		c.set(ac, row, arrow, layerWheelArrow)
		if w.wheel.Powered && c.v.Contains(ac, row) && c.cells[row][ac].kind == layerWheelArrow {
			c.cells[row][ac].powered = true
			for dr := -1; dr <= 1; dr++ {
				if c.v.Contains(col, row+dr) && c.cells[row+dr][col].kind == layerWheel {
					c.cells[row+dr][col].powered = true
				}
			}
		}
	}
}

// RenderLegend produces the rig legend line.
func RenderLegend(width int) string {
	legend := "   " +
		layerStyles[layerSensorActive].Render("O active") + "  " +
		layerStyles[layerSensorIdle].Render("o saturated") + "  " +
		layerStyles[layerCursor].Render("X cursor") + "  " +
		layerStyles[layerHeading].Render("> heading") + "  " +
		layerStyles[layerWheelArrow].Render("^ run v stop")

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
