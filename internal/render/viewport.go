package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Viewport maps terminal cells onto rig pixel space. Rig pixels are square;
// cells are 1/Aspect times taller than wide, so a row spans Scale/Aspect
// pixels and a column spans Scale.
type Viewport struct {
	Width, Height        int
	CenterCol, CenterRow int
	Radius               float64 // cells, horizontal
	Scale                float64 // rig pixels per column
	Aspect               float64
}

// NewViewport fits a circle of extent rig pixels into width x height cells.
func NewViewport(width, height int, aspect, extent float64) Viewport {
	cx := width / 2
	cy := height / 2
	radius := math.Min(float64(cx-1), float64(cy-1)/aspect)
	if radius < 3 {
		radius = 3
	}
	return Viewport{
		Width:     width,
		Height:    height,
		CenterCol: cx,
		CenterRow: cy,
		Radius:    radius,
		Scale:     extent / radius,
		Aspect:    aspect,
	}
}

// PixelAt returns the rig-pixel position of a cell, origin at cell (0, 0).
func (v Viewport) PixelAt(col, row int) r2.Vec {
	return r2.Vec{
		X: float64(col) * v.Scale,
		Y: float64(row) / v.Aspect * v.Scale,
	}
}

// Center returns the rig-pixel position of the center cell.
func (v Viewport) Center() r2.Vec {
	return v.PixelAt(v.CenterCol, v.CenterRow)
}

// Offset returns the rig-pixel offset of a cell from the center cell.
func (v Viewport) Offset(col, row int) r2.Vec {
	return r2.Sub(v.PixelAt(col, row), v.Center())
}

// CellAt returns the cell holding a rig-pixel offset from the center.
func (v Viewport) CellAt(offset r2.Vec) (col, row int) {
	col = v.CenterCol + int(math.Round(offset.X/v.Scale))
	row = v.CenterRow + int(math.Round(offset.Y/v.Scale*v.Aspect))
	return col, row
}

// Contains reports whether a cell is on screen.
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Width && row >= 0 && row < v.Height
}

// Polar returns the offset r rig pixels from center at deg degrees.
func Polar(deg, r float64) r2.Vec {
	rad := deg * math.Pi / 180
	return r2.Vec{X: r * math.Cos(rad), Y: r * math.Sin(rad)}
}

// LineChar returns the character that best draws a ray at deg degrees
// (screen coordinates, clockwise from the right).
func LineChar(deg float64) rune {
	for deg < 0 {
		deg += 360
	}
	sector := int(math.Round(deg/45)) % 8

	switch sector {
	case 0, 4: // East, West
		return '-'
	case 1, 5: // SE, NW
		return '\\'
	case 2, 6: // South, North
		return '|'
	case 3, 7: // SW, NE
		return '/'
	default:
		return '.'
	}
}

// RingChar returns the character for a ring passing through deg degrees.
// The ring runs perpendicular to the ray.
func RingChar(deg float64) rune {
	return LineChar(deg + 90)
}

// ArrowHead returns the tip character for an arrow pointing at deg.
func ArrowHead(deg float64) rune {
	for deg < 0 {
		deg += 360
	}
	heads := []rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}
	return heads[int(math.Round(deg/45))%8]
}
