package sensors

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	AxisCount   = 8
	SectorCount = 8
	SectorWidth = 45.0 // degrees
	AxisOffset  = 22.5 // first axis angle in degrees
)

// Orientation selects which offset component an axis divides by its
// direction to find the intersection scalar.
type Orientation int

const (
	// Vertical axes divide dx by cos(θ).
	Vertical Orientation = iota
	// Horizontal axes divide dy by sin(θ).
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Axis is one of the eight fixed sensor rays around the platform.
type Axis struct {
	Index       int     // 1-based
	Angle       float64 // degrees, screen coordinates (y grows downward)
	Orientation Orientation
}

// Axes lists the sensor rays in index order. Angles are 45i + 22.5.
var Axes = [AxisCount]Axis{
	{Index: 1, Angle: 22.5, Orientation: Vertical},
	{Index: 2, Angle: 67.5, Orientation: Horizontal},
	{Index: 3, Angle: 112.5, Orientation: Horizontal},
	{Index: 4, Angle: 157.5, Orientation: Vertical},
	{Index: 5, Angle: 202.5, Orientation: Vertical},
	{Index: 6, Angle: 247.5, Orientation: Horizontal},
	{Index: 7, Angle: 292.5, Orientation: Horizontal},
	{Index: 8, Angle: 337.5, Orientation: Vertical},
}

// Direction returns the unit vector along the axis.
func (a Axis) Direction() r2.Vec {
	rad := Radians(a.Angle)
	return r2.Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Project returns the scalar at which the offset meets the axis, dividing
// by the larger trigonometric component of the axis direction.
// ok is false when the division yields NaN or an infinity.
func (a Axis) Project(offset r2.Vec) (pos float64, ok bool) {
	dir := a.Direction()
	if a.Orientation == Vertical {
		pos = offset.X / dir.X
	} else {
		pos = offset.Y / dir.Y
	}
	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		return 0, false
	}
	return pos, true
}

// Angle returns the direction of offset in degrees, normalized to [0, 360).
// 0 points right and angles grow clockwise on screen.
func Angle(offset r2.Vec) float64 {
	return NormalizeDegrees(Degrees(math.Atan2(offset.Y, offset.X)))
}

// NormalizeDegrees wraps an angle to [0, 360).
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a -= 360
	}
	return a
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
