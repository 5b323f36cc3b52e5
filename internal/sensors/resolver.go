package sensors

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// State tells whether a sensor found a geometric hit.
type State int

const (
	Saturated State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "saturated"
}

// Reading is the per-axis output handed to the renderer.
type Reading struct {
	Position float64 // radial offset along the axis, [MinPos, MaxPos]
	Value    int     // simulated distance, [MinDist, MaxDist]
	State    State
}

// Params holds the sensor marker range, the readout range and the donut
// zone in which the cursor influences readings.
type Params struct {
	MinPos   float64 `yaml:"min_pos"`
	MaxPos   float64 `yaml:"max_pos"`
	MinDist  int     `yaml:"min_dist"`
	MaxDist  int     `yaml:"max_dist"`
	DonutMin float64 `yaml:"donut_min"`
	DonutMax float64 `yaml:"donut_max"`
}

// DefaultParams returns the stock rig geometry.
func DefaultParams() Params {
	return Params{
		MinPos:   185,
		MaxPos:   485,
		MinDist:  10,
		MaxDist:  80,
		DonutMin: 330,
		DonutMax: 630,
	}
}

// Validate checks that every range is non-empty and the donut is not
// inverted.
func (p Params) Validate() error {
	var errs []error
	if p.MinPos < 0 || p.MinPos >= p.MaxPos {
		errs = append(errs, fmt.Errorf("sensor position range [%g, %g] is empty", p.MinPos, p.MaxPos))
	}
	if p.MinDist < 0 || p.MinDist >= p.MaxDist {
		errs = append(errs, fmt.Errorf("sensor distance range [%d, %d] is empty", p.MinDist, p.MaxDist))
	}
	if p.DonutMin < 0 || p.DonutMin >= p.DonutMax {
		errs = append(errs, fmt.Errorf("donut zone [%g, %g] is empty", p.DonutMin, p.DonutMax))
	}
	return errors.Join(errs...)
}

// Saturated is the reading of a sensor with nothing in range.
func (p Params) Saturated() Reading {
	return Reading{Position: p.MaxPos, Value: p.MaxDist, State: Saturated}
}

// InDonut reports whether a radial distance lies in the donut zone.
func (p Params) InDonut(d float64) bool {
	return d >= p.DonutMin && d <= p.DonutMax
}

// Resolve computes all eight readings for a cursor offset. A sensor is
// Active only when the cursor is inside the donut, the sensor belongs to
// sector, and its axis intersection falls inside the donut.
func (p Params) Resolve(offset r2.Vec, sector Sector) [AxisCount]Reading {
	var out [AxisCount]Reading
	inside := p.InDonut(r2.Norm(offset))

	for i, axis := range Axes {
		out[i] = p.Saturated()
		if !inside || !sector.IsActive(axis.Index) {
			continue
		}
		pos, ok := axis.Project(offset)
		if !ok || !p.InDonut(pos) {
			continue
		}
		out[i] = p.reading(pos)
	}
	return out
}

// reading maps an intersection scalar inside the donut onto the marker
// and readout ranges.
func (p Params) reading(pos float64) Reading {
	pos = math.Min(math.Max(pos, p.DonutMin), p.DonutMax)
	t := (pos - p.DonutMin) / (p.DonutMax - p.DonutMin)

	return Reading{
		Position: p.MinPos + t*(p.MaxPos-p.MinPos),
		Value:    int(math.Round(float64(p.MinDist) + t*float64(p.MaxDist-p.MinDist))),
		State:    Active,
	}
}

// Frame is one full pass of the geometry engine.
type Frame struct {
	Offset      r2.Vec
	Distance    float64
	Angle       float64
	Sector      Sector
	InsideDonut bool
	Readings    [AxisCount]Reading
}

// ActiveCount returns how many sensors report a hit.
func (f Frame) ActiveCount() int {
	n := 0
	for _, r := range f.Readings {
		if r.State == Active {
			n++
		}
	}
	return n
}

// Scan classifies the cursor and resolves every sensor against center.
func (p Params) Scan(cursor, center r2.Vec) Frame {
	offset := r2.Sub(cursor, center)
	dist := r2.Norm(offset)
	angle := Angle(offset)
	sector := ClassifyAngle(angle)

	return Frame{
		Offset:      offset,
		Distance:    dist,
		Angle:       angle,
		Sector:      sector,
		InsideDonut: p.InDonut(dist),
		Readings:    p.Resolve(offset, sector),
	}
}

// Idle is the frame reported before any cursor has been seen.
func (p Params) Idle() Frame {
	return p.Scan(r2.Vec{}, r2.Vec{})
}
