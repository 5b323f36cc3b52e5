package sensors

import "gonum.org/v1/gonum/spatial/r2"

// Sector is a 45° slice around the platform center. The two Main sensors
// straddle the sector center, the two Side sensors sit just outside them.
type Sector struct {
	Min, Max float64 // degrees; Min > Max for the slice that crosses 0°
	Main     [2]int
	Side     [2]int
}

// Sectors is checked in order; the first match wins, so a boundary angle
// belongs to the lower-indexed sector.
var Sectors = [SectorCount]Sector{
	{Min: 337.5, Max: 22.5, Main: [2]int{1, 8}, Side: [2]int{2, 7}},
	{Min: 22.5, Max: 67.5, Main: [2]int{1, 2}, Side: [2]int{8, 3}},
	{Min: 67.5, Max: 112.5, Main: [2]int{2, 3}, Side: [2]int{1, 4}},
	{Min: 112.5, Max: 157.5, Main: [2]int{3, 4}, Side: [2]int{2, 5}},
	{Min: 157.5, Max: 202.5, Main: [2]int{4, 5}, Side: [2]int{3, 6}},
	{Min: 202.5, Max: 247.5, Main: [2]int{5, 6}, Side: [2]int{4, 7}},
	{Min: 247.5, Max: 292.5, Main: [2]int{6, 7}, Side: [2]int{5, 8}},
	{Min: 292.5, Max: 337.5, Main: [2]int{7, 8}, Side: [2]int{6, 1}},
}

// Wraps reports whether the sector crosses 0°.
func (s Sector) Wraps() bool {
	return s.Min > s.Max
}

// Contains reports whether angle (degrees, [0, 360)) lies within the
// sector bounds, both ends inclusive.
func (s Sector) Contains(angle float64) bool {
	if s.Wraps() {
		return angle >= s.Min || angle <= s.Max
	}
	return angle >= s.Min && angle <= s.Max
}

// Active returns the main and side sensors, 1-based.
func (s Sector) Active() [4]int {
	return [4]int{s.Main[0], s.Main[1], s.Side[0], s.Side[1]}
}

// IsActive reports whether the 1-based sensor index responds in this sector.
func (s Sector) IsActive(index int) bool {
	for _, i := range s.Active() {
		if i == index {
			return true
		}
	}
	return false
}

// Index returns the sector's position in Sectors, or -1.
func (s Sector) Index() int {
	for i, sec := range Sectors {
		if sec == s {
			return i
		}
	}
	return -1
}

// ClassifyAngle returns the sector holding angle (degrees).
func ClassifyAngle(angle float64) Sector {
	angle = NormalizeDegrees(angle)
	for _, s := range Sectors {
		if s.Contains(angle) {
			return s
		}
	}
	// Sectors cover [0, 360) completely; kept for NaN input.
	return Sectors[0]
}

// Classify returns the sector for a cursor offset from the platform center.
func Classify(offset r2.Vec) Sector {
	return ClassifyAngle(Angle(offset))
}

// ClassifyPoint returns the sector for an absolute cursor position.
func ClassifyPoint(cursor, center r2.Vec) Sector {
	return Classify(r2.Sub(cursor, center))
}
