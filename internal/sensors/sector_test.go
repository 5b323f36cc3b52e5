package sensors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func polar(deg, r float64) r2.Vec {
	rad := Radians(deg)
	return r2.Vec{X: r * math.Cos(rad), Y: r * math.Sin(rad)}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name   string
		offset r2.Vec
		want   float64
	}{
		{"right", r2.Vec{X: 1}, 0},
		{"down", r2.Vec{Y: 1}, 90},
		{"left", r2.Vec{X: -1}, 180},
		{"up", r2.Vec{Y: -1}, 270},
		{"up-right", r2.Vec{X: 1, Y: -1}, 315},
		{"origin", r2.Vec{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Angle(tt.offset), 1e-9)
		})
	}
}

func TestNormalizeDegrees(t *testing.T) {
	assert.InDelta(t, 0, NormalizeDegrees(360), 1e-9)
	assert.InDelta(t, 350, NormalizeDegrees(-10), 1e-9)
	assert.InDelta(t, 10, NormalizeDegrees(730), 1e-9)
	assert.InDelta(t, 359.5, NormalizeDegrees(-0.5), 1e-9)
}

func TestClassifyTable(t *testing.T) {
	tests := []struct {
		angle float64
		main  [2]int
		side  [2]int
	}{
		{0, [2]int{1, 8}, [2]int{2, 7}},
		{45, [2]int{1, 2}, [2]int{8, 3}},
		{90, [2]int{2, 3}, [2]int{1, 4}},
		{135, [2]int{3, 4}, [2]int{2, 5}},
		{180, [2]int{4, 5}, [2]int{3, 6}},
		{225, [2]int{5, 6}, [2]int{4, 7}},
		{270, [2]int{6, 7}, [2]int{5, 8}},
		{315, [2]int{7, 8}, [2]int{6, 1}},
	}

	for _, tt := range tests {
		s := Classify(polar(tt.angle, 500))
		assert.Equal(t, tt.main, s.Main, "angle %v", tt.angle)
		assert.Equal(t, tt.side, s.Side, "angle %v", tt.angle)
	}
}

func TestClassifyWrapsAcrossZero(t *testing.T) {
	assert.Equal(t, Sectors[0], ClassifyAngle(0.01))
	assert.Equal(t, Sectors[0], ClassifyAngle(359.99))
	assert.Equal(t, Sectors[0], ClassifyAngle(337.5))
	assert.Equal(t, Sectors[0], ClassifyAngle(22.5))
	assert.Equal(t, Sectors[1], ClassifyAngle(22.51))
	assert.Equal(t, Sectors[7], ClassifyAngle(337.49))
}

func TestClassifyBoundariesGoToLowerSector(t *testing.T) {
	for k := 1; k < SectorCount-1; k++ {
		boundary := Sectors[k].Max
		assert.Equal(t, Sectors[k], ClassifyAngle(boundary), "boundary %v", boundary)
	}
}

func TestClassifyBoundaryIndices(t *testing.T) {
	tests := []struct {
		angle float64
		want  int
	}{
		{22.5, 0},
		{67.5, 1},
		{112.5, 2},
		{157.5, 3},
		{202.5, 4},
		{247.5, 5},
		{292.5, 6},
		{337.5, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyAngle(tt.angle).Index(), "angle %v", tt.angle)
	}
}

func TestEveryAngleHasFourDistinctActiveSensors(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 0.25 {
		s := Classify(polar(deg, 400))
		require.True(t, s.Contains(Angle(polar(deg, 400))), "angle %v", deg)
		require.NotEqual(t, -1, s.Index())

		seen := make(map[int]bool)
		for _, idx := range s.Active() {
			require.GreaterOrEqual(t, idx, 1)
			require.LessOrEqual(t, idx, AxisCount)
			seen[idx] = true
		}
		require.Len(t, seen, 4, "angle %v", deg)
	}
}

func TestSectorsCoverFullCircleWithoutGaps(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 0.1 {
		matched := 0
		for _, s := range Sectors {
			if s.Contains(deg) {
				matched++
			}
		}
		// Interior angles match once; exact boundaries match both neighbours.
		assert.GreaterOrEqual(t, matched, 1, "angle %v", deg)
		assert.LessOrEqual(t, matched, 2, "angle %v", deg)
	}
}

func TestClassifyPoint(t *testing.T) {
	center := r2.Vec{X: 800, Y: 450}
	cursor := r2.Vec{X: 800, Y: 900}
	assert.Equal(t, Sectors[2], ClassifyPoint(cursor, center))
}

func TestClassifyNaNFallsBackToFirstSector(t *testing.T) {
	assert.Equal(t, Sectors[0], ClassifyAngle(math.NaN()))
}

func TestAxesTable(t *testing.T) {
	for i, a := range Axes {
		assert.Equal(t, i+1, a.Index)
		assert.InDelta(t, 45*float64(i)+AxisOffset, a.Angle, 1e-9)

		dir := a.Direction()
		if a.Orientation == Vertical {
			assert.Greater(t, math.Abs(dir.X), math.Abs(dir.Y), "axis %d", a.Index)
		} else {
			assert.Greater(t, math.Abs(dir.Y), math.Abs(dir.X), "axis %d", a.Index)
		}
	}
}
