package sensors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func assertAllSaturated(t *testing.T, p Params, readings [AxisCount]Reading) {
	t.Helper()
	for i, r := range readings {
		assert.Equal(t, Saturated, r.State, "sensor %d", i+1)
		assert.Equal(t, p.MaxDist, r.Value, "sensor %d", i+1)
		assert.Equal(t, p.MaxPos, r.Position, "sensor %d", i+1)
	}
}

func TestDefaultParamsValid(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())
	assert.Equal(t, 185.0, p.MinPos)
	assert.Equal(t, 485.0, p.MaxPos)
	assert.Equal(t, 10, p.MinDist)
	assert.Equal(t, 80, p.MaxDist)
	assert.Equal(t, 330.0, p.DonutMin)
	assert.Equal(t, 630.0, p.DonutMax)
}

func TestParamsValidateRejectsEmptyRanges(t *testing.T) {
	p := DefaultParams()
	p.DonutMin = 700
	p.MinDist = 90
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "donut zone")
	assert.Contains(t, err.Error(), "distance range")
}

func TestScanCursorRightOfCenter(t *testing.T) {
	p := DefaultParams()
	f := p.Scan(r2.Vec{X: 400, Y: 0}, r2.Vec{})

	assert.InDelta(t, 400, f.Distance, 1e-9)
	assert.True(t, f.InsideDonut)
	assert.Equal(t, Sectors[0], f.Sector)
	active := f.Sector.Active()
	assert.ElementsMatch(t, []int{1, 8, 2, 7}, active[:])

	// 400 / cos(22.5°) ≈ 432.96, t ≈ 0.343
	s1 := f.Readings[0]
	assert.Equal(t, Active, s1.State)
	assert.Equal(t, 34, s1.Value)
	assert.InDelta(t, 185+0.3432*300, s1.Position, 0.1)

	// Axis 8 is the mirror image of axis 1.
	assert.Equal(t, s1.Value, f.Readings[7].Value)
	assert.Equal(t, Active, f.Readings[7].State)

	// Axes 2 and 7 are active but dy = 0 puts their intersection at 0.
	assert.Equal(t, Saturated, f.Readings[1].State)
	assert.Equal(t, Saturated, f.Readings[6].State)

	for _, i := range []int{2, 3, 4, 5} {
		assert.Equal(t, Saturated, f.Readings[i].State, "sensor %d", i+1)
	}
	assert.Equal(t, 2, f.ActiveCount())
}

func TestScanCursorAtCenterSaturatesEverything(t *testing.T) {
	p := DefaultParams()
	f := p.Scan(r2.Vec{X: 10, Y: 10}, r2.Vec{X: 10, Y: 10})

	assert.Zero(t, f.Distance)
	assert.False(t, f.InsideDonut)
	assertAllSaturated(t, p, f.Readings)
}

func TestOutsideDonutSaturatesEverything(t *testing.T) {
	p := DefaultParams()
	for _, r := range []float64{1, 150, 329.9, 630.1, 1000} {
		for deg := 0.0; deg < 360; deg += 15 {
			offset := polar(deg, r)
			assertAllSaturated(t, p, p.Resolve(offset, Classify(offset)))
		}
	}
}

func TestInactiveSensorsSaturate(t *testing.T) {
	p := DefaultParams()
	// Down the middle of axis 3 so its projection is valid; only the
	// sector membership keeps it saturated.
	offset := polar(112.5, 400)
	readings := p.Resolve(offset, Sectors[0])
	assert.Equal(t, Saturated, readings[2].State)

	readings = p.Resolve(offset, Classify(offset))
	assert.Equal(t, Active, readings[2].State)
}

func TestReadingBounds(t *testing.T) {
	p := DefaultParams()

	lo := p.reading(p.DonutMin)
	assert.Equal(t, p.MinDist, lo.Value)
	assert.Equal(t, p.MinPos, lo.Position)
	assert.Equal(t, Active, lo.State)

	hi := p.reading(p.DonutMax)
	assert.Equal(t, p.MaxDist, hi.Value)
	assert.Equal(t, p.MaxPos, hi.Position)

	mid := p.reading((p.DonutMin + p.DonutMax) / 2)
	assert.Equal(t, 45, mid.Value)
	assert.InDelta(t, 335, mid.Position, 1e-9)
}

func TestProjectionNearDonutEdges(t *testing.T) {
	p := DefaultParams()
	cos := math.Cos(Radians(22.5))

	near := r2.Vec{X: 331 * cos, Y: 150}
	f := p.Scan(near, r2.Vec{})
	require.True(t, f.InsideDonut)
	assert.Equal(t, Active, f.Readings[0].State)
	assert.Equal(t, p.MinDist, f.Readings[0].Value)

	far := r2.Vec{X: 629 * cos, Y: 100}
	f = p.Scan(far, r2.Vec{})
	require.True(t, f.InsideDonut)
	assert.Equal(t, Active, f.Readings[0].State)
	assert.Equal(t, p.MaxDist, f.Readings[0].Value)
}

func TestProjectionBeyondDonutSaturates(t *testing.T) {
	p := DefaultParams()
	// Inside the donut by distance, but the axis 1 projection
	// (dx / cos 22.5°) overshoots DonutMax.
	offset := r2.Vec{X: 600, Y: 0}
	readings := p.Resolve(offset, Classify(offset))
	assert.Equal(t, Saturated, readings[0].State)
	assert.Equal(t, p.MaxDist, readings[0].Value)
}

func TestValueMonotonicAlongAxis(t *testing.T) {
	p := DefaultParams()
	prev := p.MinDist
	prevPos := p.MinPos
	for dx := 330.0; dx <= 580; dx += 2.5 {
		readings := p.Resolve(r2.Vec{X: dx}, Sectors[0])
		r := readings[0]
		require.Equal(t, Active, r.State, "dx %v", dx)
		assert.GreaterOrEqual(t, r.Value, prev, "dx %v", dx)
		assert.GreaterOrEqual(t, r.Position, prevPos, "dx %v", dx)
		prev, prevPos = r.Value, r.Position
	}
}

func TestReadingsStayInRange(t *testing.T) {
	p := DefaultParams()
	for r := 0.0; r <= 700; r += 7 {
		for deg := 0.0; deg < 360; deg += 3 {
			offset := polar(deg, r)
			for _, rd := range p.Resolve(offset, Classify(offset)) {
				assert.GreaterOrEqual(t, rd.Value, p.MinDist)
				assert.LessOrEqual(t, rd.Value, p.MaxDist)
				assert.GreaterOrEqual(t, rd.Position, p.MinPos)
				assert.LessOrEqual(t, rd.Position, p.MaxPos)
			}
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	p := DefaultParams()
	offset := r2.Vec{X: 350, Y: 210}
	sector := Classify(offset)

	first := p.Resolve(offset, sector)
	second := p.Resolve(offset, sector)
	assert.Equal(t, first, second)
}

func TestProjectRejectsNonFinite(t *testing.T) {
	_, ok := Axes[0].Project(r2.Vec{X: math.NaN()})
	assert.False(t, ok)

	_, ok = Axes[1].Project(r2.Vec{Y: math.Inf(1)})
	assert.False(t, ok)

	pos, ok := Axes[1].Project(r2.Vec{Y: 400})
	assert.True(t, ok)
	assert.InDelta(t, 400/math.Sin(Radians(67.5)), pos, 1e-9)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "saturated", Saturated.String())
}
