package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"robot-rig.klederson.com/internal/rig"
	"robot-rig.klederson.com/internal/sensors"
)

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(80, 40, 0.5, 630)
	assert.Equal(t, 40, v.CenterCol)
	assert.Equal(t, 20, v.CenterRow)
	assert.InDelta(t, 630/v.Radius, v.Scale, 1e-9)

	for _, cell := range [][2]int{{40, 20}, {0, 0}, {79, 39}, {55, 12}} {
		col, row := v.CellAt(v.Offset(cell[0], cell[1]))
		assert.Equal(t, cell[0], col)
		assert.Equal(t, cell[1], row)
	}
}

func TestViewportAspect(t *testing.T) {
	v := NewViewport(80, 40, 0.5, 630)
	right := v.Offset(v.CenterCol+10, v.CenterRow)
	down := v.Offset(v.CenterCol, v.CenterRow+5)
	assert.InDelta(t, right.X, down.Y, 1e-9, "five rows span the same pixels as ten columns")
	assert.Equal(t, r2.Vec{}, v.Offset(v.CenterCol, v.CenterRow))
}

func TestViewportMinimumRadius(t *testing.T) {
	v := NewViewport(4, 4, 0.5, 630)
	assert.Equal(t, 3.0, v.Radius)
}

func TestLineChar(t *testing.T) {
	assert.Equal(t, '-', LineChar(0))
	assert.Equal(t, '\\', LineChar(45))
	assert.Equal(t, '|', LineChar(90))
	assert.Equal(t, '/', LineChar(135))
	assert.Equal(t, '-', LineChar(180))
	assert.Equal(t, '/', LineChar(-45))
	assert.Equal(t, '|', RingChar(0))
	assert.Equal(t, '>', ArrowHead(0))
	assert.Equal(t, '^', ArrowHead(270))
	assert.Equal(t, '<', ArrowHead(-180))
}

func testScene(readings [sensors.AxisCount]sensors.Reading) Scene {
	return Scene{
		Params:         sensors.DefaultParams(),
		PlatformRadius: 150,
		ArrowLength:    140,
		Readings:       readings,
		Left:           Wheel{Arrow: rig.Arrow{Run: true}},
		Right:          Wheel{Arrow: rig.Arrow{Run: false, Rotation: 180}, Powered: true},
	}
}

func TestRenderDimensions(t *testing.T) {
	p := sensors.DefaultParams()
	v := NewViewport(70, 30, 0.5, p.DonutMax)
	out := Render(v, testScene(p.Idle().Readings))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 30)
	for i, l := range lines {
		assert.Equal(t, 70, lipgloss.Width(l), "line %d", i)
	}
}

func TestRenderTooSmall(t *testing.T) {
	v := NewViewport(8, 4, 0.5, 630)
	assert.Empty(t, Render(v, testScene(sensors.DefaultParams().Idle().Readings)))
}

func TestRenderMarkers(t *testing.T) {
	p := sensors.DefaultParams()
	v := NewViewport(90, 40, 0.5, p.DonutMax)

	idle := Render(v, testScene(p.Idle().Readings))
	assert.NotContains(t, idle, "O")
	assert.Contains(t, idle, "o")
	assert.Contains(t, idle, "+")
	assert.Contains(t, idle, "^")
	assert.Contains(t, idle, "v")

	f := p.Scan(r2.Vec{X: 400}, r2.Vec{})
	s := testScene(f.Readings)
	s.Cursor = f.Offset
	s.ShowCursor = true
	live := Render(v, s)
	assert.Contains(t, live, "O")
	assert.Contains(t, live, "X")

	for i := 1; i <= sensors.AxisCount; i++ {
		assert.Contains(t, live, string(rune('0'+i)), "sensor label %d", i)
	}
}

func TestRenderLegend(t *testing.T) {
	legend := RenderLegend(120)
	assert.Contains(t, legend, "O active")
	assert.Contains(t, legend, "o saturated")
	assert.LessOrEqual(t, lipgloss.Width(legend), 120)
}
