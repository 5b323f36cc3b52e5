// Package demo moves a virtual cursor around the platform so the rig can
// be shown without a mouse.
package demo

import (
	"context"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gonum.org/v1/gonum/spatial/r2"
	"robot-rig.klederson.com/internal/sensors"
)

// PointerMsg is a synthetic pointer move, relative to the platform center.
type PointerMsg struct {
	Offset r2.Vec
}

// Sender is satisfied by *tea.Program.
type Sender interface {
	Send(msg tea.Msg)
}

const (
	emitInterval = 50 * time.Millisecond
	orbitPeriod  = 12.0 // seconds per revolution
	breathPeriod = 5.0  // seconds per in/out swing
)

// Driver orbits a cursor through the donut zone, swinging a little past
// both edges so saturation can be seen.
type Driver struct {
	params  sensors.Params
	program Sender
	cancel  context.CancelFunc
}

// NewDriver creates a stopped driver.
func NewDriver(params sensors.Params) *Driver {
	return &Driver{params: params}
}

// Position returns the cursor offset t seconds into the orbit.
func (d *Driver) Position(t float64) r2.Vec {
	mid := (d.params.DonutMin + d.params.DonutMax) / 2
	amp := (d.params.DonutMax-d.params.DonutMin)/2 + 40

	r := mid + amp*math.Sin(2*math.Pi*t/breathPeriod)
	a := 2 * math.Pi * t / orbitPeriod
	return r2.Vec{X: r * math.Cos(a), Y: r * math.Sin(a)}
}

// Start begins emitting PointerMsg to p.
func (d *Driver) Start(p Sender) {
	d.program = p

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	go d.loop(ctx)
}

func (d *Driver) loop(ctx context.Context) {
	ticker := time.NewTicker(emitInterval)
	defer ticker.Stop()

	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t += emitInterval.Seconds()
			if d.program != nil {
				d.program.Send(PointerMsg{Offset: d.Position(t)})
			}
		}
	}
}

// Stop halts the driver.
func (d *Driver) Stop() {
	if d.cancel != nil {
		d.cancel()
	}
}
