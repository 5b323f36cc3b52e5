package rig

import (
	"time"

	"robot-rig.klederson.com/internal/config"
	"robot-rig.klederson.com/internal/sensors"
)

// Heading accumulates the robot arrow angle from the wheel speed
// difference.
type Heading struct {
	Angle  float64 // degrees, [0, 360)
	Factor float64
}

// Step turns the arrow by (left - right) * Factor.
func (h *Heading) Step(left, right float64) {
	h.Angle = sensors.NormalizeDegrees(h.Angle + (left-right)*h.Factor)
}

// Drive owns both wheels and the heading they steer.
type Drive struct {
	Left    *Wheel
	Right   *Wheel
	Heading Heading
}

// NewDrive builds a stopped drive facing right.
func NewDrive(wheels config.WheelsConfig, heading config.HeadingConfig) *Drive {
	return &Drive{
		Left:    NewWheel("L", wheels),
		Right:   NewWheel("R", wheels),
		Heading: Heading{Factor: heading.RotationFactor},
	}
}

// Step advances the heading by one animation frame.
func (d *Drive) Step(now time.Time) {
	d.Heading.Step(d.Left.Output(now), d.Right.Output(now))
}

// StopAll cuts power to both wheels.
func (d *Drive) StopAll() {
	d.Left.Release()
	d.Right.Release()
}
