package rig

import (
	"math"
	"time"

	"robot-rig.klederson.com/internal/config"
)

// Direction is the wheel's travel sense.
type Direction int

const (
	Reverse Direction = -1
	Forward Direction = 1
)

func (d Direction) String() string {
	if d == Reverse {
		return "REV"
	}
	return "FWD"
}

// Arrow describes which wheel arrow is shown and how it is rotated.
type Arrow struct {
	Run      bool    // run arrow when true, stop arrow otherwise
	Rotation float64 // degrees
}

// Wheel is one driven wheel. Terminals deliver no key-up events, so power
// is held for a short window after each key press; key auto-repeat keeps
// it alive while the key is down.
type Wheel struct {
	Name      string
	Speed     float64
	Direction Direction

	poweredUntil time.Time
	cfg          config.WheelsConfig
}

// NewWheel creates a forward wheel at the configured initial speed.
func NewWheel(name string, cfg config.WheelsConfig) *Wheel {
	return &Wheel{
		Name:      name,
		Speed:     cfg.InitialSpeed,
		Direction: Forward,
		cfg:       cfg,
	}
}

// Press powers the wheel until now + HoldWindow.
func (w *Wheel) Press(now time.Time) {
	w.poweredUntil = now.Add(w.cfg.HoldWindow)
}

// Release cuts power immediately.
func (w *Wheel) Release() {
	w.poweredUntil = time.Time{}
}

// Powered reports whether the hold window is still open at now.
func (w *Wheel) Powered(now time.Time) bool {
	return now.Before(w.poweredUntil)
}

// Output returns the signed drive value, zero when unpowered.
func (w *Wheel) Output(now time.Time) float64 {
	if !w.Powered(now) {
		return 0
	}
	return w.Speed * float64(w.Direction)
}

// Faster raises the speed by one step, clamped to MaxSpeed.
func (w *Wheel) Faster() {
	w.Speed = math.Min(w.Speed+w.cfg.SpeedStep, w.cfg.MaxSpeed)
}

// Slower lowers the speed by one step, clamped to zero.
func (w *Wheel) Slower() {
	w.Speed = math.Max(w.Speed-w.cfg.SpeedStep, 0)
}

// Flip reverses the direction.
func (w *Wheel) Flip() {
	w.Direction = -w.Direction
}

// Arrow returns the run arrow for forward travel and the stop arrow,
// turned around, otherwise. The arrows themselves never rotate with speed.
func (w *Wheel) Arrow() Arrow {
	if w.Direction == Forward {
		return Arrow{Run: true, Rotation: 0}
	}
	return Arrow{Run: false, Rotation: 180}
}
