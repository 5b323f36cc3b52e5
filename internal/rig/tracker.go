package rig

import (
	"gonum.org/v1/gonum/spatial/r2"
	"robot-rig.klederson.com/internal/sensors"
)

// Tracker owns the platform center and the tracking flag, and feeds live
// cursor positions through the sensor geometry while tracking is on.
type Tracker struct {
	params  sensors.Params
	center  r2.Vec
	enabled bool
	cursor  r2.Vec
	seen    bool
	frame   sensors.Frame
}

// NewTracker starts disabled with every sensor saturated.
func NewTracker(params sensors.Params) *Tracker {
	return &Tracker{
		params: params,
		frame:  params.Idle(),
	}
}

// SetCenter records the platform center after a layout change. The last
// frame is left as is until the next cursor move.
func (t *Tracker) SetCenter(c r2.Vec) {
	t.center = c
}

// Center returns the current platform center.
func (t *Tracker) Center() r2.Vec {
	return t.center
}

// Enabled reports whether cursor moves are tracked.
func (t *Tracker) Enabled() bool {
	return t.enabled
}

// SetEnabled switches tracking on or off.
func (t *Tracker) SetEnabled(on bool) {
	t.enabled = on
}

// Toggle flips tracking and returns the new state.
func (t *Tracker) Toggle() bool {
	t.enabled = !t.enabled
	return t.enabled
}

// Move processes a cursor position. It returns false, leaving the frame
// untouched, while tracking is off.
func (t *Tracker) Move(cursor r2.Vec) (sensors.Frame, bool) {
	if !t.enabled {
		return t.frame, false
	}
	t.cursor = cursor
	t.seen = true
	t.frame = t.params.Scan(cursor, t.center)
	return t.frame, true
}

// MoveOffset processes a cursor given relative to the center.
func (t *Tracker) MoveOffset(offset r2.Vec) (sensors.Frame, bool) {
	return t.Move(r2.Add(t.center, offset))
}

// Frame returns the most recent frame.
func (t *Tracker) Frame() sensors.Frame {
	return t.frame
}

// Cursor returns the last tracked cursor position, if any.
func (t *Tracker) Cursor() (r2.Vec, bool) {
	return t.cursor, t.seen
}

// Label is the tracking button caption.
func (t *Tracker) Label() string {
	if t.enabled {
		return "Disable mouse tracking"
	}
	return "Enable mouse tracking"
}
