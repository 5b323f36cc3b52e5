package rig

import (
	"math"

	"robot-rig.klederson.com/internal/config"
)

// Gripper is the vertically actuated claw. Y is the vertical offset in rig
// pixels: 0 is fully lowered, -MaxMove fully raised.
type Gripper struct {
	Open bool
	Y    float64

	cfg config.GripperConfig
}

// NewGripper creates a closed, lowered gripper.
func NewGripper(cfg config.GripperConfig) *Gripper {
	return &Gripper{cfg: cfg}
}

// Toggle switches between open and closed.
func (g *Gripper) Toggle() {
	g.Open = !g.Open
}

// Raise moves up one step.
func (g *Gripper) Raise() {
	g.Y = math.Max(g.Y-g.cfg.Step, -g.cfg.MaxMove)
}

// Lower moves down one step.
func (g *Gripper) Lower() {
	g.Y = math.Min(g.Y+g.cfg.Step, 0)
}

// Percent returns the lift as 0..100.
func (g *Gripper) Percent() int {
	return int(math.Round(math.Abs(g.Y) / g.cfg.MaxMove * 100))
}

// SetPercent positions the gripper from a slider value.
func (g *Gripper) SetPercent(p int) {
	p = max(0, min(p, 100))
	g.Y = -math.Round(float64(p) / 100 * g.cfg.MaxMove)
}

// Nudge moves the slider by delta percent.
func (g *Gripper) Nudge(delta int) {
	g.SetPercent(g.Percent() + delta)
}

// Label is the button caption.
func (g *Gripper) Label() string {
	if g.Open {
		return "OPEN"
	}
	return "CLOSED"
}
