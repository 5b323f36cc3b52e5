package rig

import "strings"

// Action is a rig command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleTracking
	ActionLeftPower
	ActionRightPower
	ActionStopAll
	ActionLeftSlower
	ActionLeftFaster
	ActionLeftFlip
	ActionRightSlower
	ActionRightFaster
	ActionRightFlip
	ActionGripperToggle
	ActionGripperUp
	ActionGripperDown
	ActionSliderUp
	ActionSliderDown
)

// Bindings maps key names, as Bubble Tea reports them, to actions. Power
// and gripper keys also accept the Russian layout.
var Bindings = map[string]Action{
	"q":      ActionQuit,
	"ctrl+c": ActionQuit,
	"t":      ActionToggleTracking,
	"е":      ActionToggleTracking,

	"a":   ActionLeftPower,
	"ф":   ActionLeftPower,
	"d":   ActionRightPower,
	"в":   ActionRightPower,
	"esc": ActionStopAll,

	"z": ActionLeftSlower,
	"x": ActionLeftFaster,
	"c": ActionLeftFlip,
	"n": ActionRightSlower,
	"m": ActionRightFaster,
	"b": ActionRightFlip,

	"g":      ActionGripperToggle,
	"w":      ActionGripperUp,
	"ц":      ActionGripperUp,
	"s":      ActionGripperDown,
	"ы":      ActionGripperDown,
	"pgup":   ActionSliderUp,
	"pgdown": ActionSliderDown,
}

// Lookup resolves a key name case-insensitively.
func Lookup(key string) Action {
	if a, ok := Bindings[key]; ok {
		return a
	}
	return Bindings[strings.ToLower(key)]
}
