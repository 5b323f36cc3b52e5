// Package config holds the rig constants and the YAML-backed tuning
// parameters.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"robot-rig.klederson.com/internal/sensors"
)

//go:embed defaults.yaml
var defaultsYAML []byte

const (
	// App
	AppName    = "ROBOT-RIG"
	AppVersion = "1.0"

	// Layout
	MenuHeight   = 1
	StatusHeight = 1
	SidePanelMin = 38 // Minimum width of the readout column
	RigPanelMin  = 30
)

// Config holds all tunable parameters.
type Config struct {
	Sensors sensors.Params `yaml:"sensors"`
	Wheels  WheelsConfig   `yaml:"wheels"`
	Heading HeadingConfig  `yaml:"heading"`
	Gripper GripperConfig  `yaml:"gripper"`
	Display DisplayConfig  `yaml:"display"`
}

// WheelsConfig holds drive wheel parameters.
type WheelsConfig struct {
	MaxSpeed     float64       `yaml:"max_speed"`
	SpeedStep    float64       `yaml:"speed_step"`
	InitialSpeed float64       `yaml:"initial_speed"`
	HoldWindow   time.Duration `yaml:"hold_window"` // Power stays on this long after the last key press
}

// HeadingConfig holds heading arrow parameters.
type HeadingConfig struct {
	RotationFactor float64 `yaml:"rotation_factor"`
	ArrowLength    float64 `yaml:"arrow_length"` // In rig pixels
}

// GripperConfig holds gripper travel parameters.
type GripperConfig struct {
	MaxMove    float64 `yaml:"max_move"` // Full vertical travel in rig pixels
	Step       float64 `yaml:"step"`
	SliderStep int     `yaml:"slider_step"`
}

// DisplayConfig holds terminal display settings.
type DisplayConfig struct {
	TargetFPS      int     `yaml:"target_fps"`
	AspectRatio    float64 `yaml:"aspect_ratio"`
	PlatformRadius float64 `yaml:"platform_radius"`
	HistoryLen     int     `yaml:"history_len"`
}

// Load reads the embedded defaults and overlays the file at path, if any.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks every section.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Sensors.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("sensors: %w", err))
	}
	if c.Wheels.MaxSpeed <= 0 || c.Wheels.SpeedStep <= 0 {
		errs = append(errs, errors.New("wheels: max_speed and speed_step must be positive"))
	}
	if c.Wheels.InitialSpeed < 0 || c.Wheels.InitialSpeed > c.Wheels.MaxSpeed {
		errs = append(errs, fmt.Errorf("wheels: initial_speed %g outside [0, %g]", c.Wheels.InitialSpeed, c.Wheels.MaxSpeed))
	}
	if c.Wheels.HoldWindow <= 0 {
		errs = append(errs, errors.New("wheels: hold_window must be positive"))
	}
	if c.Gripper.MaxMove <= 0 || c.Gripper.Step <= 0 {
		errs = append(errs, errors.New("gripper: max_move and step must be positive"))
	}
	if c.Gripper.SliderStep <= 0 || c.Gripper.SliderStep > 100 {
		errs = append(errs, fmt.Errorf("gripper: slider_step %d outside (0, 100]", c.Gripper.SliderStep))
	}
	if c.Display.TargetFPS <= 0 {
		errs = append(errs, errors.New("display: target_fps must be positive"))
	}
	if c.Display.AspectRatio <= 0 {
		errs = append(errs, errors.New("display: aspect_ratio must be positive"))
	}
	if c.Display.HistoryLen <= 0 {
		errs = append(errs, errors.New("display: history_len must be positive"))
	}
	return errors.Join(errs...)
}

// FrameInterval is the animation tick period.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Display.TargetFPS)
}
