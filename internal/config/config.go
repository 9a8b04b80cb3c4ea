// Package config loads the YAML game configuration.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is fixed for the lifetime of a session.
type Config struct {
	Seed   int64       `yaml:"seed"`
	Road   RoadConfig  `yaml:"road"`
	Timing Timing      `yaml:"timing"`
	Audio  AudioConfig `yaml:"audio"`
}

// RoadConfig controls road generation and block placement.
type RoadConfig struct {
	Length   int     `yaml:"length"`
	BlockY   float64 `yaml:"block_y"`
	Template string  `yaml:"template"`
}

// Timing holds every delay used by the game loop.
type Timing struct {
	InputEnableDelay  time.Duration `yaml:"input_enable_delay"`
	AudioInterval     time.Duration `yaml:"audio_interval"`
	AudioRestartDelay time.Duration `yaml:"audio_restart_delay"`
	JumpDuration      time.Duration `yaml:"jump_duration"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Road: RoadConfig{
			Length:   50,
			BlockY:   -1.5,
			Template: "cube",
		},
		Timing: Timing{
			InputEnableDelay:  time.Millisecond,
			AudioInterval:     5 * time.Second,
			AudioRestartDelay: 2 * time.Second,
			JumpDuration:      150 * time.Millisecond,
		},
		Audio: AudioConfig{Enabled: true},
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Road.Length < 1 {
		errs = append(errs, fmt.Errorf("road.length must be at least 1, got %d", c.Road.Length))
	}
	if c.Timing.InputEnableDelay < 0 {
		errs = append(errs, fmt.Errorf("timing.input_enable_delay must not be negative"))
	}
	if c.Timing.AudioInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.audio_interval must be positive"))
	}
	if c.Timing.AudioRestartDelay < 0 {
		errs = append(errs, fmt.Errorf("timing.audio_restart_delay must not be negative"))
	}
	if c.Timing.JumpDuration < 0 {
		errs = append(errs, fmt.Errorf("timing.jump_duration must not be negative"))
	}
	return errors.Join(errs...)
}
