// Package config provides YAML-based configuration loading for Turbo Rush.
// The values tune the simulation and the platform; they are not a
// difficulty system and the defaults reproduce the classic game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for a Turbo Rush session.
type Config struct {
	Lane     LaneConfig    `yaml:"lane"`
	Tick     TickConfig    `yaml:"tick"`
	Spawn    SpawnConfig   `yaml:"spawn"`
	PowerUps PowerUpConfig `yaml:"powerups"`
	Palette  PaletteConfig `yaml:"palette"`
	Loading  LoadingConfig `yaml:"loading"`
	Input    InputConfig   `yaml:"input"`
	Audio    AudioConfig   `yaml:"audio"`
}

// LaneConfig defines the playfield geometry.
type LaneConfig struct {
	Width  int `yaml:"width"`  // Full lane width including the road edges
	Height int `yaml:"height"` // Full lane height; the playable rows are 1..Height-2
	// CullOffscreen removes obstacles and power-ups that scrolled past the
	// bottom. Disabling it keeps them forever, which grows the lists for the whole run.
	CullOffscreen bool `yaml:"cull_offscreen"`
}

// TickConfig defines the fixed simulation clock.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// SpawnConfig defines entity generation at the top of the lane.
type SpawnConfig struct {
	ObstacleChance float64 `yaml:"obstacle_chance"` // Per-tick probability gate in the loop
	PowerUpChance  float64 `yaml:"powerup_chance"`  // Probability gate inside the spawner
	ObstacleSpeed  int     `yaml:"obstacle_speed"`  // Rows per tick
}

// PowerUpConfig defines power-up effects.
type PowerUpConfig struct {
	BoostDuration    int `yaml:"boost_duration"`     // Ticks a speed boost lasts
	BoostStep        int `yaml:"boost_step"`         // Car step size while boosted
	ScoreBoostPoints int `yaml:"score_boost_points"` // Points a score boost awards
}

// PaletteConfig defines the cosmetic colour change.
type PaletteConfig struct {
	Every int `yaml:"every"` // Score multiple that triggers a new palette
}

// LoadingConfig defines the loading screen pacing.
type LoadingConfig struct {
	Enabled   bool `yaml:"enabled"`
	StepTicks int  `yaml:"step_ticks"` // Ticks per 10% of progress
	HoldTicks int  `yaml:"hold_ticks"` // Ticks the "Game Loaded" line stays up
}

// InputConfig defines how terminal key presses become held actions.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long a key press counts as held
}

// AudioConfig defines the sound notifier.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Linear amplitude, 0.0 to 1.0
}

// TickInterval returns the tick duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Tick.IntervalMS) * time.Millisecond
}

// HoldWindow returns how long a key press counts as held.
func (c Config) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldMS) * time.Millisecond
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if c.Lane.Width < 3 {
		errs = append(errs, fmt.Errorf("lane.width must be at least 3, got %d", c.Lane.Width))
	}
	if c.Lane.Height < 4 {
		errs = append(errs, fmt.Errorf("lane.height must be at least 4, got %d", c.Lane.Height))
	}
	if c.Tick.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("tick.interval_ms must be positive, got %d", c.Tick.IntervalMS))
	}
	if !validChance(c.Spawn.ObstacleChance) {
		errs = append(errs, fmt.Errorf("spawn.obstacle_chance must be in [0, 1], got %v", c.Spawn.ObstacleChance))
	}
	if !validChance(c.Spawn.PowerUpChance) {
		errs = append(errs, fmt.Errorf("spawn.powerup_chance must be in [0, 1], got %v", c.Spawn.PowerUpChance))
	}
	if c.Spawn.ObstacleSpeed < 0 {
		errs = append(errs, fmt.Errorf("spawn.obstacle_speed must not be negative, got %d", c.Spawn.ObstacleSpeed))
	}
	if c.PowerUps.BoostDuration < 0 {
		errs = append(errs, fmt.Errorf("powerups.boost_duration must not be negative, got %d", c.PowerUps.BoostDuration))
	}
	if c.PowerUps.BoostStep < 1 {
		errs = append(errs, fmt.Errorf("powerups.boost_step must be at least 1, got %d", c.PowerUps.BoostStep))
	}
	if c.PowerUps.ScoreBoostPoints < 0 {
		errs = append(errs, fmt.Errorf("powerups.score_boost_points must not be negative, got %d", c.PowerUps.ScoreBoostPoints))
	}
	if c.Palette.Every <= 0 {
		errs = append(errs, fmt.Errorf("palette.every must be positive, got %d", c.Palette.Every))
	}
	if c.Loading.Enabled && (c.Loading.StepTicks <= 0 || c.Loading.HoldTicks < 0) {
		errs = append(errs, fmt.Errorf("loading.step_ticks must be positive and loading.hold_ticks not negative"))
	}
	if c.Input.HoldMS < 0 {
		errs = append(errs, fmt.Errorf("input.hold_ms must not be negative, got %d", c.Input.HoldMS))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %v", c.Audio.Volume))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid values: %w", errors.Join(errs...))
	}
	return nil
}

func validChance(p float64) bool {
	return p >= 0 && p <= 1
}
