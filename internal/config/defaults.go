package config

import (
	_ "embed"
)

//go:embed defaults/roadrush.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors the embedded
// YAML and is the fallback when that fails to parse.
func Default() Config {
	return Config{
		Lane: LaneConfig{
			Width:         30,
			Height:        20,
			CullOffscreen: true,
		},
		Tick: TickConfig{
			IntervalMS: 50,
		},
		Spawn: SpawnConfig{
			ObstacleChance: 0.10,
			PowerUpChance:  0.20,
			ObstacleSpeed:  1,
		},
		PowerUps: PowerUpConfig{
			BoostDuration:    10,
			BoostStep:        2,
			ScoreBoostPoints: 0,
		},
		Palette: PaletteConfig{
			Every: 64,
		},
		Loading: LoadingConfig{
			Enabled:   true,
			StepTicks: 10,
			HoldTicks: 20,
		},
		Input: InputConfig{
			HoldMS: 60,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.25,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
