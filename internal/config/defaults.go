package config

import (
	_ "embed"
)

//go:embed defaults/sidestep.yaml
var defaultSidestepYAML []byte

// DefaultSidestepConfig returns the default Sidestep configuration.
func DefaultSidestepConfig() SidestepConfig {
	return SidestepConfig{
		Screen: ScreenConfig{
			Width:  400,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:         25,
			Speed:        0.7,
			BottomMargin: 20,
		},
		Obstacle: ObstacleConfig{
			Size:     50,
			SpeedMin: 0.6,
			SpeedMax: 1.5,
		},
		Rules: RulesConfig{
			StartingLives:       3,
			InvulnDuration:      3.0,
			FlickerInterval:     0.2,
			ResetLivesOnRestart: false,
		},
		Input: InputConfig{
			HoldWindowMS: 550,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSidestepYAML
}
