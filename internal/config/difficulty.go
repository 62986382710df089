package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only change static parameters; speeds are still resampled
// uniformly from the configured range on every respawn.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SidestepConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacle.SpeedMin *= 0.75
		cfg.Obstacle.SpeedMax *= 0.75
		cfg.Rules.StartingLives = 5
	case DifficultyHard:
		cfg.Obstacle.SpeedMin *= 1.5
		cfg.Obstacle.SpeedMax *= 1.5
		cfg.Player.Speed *= 1.25
		cfg.Rules.StartingLives = 2
	}
}
