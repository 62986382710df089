// Package config provides YAML-based game configuration loading, difficulty
// presets and validation for Sidestep.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SidestepConfig contains all configuration for the Sidestep game.
type SidestepConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Player   PlayerConfig   `yaml:"player"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Rules    RulesConfig    `yaml:"rules"`
	Input    InputConfig    `yaml:"input"`
}

// ScreenConfig defines the world size in world units.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player shape and its horizontal speed.
type PlayerConfig struct {
	Size         int     `yaml:"size"`
	Speed        float64 `yaml:"speed"`         // Units per tick
	BottomMargin int     `yaml:"bottom_margin"` // Gap between player and bottom edge
}

// ObstacleConfig defines the falling obstacle.
type ObstacleConfig struct {
	Size     int     `yaml:"size"`
	SpeedMin float64 `yaml:"speed_min"` // Units per tick
	SpeedMax float64 `yaml:"speed_max"`
}

// RulesConfig defines lives and invulnerability timing.
type RulesConfig struct {
	StartingLives       int     `yaml:"starting_lives"`
	InvulnDuration      float64 `yaml:"invuln_duration"`  // Seconds
	FlickerInterval     float64 `yaml:"flicker_interval"` // Seconds
	ResetLivesOnRestart bool    `yaml:"reset_lives_on_restart"`
}

// InputConfig tunes how frontends without key-release events emulate held keys.
type InputConfig struct {
	HoldWindowMS int `yaml:"hold_window_ms"`
}

// HoldWindow returns the held-key window as a duration.
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldWindowMS) * time.Millisecond
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the invariants the game session relies on.
func (c SidestepConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return invalid("screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	case c.Player.Size <= 0:
		return invalid("player.size must be positive, got %d", c.Player.Size)
	case c.Obstacle.Size <= 0:
		return invalid("obstacle.size must be positive, got %d", c.Obstacle.Size)
	case c.Player.Size > c.Screen.Width:
		return invalid("player.size %d exceeds screen width %d", c.Player.Size, c.Screen.Width)
	case c.Obstacle.Size > c.Screen.Width:
		return invalid("obstacle.size %d exceeds screen width %d", c.Obstacle.Size, c.Screen.Width)
	case c.Player.BottomMargin < 0 || c.Player.Size+c.Player.BottomMargin > c.Screen.Height:
		return invalid("player does not fit vertically (size %d, bottom_margin %d, height %d)",
			c.Player.Size, c.Player.BottomMargin, c.Screen.Height)
	case c.Player.Speed < 0:
		return invalid("player.speed must not be negative, got %g", c.Player.Speed)
	case c.Obstacle.SpeedMin <= 0:
		return invalid("obstacle.speed_min must be positive, got %g", c.Obstacle.SpeedMin)
	case c.Obstacle.SpeedMax < c.Obstacle.SpeedMin:
		return invalid("obstacle.speed_max %g is below speed_min %g", c.Obstacle.SpeedMax, c.Obstacle.SpeedMin)
	case c.Rules.StartingLives <= 0:
		return invalid("rules.starting_lives must be positive, got %d", c.Rules.StartingLives)
	case c.Rules.InvulnDuration <= 0:
		return invalid("rules.invuln_duration must be positive, got %g", c.Rules.InvulnDuration)
	case c.Rules.FlickerInterval <= 0:
		return invalid("rules.flicker_interval must be positive, got %g", c.Rules.FlickerInterval)
	case c.Input.HoldWindowMS < 0:
		return invalid("input.hold_window_ms must not be negative, got %d", c.Input.HoldWindowMS)
	}
	return nil
}
