// Package config provides YAML-based game configuration loading and
// difficulty presets for the treasure game.
package config

import (
	"errors"
	"fmt"
)

// TreasureConfig contains all tunable parameters for the treasure game.
type TreasureConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Player   PlayerConfig   `yaml:"player"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Enemies  EnemyConfig    `yaml:"enemies"`
	Treasure TreasureRules  `yaml:"treasure"`
	PowerUps PowerUpConfig  `yaml:"powerups"`
}

// ScreenConfig defines the logical playfield size.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the avatar spawn point and movement.
type PlayerConfig struct {
	StartX    int `yaml:"start_x"`
	StartY    int `yaml:"start_y"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	BaseSpeed int `yaml:"base_speed"`
}

// GameplayConfig defines lives, time and level progression.
type GameplayConfig struct {
	Lives         int `yaml:"lives"`
	BaseTimeLimit int `yaml:"base_time_limit"` // Ticks; level 1 gets the full amount
	MaxLevel      int `yaml:"max_level"`       // Campaign length; 0 means endless
}

// EnemyConfig defines the mid-level enemy spawn timer.
type EnemyConfig struct {
	InitialSpawnDelay int `yaml:"initial_spawn_delay"` // Ticks before the first spawn
	SpawnDelayStep    int `yaml:"spawn_delay_step"`    // Delay reduction per spawn
	MinSpawnDelay     int `yaml:"min_spawn_delay"`     // Floor for the base delay
	LevelDelayStep    int `yaml:"level_delay_step"`    // Extra reduction per level above 1
	LevelDelayFloor   int `yaml:"level_delay_floor"`   // Floor for the level-adjusted delay
}

// TreasureRules defines periodic treasure spawning after the box opens.
type TreasureRules struct {
	SpawnDelay int `yaml:"spawn_delay"` // Ticks between spawns
	MaxItems   int `yaml:"max_items"`   // Cap on items on screen
}

// PowerUpConfig defines power-up spawning and effects.
type PowerUpConfig struct {
	MaxActive       int `yaml:"max_active"`        // Cap on power-ups on screen
	SpeedBoost      int `yaml:"speed_boost"`       // Added to player speed
	SpeedDuration   int `yaml:"speed_duration"`    // Ticks
	ShieldDuration  int `yaml:"shield_duration"`   // Ticks
	BaseSpawnChance int `yaml:"base_spawn_chance"` // 1-in-N per tick at level 1
	SpawnChanceStep int `yaml:"spawn_chance_step"` // N reduction per level
	MinSpawnChance  int `yaml:"min_spawn_chance"`  // Floor for N
}

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a game.
func (c TreasureConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size %dx%d", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	case c.Player.Width > c.Screen.Width || c.Player.Height > c.Screen.Height:
		return fmt.Errorf("%w: player larger than screen", ErrInvalidConfig)
	case c.Player.BaseSpeed <= 0:
		return fmt.Errorf("%w: player base_speed must be positive", ErrInvalidConfig)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive", ErrInvalidConfig)
	case c.Gameplay.BaseTimeLimit <= 0:
		return fmt.Errorf("%w: base_time_limit must be positive", ErrInvalidConfig)
	case c.Gameplay.MaxLevel < 0:
		return fmt.Errorf("%w: max_level must not be negative", ErrInvalidConfig)
	case c.Enemies.InitialSpawnDelay <= 0 || c.Enemies.MinSpawnDelay <= 0 || c.Enemies.LevelDelayFloor <= 0:
		return fmt.Errorf("%w: enemy spawn delays must be positive", ErrInvalidConfig)
	case c.Treasure.SpawnDelay <= 0:
		return fmt.Errorf("%w: treasure spawn_delay must be positive", ErrInvalidConfig)
	case c.PowerUps.MinSpawnChance <= 0 || c.PowerUps.BaseSpawnChance <= 0:
		return fmt.Errorf("%w: power-up spawn chances must be positive", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
