package config

import (
	_ "embed"
)

//go:embed defaults/treasure.yaml
var defaultTreasureYAML []byte

// DefaultTreasureConfig returns the default treasure game configuration.
func DefaultTreasureConfig() TreasureConfig {
	return TreasureConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 800,
		},
		Player: PlayerConfig{
			StartX:    375,
			StartY:    700,
			Width:     50,
			Height:    50,
			BaseSpeed: 10,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			BaseTimeLimit: 7200, // 2 minutes at 60fps
			MaxLevel:      10,
		},
		Enemies: EnemyConfig{
			InitialSpawnDelay: 180, // 3 seconds
			SpawnDelayStep:    10,
			MinSpawnDelay:     30,
			LevelDelayStep:    20,
			LevelDelayFloor:   60,
		},
		Treasure: TreasureRules{
			SpawnDelay: 600, // 10 seconds
			MaxItems:   15,
		},
		PowerUps: PowerUpConfig{
			MaxActive:       2,
			SpeedBoost:      5,
			SpeedDuration:   300, // 5 seconds
			ShieldDuration:  600, // 10 seconds
			BaseSpawnChance: 300,
			SpawnChanceStep: 50,
			MinSpawnChance:  100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTreasureYAML
}
