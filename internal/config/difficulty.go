package config

// ApplyTreasurePreset modifies the config based on a difficulty preset.
// Normal and unknown presets leave the config untouched.
func ApplyTreasurePreset(cfg *TreasureConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.BaseTimeLimit = 9000 // 2.5 minutes
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.BaseTimeLimit = 6000
	}
}

