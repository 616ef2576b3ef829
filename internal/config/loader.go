package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TreasureFile is the config file name looked up on the search path.
const TreasureFile = "treasure.yaml"

// LoadTreasure loads the treasure game configuration.
// Search order: customPath -> ~/.arcade/configs/treasure.yaml -> ./configs/treasure.yaml -> embedded default
func LoadTreasure(customPath string) (TreasureConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := ReadTreasure(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(TreasureFile); userCfgPath != "" {
		if cfg, err := ReadTreasure(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := ReadTreasure(filepath.Join("configs", TreasureFile)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := ParseTreasure(defaultTreasureYAML)
	if err != nil {
		return DefaultTreasureConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ReadTreasure reads and validates a single config file.
func ReadTreasure(path string) (TreasureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TreasureConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseTreasure(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseTreasure decodes YAML on top of the hardcoded defaults, so a file
// only needs to name the keys it changes.
func ParseTreasure(data []byte) (TreasureConfig, error) {
	cfg := DefaultTreasureConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// UserConfigDir returns ~/.arcade/configs, or empty if home is unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// ResolveTreasurePath returns the file LoadTreasure would read, or empty
// when it would fall back to the embedded defaults.
func ResolveTreasurePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	candidates := []string{userConfigPath(TreasureFile), filepath.Join("configs", TreasureFile)}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
