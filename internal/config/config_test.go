package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := ParseTreasure(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseTreasure(embedded) error: %v", err)
	}
	if cfg != DefaultTreasureConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultTreasureConfig())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := ParseTreasure([]byte("gameplay:\n  lives: 7\n"))
	if err != nil {
		t.Fatalf("ParseTreasure error: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.BaseTimeLimit != 7200 {
		t.Errorf("BaseTimeLimit = %d, expected default 7200", cfg.Gameplay.BaseTimeLimit)
	}
	if cfg.Player.StartX != 375 {
		t.Errorf("Player.StartX = %d, expected default 375", cfg.Player.StartX)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TreasureConfig)
		ok     bool
	}{
		{"defaults", func(*TreasureConfig) {}, true},
		{"campaign off", func(c *TreasureConfig) { c.Gameplay.MaxLevel = 0 }, true},
		{"zero lives", func(c *TreasureConfig) { c.Gameplay.Lives = 0 }, false},
		{"zero width", func(c *TreasureConfig) { c.Screen.Width = 0 }, false},
		{"player too big", func(c *TreasureConfig) { c.Player.Width = 900 }, false},
		{"zero speed", func(c *TreasureConfig) { c.Player.BaseSpeed = 0 }, false},
		{"no time", func(c *TreasureConfig) { c.Gameplay.BaseTimeLimit = 0 }, false},
		{"negative max level", func(c *TreasureConfig) { c.Gameplay.MaxLevel = -1 }, false},
		{"zero treasure delay", func(c *TreasureConfig) { c.Treasure.SpawnDelay = 0 }, false},
		{"zero spawn chance", func(c *TreasureConfig) { c.PowerUps.MinSpawnChance = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTreasureConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadTreasureCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  base_speed: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTreasure(path)
	if err != nil {
		t.Fatalf("LoadTreasure error: %v", err)
	}
	if cfg.Player.BaseSpeed != 12 {
		t.Errorf("BaseSpeed = %d, expected 12", cfg.Player.BaseSpeed)
	}
}

func TestLoadTreasureCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTreasure(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, expected os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTreasure(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTreasure(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid config error = %v, expected ErrInvalidConfig", err)
	}
}

func TestApplyTreasurePreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantLives int
		wantTime  int
	}{
		{DifficultyEasy, 5, 9000},
		{DifficultyNormal, 3, 7200},
		{DifficultyHard, 2, 6000},
		{"", 3, 7200},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTreasureConfig()
			ApplyTreasurePreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.wantLives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.wantLives)
			}
			if cfg.Gameplay.BaseTimeLimit != tc.wantTime {
				t.Errorf("BaseTimeLimit = %d, expected %d", cfg.Gameplay.BaseTimeLimit, tc.wantTime)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if got := ParsePreset("hard"); got != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q", got)
	}
	if got := ParsePreset("insane"); got != "" {
		t.Errorf("ParsePreset(insane) = %q, expected empty", got)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, TreasureFile)
	if err := os.WriteFile(path, []byte("gameplay:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, DifficultyNormal)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("gameplay:\n  lives: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-w.Reloads:
			if r.Err != nil {
				continue // partial write observed mid-save
			}
			if r.Config.Gameplay.Lives == 6 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), TreasureFile)
	w, err := NewWatcher(path, "")
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close error: %v", err)
	}
	if _, ok := <-w.Reloads; ok {
		t.Error("Reloads should be closed after Close")
	}
}
