package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-hunt/internal/config"
	"github.com/vovakirdan/treasure-hunt/internal/games/treasure"
)

var flagLevelsMax int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the difficulty curve",
	Long: `Prints enemies, speed multiplier, time limit and item count for each
level, using the loaded config's base time limit and difficulty preset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadTreasure(flagConfig)
		if err != nil {
			return err
		}
		preset := config.ParsePreset(flagDifficulty)
		if flagDifficulty != "" && preset == "" {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyTreasurePreset(&cfg, preset)
		printLevels(cmd.OutOrStdout(), cfg.Gameplay.BaseTimeLimit, flagFPS, flagLevelsMax)
		return nil
	},
}

func init() {
	levelsCmd.Flags().IntVar(&flagLevelsMax, "max", 10, "Number of levels to print")
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	levelsCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func printLevels(w io.Writer, baseTime, fps, maxLevel int) {
	if fps <= 0 {
		fps = 60
	}
	fmt.Fprintf(w, "  %-5s  %-7s  %-5s  %-6s  %s\n", "Level", "Enemies", "Speed", "Time", "Items")
	for n := 1; n <= maxLevel; n++ {
		lc := treasure.ConfigForLevel(n, baseTime)
		secs := lc.TimeLimit / fps
		fmt.Fprintf(w, "  %-5d  %-7d  %-5.1f  %2d:%02d   %d\n",
			n, lc.MaxEnemies, lc.SpeedMultiplier, secs/60, secs%60, lc.TotalItems)
	}
}
