// treasure is an arcade treasure hunt that runs in the terminal or a window.
//
// Usage:
//
//	treasure play            - Play in the terminal
//	treasure play --window   - Play in a desktop window
//	treasure list            - List available modes
//	treasure levels          - Print the difficulty curve
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/treasure-hunt/internal/games/treasure"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "treasure",
	Short: "Treasure Hunt - dodge enemies, open the chest, collect the loot",
	Long: `Treasure Hunt is an arcade game: touch the chest to scatter its
treasure, collect every item while dodging enemies, then return to the
chest to clear the level before time runs out.

Available commands:
  play     - Play a game in the terminal or a window
  list     - Show all available modes
  levels   - Print the per-level difficulty curve

Examples:
  treasure play
  treasure play --window
  treasure play --mode treasure_campaign --difficulty hard
  treasure levels --max 12`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
}
