package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/treasure-hunt/internal/audio"
	"github.com/vovakirdan/treasure-hunt/internal/config"
	"github.com/vovakirdan/treasure-hunt/internal/core"
	"github.com/vovakirdan/treasure-hunt/internal/platform/tui"
	"github.com/vovakirdan/treasure-hunt/internal/platform/window"
	"github.com/vovakirdan/treasure-hunt/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagWindow     bool
	flagMute       bool
	flagWatch      bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Treasure Hunt",
	Long: `Start a run in the terminal, or in a desktop window with --window.

Controls:
  Arrows/WASD  - Move
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit
  Mouse        - Click QUIT in the top-right corner to leave

Difficulty options:
  easy   - 5 lives, longer time limits
  normal - Config as loaded
  hard   - 2 lives, shorter time limits

Examples:
  treasure play
  treasure play --window --mute
  treasure play --mode treasure_campaign
  treasure play --config ./my-treasure.yaml --watch-config
  treasure play --log-level debug --log-file treasure.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagMode, "mode", "treasure", "Game mode: treasure (endless) or treasure_campaign")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagWatch, "watch-config", false, "Reload the config file when it changes")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal mode logs nowhere by default)")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagMode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagMode)
		fmt.Fprintln(os.Stderr, "Run 'treasure list' to see available modes.")
		os.Exit(1)
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		fail("unknown difficulty %q", flagDifficulty)
	}

	cfg, err := config.LoadTreasure(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	config.ApplyTreasurePreset(&cfg, preset)

	// The terminal UI owns stderr, so it logs to a file when asked.
	var logOut io.Writer = os.Stderr
	closeLog := func() {}
	if !flagWindow {
		logOut, closeLog, err = openLogFile(flagLogFile)
		if err != nil {
			fail("%v", err)
		}
	}
	defer closeLog()

	logger, err := newLogger(logOut, flagLogLevel)
	if err != nil {
		fail("%v", err)
	}

	game, err := registry.Create(flagMode, cfg)
	if err != nil {
		fail("creating game: %v", err)
	}

	port, closeAudio := audio.Open(logger, flagMute)
	defer closeAudio()
	if a, ok := game.(registry.AudioAware); ok {
		a.SetAudio(port)
	}

	var reloads <-chan config.Reload
	if flagWatch {
		if w := startWatcher(logger, preset); w != nil {
			defer w.Close()
			reloads = w.Reloads
		}
	}

	runtime := core.RuntimeConfig{
		ScreenW:  cfg.Screen.Width,
		ScreenH:  cfg.Screen.Height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if flagWindow {
		err = window.Run(game, window.Options{
			Runtime: runtime,
			Logger:  logger,
			Reloads: reloads,
			Width:   cfg.Screen.Width,
			Height:  cfg.Screen.Height,
		})
	} else {
		runtime.ScreenW, runtime.ScreenH = 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			runtime.ScreenW, runtime.ScreenH = w, h
		}
		err = tui.Run(game, tui.Options{
			Runtime:  runtime,
			Logger:   logger,
			Reloads:  reloads,
			LogicalW: cfg.Screen.Width,
			LogicalH: cfg.Screen.Height,
		})
	}

	if err != nil {
		logger.Error("game exited with error", "err", err)
		closeAudio()
		closeLog()
		fail("running game: %v", err)
	}
}

// startWatcher watches the file the config was loaded from. It returns nil
// when the embedded defaults are in use or the watch cannot be set up.
func startWatcher(logger *log.Logger, preset config.DifficultyPreset) *config.Watcher {
	path := config.ResolveTreasurePath(flagConfig)
	if path == "" {
		logger.Warn("no config file to watch; using embedded defaults")
		return nil
	}

	w, err := config.NewWatcher(path, preset)
	if err != nil {
		logger.Warn("config watch unavailable", "path", path, "err", err)
		return nil
	}
	go func() {
		for err := range w.Errors {
			logger.Warn("config watch error", "path", w.Path(), "err", err)
		}
	}()
	logger.Info("watching config", "path", w.Path())
	return w
}
