// Package window runs the treasure game in a desktop window using ebiten.
package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/treasure-hunt/internal/config"
	"github.com/vovakirdan/treasure-hunt/internal/core"
	"github.com/vovakirdan/treasure-hunt/internal/registry"
)

// Options configures a window session.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Reloads <-chan config.Reload // Optional; nil disables hot reload
	Width   int                  // Logical playfield width
	Height  int                  // Logical playfield height
}

// App adapts a registry.Game to ebiten.Game.
type App struct {
	game     registry.Game
	renderer *Renderer
	input    inputSource
	logger   *log.Logger
	reloads  <-chan config.Reload
	width    int
	height   int
	state    core.GameState
}

// NewApp creates the ebiten adapter and resets the game.
func NewApp(game registry.Game, opts Options) (*App, error) {
	r, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenW, cfg.ScreenH = opts.Width, opts.Height
	game.Reset(cfg)
	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed)

	return &App{
		game:     game,
		renderer: r,
		input:    ebitenInput{},
		logger:   logger,
		reloads:  opts.Reloads,
		width:    opts.Width,
		height:   opts.Height,
		state:    game.State(),
	}, nil
}

// Update advances the game one tick.
func (a *App) Update() error {
	a.pollReload()

	frame := readInput(a.input)
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	prev := a.state
	a.state = a.game.Step(frame).State
	if a.state.Level != prev.Level {
		a.logger.Debug("level changed", "from", prev.Level, "to", a.state.Level, "score", a.state.Score)
	}
	if a.state.GameOver && !prev.GameOver {
		a.logger.Debug("run ended", "cause", string(a.state.Cause), "score", a.state.Score)
	}
	if a.state.Quit {
		return ebiten.Termination
	}
	return nil
}

// pollReload applies at most one pending config change without blocking.
func (a *App) pollReload() {
	if a.reloads == nil {
		return
	}
	select {
	case r, ok := <-a.reloads:
		if !ok {
			a.reloads = nil
			return
		}
		if r.Err != nil {
			a.logger.Warn("config reload rejected", "path", r.Path, "err", r.Err)
			return
		}
		if t, ok := a.game.(registry.Tunable); ok {
			t.ApplyConfig(r.Config)
			a.logger.Info("config reloaded; applies on restart", "path", r.Path)
		}
	default:
	}
}

// Draw renders the game onto the screen image.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.SetTarget(screen)
	a.game.Render(a.renderer)
}

// Layout fixes the logical size; ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

// State returns the last state the game reported.
func (a *App) State() core.GameState {
	return a.state
}

// Run opens a window and blocks until the player quits.
func Run(game registry.Game, opts Options) error {
	app, err := NewApp(game, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	err = ebiten.RunGame(app)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if err == nil {
		app.logger.Info("game finished", "score", app.state.Score, "level", app.state.Level)
	}
	return err
}
