// Package tui runs the treasure game in a terminal with Bubble Tea.
// Logical draw calls are rasterized to cells and keys are mapped to actions.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treasure-hunt/internal/config"
	"github.com/vovakirdan/treasure-hunt/internal/core"
	"github.com/vovakirdan/treasure-hunt/internal/registry"
)

// footerRows is the space reserved below the playfield for key help.
const footerRows = 1

// opposite maps each direction to the one it cancels.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// Options configures a terminal session.
type Options struct {
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Reloads  <-chan config.Reload // Optional; nil disables hot reload
	LogicalW int
	LogicalH int
}

// TickMsg advances the simulation by one frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(1, tickRate)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// reloadMsg carries a config change from the watcher into the update loop.
type reloadMsg struct {
	reload config.Reload
	ok     bool
}

// Model is the Bubble Tea model for running the treasure game.
// Terminals report key presses but never releases, so each movement key
// is held for a short window that key repeat keeps extending.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	canvas     *Canvas
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	logger     *log.Logger
	reloads    <-chan config.Reload
	inputFrame core.InputFrame
	held       map[core.Action]int // Ticks left on each held direction
	holdTicks  int
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-footerRows))
	return Model{
		game:       game,
		screen:     screen,
		canvas:     NewCanvas(screen, opts.LogicalW, opts.LogicalH),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		logger:     logger,
		reloads:    opts.Reloads,
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]int),
		holdTicks:  max(1, cfg.TickRate/5),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.reloads != nil {
		cmds = append(cmds, waitForReload(m.reloads))
	}
	return tea.Batch(cmds...)
}

// waitForReload blocks on the watcher channel and forwards the next change.
func waitForReload(ch <-chan config.Reload) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		return reloadMsg{reload: r, ok: ok}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case reloadMsg:
		return m.handleReload(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case isMovement(action):
		m.held[action] = m.holdTicks
		delete(m.held, opposite[action])
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse maps cell coordinates to the logical pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := m.canvas.ToLogical(msg.X, msg.Y)
	m.inputFrame.Pointer.X = x
	m.inputFrame.Pointer.Y = y
	m.inputFrame.Pointer.Valid = true
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Pointer.Down = true
	}
	return m, nil
}

// handleResize processes window resize events.
// The playfield is logical, so the run continues at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-footerRows))
	m.help.Width = msg.Width
	return m, nil
}

// handleReload hands a changed config to the game.
func (m Model) handleReload(msg reloadMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		m.reloads = nil
		return m, nil
	}

	r := msg.reload
	switch {
	case r.Err != nil:
		m.logger.Warn("config reload rejected", "path", r.Path, "err", r.Err)
	default:
		if t, ok := m.game.(registry.Tunable); ok {
			t.ApplyConfig(r.Config)
			m.logger.Info("config reloaded; applies on restart", "path", r.Path)
		}
	}
	return m, waitForReload(m.reloads)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for a, left := range m.held {
		m.inputFrame.Set(a)
		if left <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = left - 1
		}
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransitions(prev, m.gameState)

	m.inputFrame.Clear()

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// logTransitions records level changes and run endings.
func (m Model) logTransitions(prev, cur core.GameState) {
	if cur.Level != prev.Level && prev.Level != 0 {
		m.logger.Debug("level changed", "from", prev.Level, "to", cur.Level, "score", cur.Score)
	}
	if cur.GameOver && !prev.GameOver {
		m.logger.Debug("run ended", "cause", string(cur.Cause), "score", cur.Score, "level", cur.Level)
	}
}

// State returns the last state the game reported.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok && err == nil {
		m.logger.Info("game finished", "score", m.gameState.Score, "level", m.gameState.Level)
	}
	return err
}
