package window

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/treasure-hunt/internal/config"
	"github.com/vovakirdan/treasure-hunt/internal/core"
	"github.com/vovakirdan/treasure-hunt/internal/games/treasure"
)

func newTestApp(t *testing.T, reloads <-chan config.Reload) (*App, *treasure.Game) {
	t.Helper()
	cfg := config.DefaultTreasureConfig()
	game := treasure.New(cfg)
	app, err := NewApp(game, Options{
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 1},
		Reloads: reloads,
		Width:   cfg.Screen.Width,
		Height:  cfg.Screen.Height,
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app, game
}

func TestAppUpdateMovesPlayer(t *testing.T) {
	app, game := newTestApp(t, nil)
	app.input = fakeInput{pressed: map[ebiten.Key]bool{ebiten.KeyArrowRight: true}}
	startX := game.Snapshot().PlayerX

	if err := app.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := game.Snapshot().PlayerX; got != startX+10 {
		t.Errorf("expected player at %d, got %d", startX+10, got)
	}
}

func TestAppQuitKeyTerminates(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.input = fakeInput{just: map[ebiten.Key]bool{ebiten.KeyQ: true}}

	if err := app.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("expected ebiten.Termination, got %v", err)
	}
}

func TestAppQuitButtonTerminates(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.input = fakeInput{x: 730, y: 30, clicked: true}

	if err := app.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("expected ebiten.Termination, got %v", err)
	}
	if !app.State().Quit {
		t.Error("state should report Quit")
	}
}

func TestAppPollsReloads(t *testing.T) {
	ch := make(chan config.Reload, 2)
	app, game := newTestApp(t, ch)
	app.input = fakeInput{}

	cfg := config.DefaultTreasureConfig()
	cfg.Gameplay.Lives = 6
	ch <- config.Reload{Config: cfg}
	if err := app.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	game.Restart()
	if got := game.State().Lives; got != 6 {
		t.Errorf("expected 6 lives after restart, got %d", got)
	}

	close(ch)
	if err := app.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if app.reloads != nil {
		t.Error("closed channel should stop polling")
	}
}

func TestAppLayoutIsLogical(t *testing.T) {
	app, _ := newTestApp(t, nil)
	w, h := app.Layout(1920, 1080)
	if w != 800 || h != 800 {
		t.Errorf("Layout = %dx%d, expected 800x800", w, h)
	}
}
