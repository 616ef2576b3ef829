package treasure

import (
	"fmt"

	"github.com/vovakirdan/treasure-hunt/internal/core"
)

// Text sizes in logical units.
const (
	TextNormal = 36
	TextLarge  = 48
	TextHuge   = 72
)

// Overlay alphas.
const (
	hudAlpha      = 180
	gameOverAlpha = 200
)

// lowTimeTicks is when the clock turns red (10 seconds).
const lowTimeTicks = 600

// FormatTime converts ticks at 60 per second to MM:SS.
func FormatTime(ticks int) string {
	seconds := max(0, ticks) / 60
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Render issues the draw calls for the current frame.
func (g *Game) Render(r core.Renderer) {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height

	r.Clear()
	r.DrawImage(core.Image{Name: ImageBackground, W: w, H: h}, 0, 0)
	r.DrawImage(g.box.Image, int(g.box.X), int(g.box.Y))

	for _, it := range g.items {
		if !it.Color.IsZero() {
			r.DrawRect(it.Rect(), it.Color, true)
			continue
		}
		r.DrawImage(it.Image, int(it.X), int(it.Y))
	}

	r.DrawImage(g.player.Image, int(g.player.X), int(g.player.Y))

	for _, p := range g.particles {
		size := int(p.Size)
		if size <= 0 {
			continue
		}
		alpha := uint8(p.Alpha() * 255) //#nosec G115 -- alpha is clamped to [0, 1]
		rect := core.NewRect(int(p.X)-size, int(p.Y)-size, size*2, size*2)
		r.DrawRect(rect, p.Color.WithAlpha(alpha), true)
	}

	for _, e := range g.enemies {
		r.DrawImage(e.Image, int(e.X), int(e.Y))
	}
	for _, p := range g.powerUps {
		r.DrawRect(p.Rect(), p.Color, true)
	}

	g.renderHUD(r)
	g.renderQuitButton(r)

	if g.banner > 0 && !g.gameOver {
		g.centered(r, fmt.Sprintf("LEVEL %d COMPLETE!", g.bannerLevel), h/2-50, core.ColorGreen, TextLarge)
		g.centered(r, "Get ready...", h/2, core.ColorWhite, TextNormal)
	}
	if g.paused && !g.gameOver {
		g.centered(r, "PAUSED", h/2, core.ColorYellow, TextLarge)
	}
	if g.gameOver {
		g.renderGameOver(r)
	}

	r.Present()
}

func (g *Game) renderHUD(r core.Renderer) {
	r.DrawRect(core.NewRect(5, 5, 280, 270), core.ColorBlack.WithAlpha(hudAlpha), true)

	r.DrawText(fmt.Sprintf("Level: %d", g.level), 10, 10, core.ColorYellow, TextNormal)
	r.DrawText(fmt.Sprintf("Score: %d", g.score), 10, 50, core.ColorWhite, TextNormal)
	r.DrawText(fmt.Sprintf("Lives: %d", g.lives), 10, 90, core.ColorWhite, TextNormal)

	timeColor := core.ColorWhite
	if g.timeRemaining <= lowTimeTicks {
		timeColor = core.ColorRed
	}
	r.DrawText("Time: "+FormatTime(g.timeRemaining), 10, 130, timeColor, TextNormal)
	r.DrawText(fmt.Sprintf("Enemies: %d", len(g.enemies)), 10, 170, core.ColorWhite, TextNormal)

	if g.box.Opened {
		r.DrawText(fmt.Sprintf("Items: %d/%d", g.itemsCollected, g.totalItems), 10, 210, core.ColorWhite, TextNormal)
		if g.itemsCollected == g.totalItems {
			r.DrawText("Return to treasure!", 10, 250, core.ColorYellow, TextNormal)
		}
	} else {
		r.DrawText("Touch treasure to open!", 10, 210, core.ColorYellow, TextNormal)
	}

	if g.powerActive {
		r.DrawText("POWER-UP ACTIVE!", 10, 290, core.ColorYellow, TextNormal)
	}
}

func (g *Game) renderQuitButton(r core.Renderer) {
	btn := g.quitButton()
	fill := core.ColorQuit
	if g.quitHover {
		fill = core.ColorQuitHigh
	}
	r.DrawRect(btn, fill, true)
	r.DrawRect(btn, core.ColorWhite, false)

	label := "QUIT"
	cx, cy := btn.Center()
	r.DrawText(label, cx-textWidth(label, TextNormal)/2, cy-TextNormal/4, core.ColorWhite, TextNormal)
}

func (g *Game) renderGameOver(r core.Renderer) {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	r.DrawRect(core.NewRect(0, 0, w, h), core.ColorBlack.WithAlpha(gameOverAlpha), true)

	title, color := "GAME OVER", core.ColorRed
	switch g.cause {
	case core.CauseTimeExpired:
		title, color = "TIME'S UP!", core.ColorOrange
	case core.CauseWon:
		title, color = "YOU WIN!", core.ColorGreen
	}
	g.centered(r, title, h/2, color, TextHuge)
	g.centered(r, fmt.Sprintf("Final Score: %d", g.score), h/2+30, core.ColorWhite, TextNormal)
	g.centered(r, "Press R to restart", h/2+60, core.ColorWhite, TextNormal)
}

// centered draws text horizontally centered on the playfield.
func (g *Game) centered(r core.Renderer, text string, y int, c core.Color, size int) {
	r.DrawText(text, g.cfg.Screen.Width/2-textWidth(text, size)/2, y, c, size)
}

// textWidth estimates rendered width assuming glyphs are half as wide as tall.
func textWidth(text string, size int) int {
	return len([]rune(text)) * size / 2
}
