// Package treasure implements the treasure hunt arcade game: open the chest,
// gather the scattered treasure, and bring it back before time runs out.
package treasure

import (
	"github.com/vovakirdan/treasure-hunt/internal/config"
	"github.com/vovakirdan/treasure-hunt/internal/core"
	"github.com/vovakirdan/treasure-hunt/internal/registry"
)

// GameMode selects how level progression ends.
type GameMode int

const (
	ModeEndless  GameMode = iota // Levels loop forever
	ModeCampaign                 // Clearing max_level wins the run
)

// Scoring, all multiplied by the current level.
const (
	scoreBoxOpen       = 100
	scoreLevelComplete = 1000
	scoreItem          = 50
	scoreEnemy         = 50
	scorePoints        = 200
)

// bannerTicks is how long the level complete banner stays up.
const bannerTicks = 120

// Game implements the treasure hunt logic.
type Game struct {
	mode GameMode

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.TreasureConfig
	pending *config.TreasureConfig // Applied at the next restart
	newRand func(seed int64) Rand
	rng     Rand
	audio   core.AudioPort

	// World
	player    Player
	box       TreasureBox
	enemies   []*Enemy
	items     []*TreasureItem
	powerUps  []*PowerUp
	particles []*Particle
	spawner   *SpawnController

	// Progress
	level          int
	levelCfg       LevelConfig
	score          int
	lives          int
	timeRemaining  int
	itemsCollected int
	totalItems     int
	tickCount      int

	// Power-up effect
	powerActive bool
	powerTimer  int
	powerKind   PowerKind
	powerColor  core.Color

	// Status
	gameOver    bool
	cause       core.EndCause
	paused      bool
	quit        bool
	quitHover   bool
	banner      int // Ticks left on the level complete banner
	bannerLevel int
}

// quitButton is the clickable QUIT area in the top-right corner.
func (g *Game) quitButton() core.Rect {
	return core.NewRect(g.cfg.Screen.Width-120, 10, 100, 40)
}

func init() {
	registry.Register("treasure", func(cfg config.TreasureConfig) registry.Game {
		return New(cfg)
	})
	registry.Register("treasure_campaign", func(cfg config.TreasureConfig) registry.Game {
		return NewCampaign(cfg)
	})
}

// New creates a treasure game in endless mode.
func New(cfg config.TreasureConfig) *Game {
	return &Game{mode: ModeEndless, cfg: cfg, newRand: newRand, audio: core.NopAudio{}}
}

// NewCampaign creates a treasure game that is won by clearing max_level.
func NewCampaign(cfg config.TreasureConfig) *Game {
	g := New(cfg)
	g.mode = ModeCampaign
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeCampaign {
		return "treasure_campaign"
	}
	return "treasure"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeCampaign {
		return "Treasure Hunt (Campaign)"
	}
	return "Treasure Hunt"
}

// SetAudio replaces the audio port. A nil port silences the game.
func (g *Game) SetAudio(a core.AudioPort) {
	if a == nil {
		a = core.NopAudio{}
	}
	g.audio = a
}

// ApplyConfig stores new tuning to use from the next restart on.
func (g *Game) ApplyConfig(cfg config.TreasureConfig) {
	g.pending = &cfg
}

// Config returns the tuning the current run uses.
func (g *Game) Config() config.TreasureConfig {
	return g.cfg
}

// Reset seeds the RNG and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = g.newRand(runtime.Seed)
	g.Restart()
}

// Restart returns to level 1 with full lives, keeping the RNG stream.
func (g *Game) Restart() {
	if g.rng == nil {
		g.rng = g.newRand(g.runtime.Seed)
	}
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}

	g.spawner = NewSpawnController(g.cfg)
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.tickCount = 0
	g.gameOver = false
	g.cause = core.CauseNone
	g.paused = false
	g.quit = false
	g.banner = 0
	g.clearPower()
	g.particles = nil

	g.player = Player{
		Entity: newEntity(float64(g.cfg.Player.StartX), float64(g.cfg.Player.StartY),
			g.cfg.Player.Width, g.cfg.Player.Height, ImagePlayer),
		Speed: g.cfg.Player.BaseSpeed,
	}
	g.box = TreasureBox{Entity: newEntity(BoxX, BoxY, BoxSize, BoxSize, ImageChest)}

	g.setupLevel()
	g.audio.PlayCue(core.CueBackground)
}

// setupLevel derives the level config and repopulates the playfield.
func (g *Game) setupLevel() {
	g.enemies = g.enemies[:0]
	g.items = g.items[:0]
	g.powerUps = g.powerUps[:0]
	g.box.Opened = false
	g.itemsCollected = 0
	g.spawner.Reset()

	g.levelCfg = ConfigForLevel(g.level, g.cfg.Gameplay.BaseTimeLimit)
	g.totalItems = g.levelCfg.TotalItems
	g.timeRemaining = g.levelCfg.TimeLimit

	g.enemies = append(g.enemies, g.spawner.InitialEnemies(g.rng, g.levelCfg)...)
	if p := g.spawner.SpawnPowerUp(g.rng, len(g.powerUps)); p != nil {
		g.powerUps = append(g.powerUps, p)
	}
}

// Advance moves to the next level unconditionally.
func (g *Game) Advance() {
	g.level++
	g.setupLevel()
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.Tick(in)
	return core.StepResult{State: g.State()}
}

// Tick applies one frame of input and advances the simulation.
func (g *Game) Tick(in core.InputFrame) {
	g.handlePointer(in.Pointer)
	if g.quit {
		return
	}

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.audio.PlayCue(core.CueClick)
			g.Restart()
		}
		return
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.tickCount++
	if g.banner > 0 {
		g.banner--
	}

	// 1. Input
	dx, dy := in.Axis()
	g.player.Move(dx, dy, g.cfg.Screen.Width, g.cfg.Screen.Height)

	// 2. Movement
	for _, e := range g.enemies {
		e.Move(g.cfg.Screen.Width)
	}
	for _, it := range g.items {
		it.Move(g.cfg.Screen.Width)
	}

	// 3. Spawning
	g.runSpawners()

	// 4. Power-up timer
	g.updatePower()

	// 5. Time limit
	g.timeRemaining--
	if g.timeRemaining <= 0 {
		g.timeRemaining = 0
		g.endRun(core.CauseTimeExpired)
		return
	}

	// 6. Particles
	g.particles = updateParticles(g.particles)
	if g.powerActive {
		g.emitParticles()
	}

	// 7. Collisions
	if g.checkEnemies() {
		return
	}
	if g.checkBox() {
		return
	}
	g.checkItems()
	g.checkPowerUps()
}

func (g *Game) handlePointer(p core.Pointer) {
	if !p.Valid {
		g.quitHover = false
		return
	}
	g.quitHover = g.quitButton().Contains(p.X, p.Y)
	if p.Down && g.quitHover {
		g.audio.PlayCue(core.CueClick)
		g.quit = true
	}
}

func (g *Game) runSpawners() {
	if e := g.spawner.TickEnemy(g.rng, g.level, len(g.enemies), g.levelCfg); e != nil {
		g.enemies = append(g.enemies, e)
	}
	if it := g.spawner.TickTreasure(g.rng, g.box.Opened, len(g.items)); it != nil {
		g.items = append(g.items, it)
		g.totalItems++
	}
	if p := g.spawner.RollPowerUp(g.rng, g.level, len(g.powerUps)); p != nil {
		g.powerUps = append(g.powerUps, p)
	}
}

func (g *Game) updatePower() {
	if !g.powerActive {
		return
	}
	g.powerTimer--
	if g.powerTimer <= 0 {
		g.clearPower()
		if g.player.Speed > g.cfg.Player.BaseSpeed {
			g.player.Speed = g.cfg.Player.BaseSpeed
		}
	}
}

func (g *Game) clearPower() {
	g.powerActive = false
	g.powerTimer = 0
	g.powerKind = PowerNone
	g.powerColor = core.Color{}
}

func (g *Game) emitParticles() {
	c := g.powerColor
	if c.IsZero() {
		c = core.ColorWhite
	}
	for i := 0; i < particlesPerTick; i++ {
		x := g.player.X + float64(randRange(g.rng, 0, g.player.W))
		y := g.player.Y + float64(randRange(g.rng, 0, g.player.H))
		g.particles = append(g.particles, newParticle(g.rng, x, y, c))
	}
}

// checkEnemies resolves contact with the first overlapping enemy.
// Returns true when the run ended.
func (g *Game) checkEnemies() bool {
	for i, e := range g.enemies {
		if !core.Overlaps(g.player.Box, e.Box) {
			continue
		}
		if g.powerActive {
			g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
			g.score += scoreEnemy * g.level
			return false
		}

		g.lives--
		g.audio.PlayCue(core.CueWrong)
		if g.lives <= 0 {
			g.lives = 0
			g.endRun(core.CauseNoLives)
			return true
		}
		g.player.X = float64(g.cfg.Player.StartX)
		g.player.Y = float64(g.cfg.Player.StartY)
		return false
	}
	return false
}

// checkBox opens the chest or completes the level.
// Returns true when the level changed or the run ended.
func (g *Game) checkBox() bool {
	if !core.Overlaps(g.player.Box, g.box.Box) {
		return false
	}
	if !g.box.Opened {
		g.box.Opened = true
		g.items = append(g.items, g.spawner.Scatter(g.rng, g.totalItems)...)
		g.score += scoreBoxOpen * g.level
		g.audio.PlayCue(core.CuePop)
		return false
	}
	if g.itemsCollected != g.totalItems {
		return false
	}

	g.score += scoreLevelComplete * g.level
	g.audio.PlayCue(core.CueLevelUp)
	g.bannerLevel = g.level
	g.banner = bannerTicks

	if g.mode == ModeCampaign && g.cfg.Gameplay.MaxLevel > 0 && g.level >= g.cfg.Gameplay.MaxLevel {
		g.endRun(core.CauseWon)
		return true
	}
	g.Advance()
	return true
}

func (g *Game) checkItems() {
	kept := g.items[:0]
	for _, it := range g.items {
		if it.Collected || !core.Overlaps(g.player.Box, it.Box) {
			kept = append(kept, it)
			continue
		}
		it.Collected = true
		it.Color = g.powerColor
		if it.Color.IsZero() {
			it.Color = core.ColorWhite
		}
		g.itemsCollected++
		g.score += scoreItem * g.level
		g.audio.PlayCue(core.CuePop)
	}
	clear(g.items[len(kept):])
	g.items = kept
}

func (g *Game) checkPowerUps() {
	kept := g.powerUps[:0]
	for _, p := range g.powerUps {
		if !core.Overlaps(g.player.Box, p.Box) {
			kept = append(kept, p)
			continue
		}
		g.powerKind = p.Kind
		g.powerColor = p.Color
		switch p.Kind {
		case PowerSpeed:
			g.player.Speed += g.cfg.PowerUps.SpeedBoost
			g.powerActive = true
			g.powerTimer = g.cfg.PowerUps.SpeedDuration
		case PowerShield:
			g.powerActive = true
			g.powerTimer = g.cfg.PowerUps.ShieldDuration
		case PowerPoints:
			g.score += scorePoints * g.level
		}
		g.audio.PlayCue(core.CueCorrect)
	}
	clear(g.powerUps[len(kept):])
	g.powerUps = kept
}

func (g *Game) endRun(cause core.EndCause) {
	g.gameOver = true
	g.cause = cause
	g.audio.StopCue(core.CueBackground)
	g.audio.PlayCue(core.CueGameOver)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		GameOver: g.gameOver,
		Cause:    g.cause,
		Paused:   g.paused,
		Quit:     g.quit,
	}
}

// TimeRemaining returns the ticks left on the level clock.
func (g *Game) TimeRemaining() int {
	return g.timeRemaining
}

// Items returns collected and required item counts for the level.
func (g *Game) Items() (collected, total int) {
	return g.itemsCollected, g.totalItems
}

// LevelConfig returns the difficulty of the current level.
func (g *Game) LevelConfig() LevelConfig {
	return g.levelCfg
}

// PowerActive reports whether a timed power-up is running.
func (g *Game) PowerActive() bool {
	return g.powerActive
}
