package treasure

import (
	"github.com/vovakirdan/treasure-hunt/internal/config"
	"github.com/vovakirdan/treasure-hunt/internal/core"
)

// Speed tables for spawned entities.
var (
	initialEnemySpeeds = []int{-3, -2, 2, 3, 4}
	edgeEnemySpeeds    = []int{-4, -3, -2, 2, 3, 4}
	itemSpeeds         = []int{-4, -3, -2, 2, 3, 4}
)

// enemyStarts is the ordered list of positions used when a level begins.
var enemyStarts = []struct{ x, y int }{
	{100, 200}, {600, 300}, {200, 400}, {500, 150}, {50, 500},
	{700, 250}, {150, 350}, {650, 450}, {300, 100}, {400, 600},
	{100, 300}, {700, 400}, {200, 200}, {600, 500}, {50, 400},
	{750, 150}, {150, 600}, {550, 250}, {250, 550}, {450, 300},
}

// scatterZones are the six regions items are spread over when the box opens:
// top-left, top-right, middle-left, middle-right, bottom-left, bottom-right.
var scatterZones = []struct{ x0, x1, y0, y1 int }{
	{50, 250, 50, 200},
	{550, 750, 50, 200},
	{50, 250, 250, 400},
	{550, 750, 250, 400},
	{50, 250, 450, 600},
	{550, 750, 450, 600},
}

const (
	scatterJitter = 20
	scatterMargin = 80 // Items stay within [50, W-80] x [50, H-80]
)

// SpawnController owns the spawn timers and builds new entities.
// It never touches the collections itself; callers append what it returns.
type SpawnController struct {
	screenW, screenH int
	enemies          config.EnemyConfig
	treasure         config.TreasureRules
	powerUps         config.PowerUpConfig

	enemyTimer    int
	enemyDelay    int
	treasureTimer int
}

// NewSpawnController creates a controller for the given tuning.
func NewSpawnController(cfg config.TreasureConfig) *SpawnController {
	s := &SpawnController{
		screenW:  cfg.Screen.Width,
		screenH:  cfg.Screen.Height,
		enemies:  cfg.Enemies,
		treasure: cfg.Treasure,
		powerUps: cfg.PowerUps,
	}
	s.Reset()
	return s
}

// Reset restores all timers and the enemy delay to their starting values.
func (s *SpawnController) Reset() {
	s.enemyTimer = 0
	s.enemyDelay = s.enemies.InitialSpawnDelay
	s.treasureTimer = 0
}

// EnemyDelay returns the current spawn delay adjusted for level.
func (s *SpawnController) EnemyDelay(level int) int {
	return max(s.enemies.LevelDelayFloor, s.enemyDelay-s.enemies.LevelDelayStep*(level-1))
}

// InitialEnemies builds the enemies a level starts with.
func (s *SpawnController) InitialEnemies(r Rand, lc LevelConfig) []*Enemy {
	n := min(lc.MaxEnemies, len(enemyStarts))
	enemies := make([]*Enemy, 0, lc.MaxEnemies)
	for i := 0; i < n; i++ {
		pos := enemyStarts[i]
		speed := int(float64(choice(r, initialEnemySpeeds)) * lc.SpeedMultiplier)
		enemies = append(enemies, newEnemy(float64(pos.x), float64(pos.y), speed))
	}
	return enemies
}

// TickEnemy advances the enemy timer while below the cap and returns a new
// edge enemy when the timer fires, or nil.
func (s *SpawnController) TickEnemy(r Rand, level, count int, lc LevelConfig) *Enemy {
	if count >= lc.MaxEnemies {
		return nil
	}
	s.enemyTimer++
	if s.enemyTimer < s.EnemyDelay(level) {
		return nil
	}

	var x, y int
	switch r.Intn(4) {
	case 0: // top
		x = randRange(r, 50, s.screenW-100)
		y = randRange(r, 50, 150)
	case 1: // bottom
		x = randRange(r, 50, s.screenW-100)
		y = randRange(r, 650, 750)
	case 2: // left
		x = randRange(r, 50, 150)
		y = randRange(r, 100, s.screenH-100)
	default: // right
		x = randRange(r, 650, 750)
		y = randRange(r, 100, s.screenH-100)
	}
	speed := int(float64(choice(r, edgeEnemySpeeds)) * lc.SpeedMultiplier)

	s.enemyTimer = 0
	s.enemyDelay = max(s.enemies.MinSpawnDelay, s.enemyDelay-s.enemies.SpawnDelayStep)
	return newEnemy(float64(x), float64(y), speed)
}

// TickTreasure advances the treasure timer once the box is open and returns a
// new item when it fires, or nil.
func (s *SpawnController) TickTreasure(r Rand, opened bool, count int) *TreasureItem {
	if !opened || count >= s.treasure.MaxItems {
		return nil
	}
	s.treasureTimer++
	if s.treasureTimer < s.treasure.SpawnDelay {
		return nil
	}
	s.treasureTimer = 0

	x := randRange(r, 100, s.screenW-130)
	y := randRange(r, 100, s.screenH-130)
	kind := ItemKind(r.Intn(int(ItemKindCount)))
	return newItem(r, float64(x), float64(y), kind)
}

// SpawnChance returns N for the 1-in-N power-up roll at a level.
func (s *SpawnController) SpawnChance(level int) int {
	return max(s.powerUps.MinSpawnChance, s.powerUps.BaseSpawnChance-s.powerUps.SpawnChanceStep*(level-1))
}

// RollPowerUp rolls the per-tick power-up chance and returns a new power-up
// on success, or nil.
func (s *SpawnController) RollPowerUp(r Rand, level, count int) *PowerUp {
	if randRange(r, 1, s.SpawnChance(level)) != 1 {
		return nil
	}
	return s.SpawnPowerUp(r, count)
}

// SpawnPowerUp returns a power-up at a random spot, or nil at the cap.
func (s *SpawnController) SpawnPowerUp(r Rand, count int) *PowerUp {
	if count >= s.powerUps.MaxActive {
		return nil
	}
	x := randRange(r, 50, s.screenW-100)
	y := randRange(r, 100, s.screenH-100)
	kind := choice(r, powerKinds)
	color := choice(r, Palette)
	return &PowerUp{
		Entity: newEntity(float64(x), float64(y), PowerSize, PowerSize, ImageItem),
		Kind:   kind,
		Color:  color,
	}
}

// Scatter builds the items spread over the playfield when the box opens.
func (s *SpawnController) Scatter(r Rand, total int) []*TreasureItem {
	items := make([]*TreasureItem, 0, total)
	for i := 0; i < total; i++ {
		zone := scatterZones[i%len(scatterZones)]
		x := randRange(r, zone.x0, zone.x1)
		y := randRange(r, zone.y0, zone.y1)

		x += randRange(r, -scatterJitter, scatterJitter)
		y += randRange(r, -scatterJitter, scatterJitter)

		x = core.Clamp(x, 50, s.screenW-scatterMargin)
		y = core.Clamp(y, 50, s.screenH-scatterMargin)

		kind := ItemKind(i % int(ItemKindCount))
		items = append(items, newItem(r, float64(x), float64(y), kind))
	}
	return items
}

func newEnemy(x, y float64, speed int) *Enemy {
	return &Enemy{bouncer{
		Entity: newEntity(x, y, EnemySize, EnemySize, ImageEnemy),
		Speed:  speed,
	}}
}

func newItem(r Rand, x, y float64, kind ItemKind) *TreasureItem {
	return &TreasureItem{
		bouncer: bouncer{
			Entity: newEntity(x, y, ItemSize, ItemSize, ImageItem),
			Speed:  choice(r, itemSpeeds),
		},
		Kind: kind,
	}
}
