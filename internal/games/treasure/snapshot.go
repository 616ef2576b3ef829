package treasure

// Snapshot contains the simulation state as primitives for determinism checks.
// Positions are truncated to integers.
type Snapshot struct {
	Tick           uint64
	Score          int
	Lives          int
	Level          int
	TimeRemaining  int
	ItemsCollected int
	TotalItems     int
	GameOver       bool
	BoxOpened      bool

	PlayerX     int
	PlayerY     int
	PlayerSpeed int

	// Power-up effect
	PowerKind  int
	PowerTimer int

	// Spawn timers
	EnemyTimer    int
	EnemyDelay    int
	TreasureTimer int

	// Each enemy is 3 ints: X, Y, Speed
	EnemyData []int
	// Each item is 4 ints: X, Y, Speed, Kind
	ItemData []int
	// Each power-up is 3 ints: X, Y, Kind
	PowerUpData []int

	ParticleCount int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]int, 0, len(g.enemies)*3)
	for _, e := range g.enemies {
		enemyData = append(enemyData, int(e.X), int(e.Y), e.Speed)
	}

	itemData := make([]int, 0, len(g.items)*4)
	for _, it := range g.items {
		itemData = append(itemData, int(it.X), int(it.Y), it.Speed, int(it.Kind))
	}

	powerData := make([]int, 0, len(g.powerUps)*3)
	for _, p := range g.powerUps {
		powerData = append(powerData, int(p.X), int(p.Y), int(p.Kind))
	}

	snap := Snapshot{
		Tick:           uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:          g.score,
		Lives:          g.lives,
		Level:          g.level,
		TimeRemaining:  g.timeRemaining,
		ItemsCollected: g.itemsCollected,
		TotalItems:     g.totalItems,
		GameOver:       g.gameOver,
		BoxOpened:      g.box.Opened,

		PlayerX:     int(g.player.X),
		PlayerY:     int(g.player.Y),
		PlayerSpeed: g.player.Speed,

		PowerKind:  int(g.powerKind),
		PowerTimer: g.powerTimer,

		EnemyData:     enemyData,
		ItemData:      itemData,
		PowerUpData:   powerData,
		ParticleCount: len(g.particles),
	}
	if g.spawner != nil {
		snap.EnemyTimer = g.spawner.enemyTimer
		snap.EnemyDelay = g.spawner.enemyDelay
		snap.TreasureTimer = g.spawner.treasureTimer
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	mix(snap.Score)
	mix(snap.Lives)
	mix(snap.Level)
	mix(snap.TimeRemaining)
	mix(snap.ItemsCollected)
	mix(snap.TotalItems)
	mix(boolInt(snap.GameOver))
	mix(boolInt(snap.BoxOpened))
	mix(snap.PlayerX)
	mix(snap.PlayerY)
	mix(snap.PlayerSpeed)
	mix(snap.PowerKind)
	mix(snap.PowerTimer)
	mix(snap.EnemyTimer)
	mix(snap.EnemyDelay)
	mix(snap.TreasureTimer)

	for _, v := range snap.EnemyData {
		mix(v)
	}
	for _, v := range snap.ItemData {
		mix(v)
	}
	for _, v := range snap.PowerUpData {
		mix(v)
	}
	mix(snap.ParticleCount)

	return h
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
