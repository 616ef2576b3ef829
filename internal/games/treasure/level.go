package treasure

// minTimeLimit is the shortest time any level gets, in ticks (30 seconds).
const minTimeLimit = 1800

// maxItemsPerLevel caps total_items for late levels.
const maxItemsPerLevel = 25

// LevelConfig holds the difficulty values derived from a level number.
type LevelConfig struct {
	MaxEnemies      int
	SpeedMultiplier float64
	TimeLimit       int // Ticks
	TotalItems      int
}

// levelTable covers the hand-tuned levels 1 through 5.
var levelTable = []struct {
	maxEnemies int
	speedMult  float64
	timeFactor float64
	totalItems int
}{
	{6, 1.0, 1.0, 8},
	{8, 1.2, 0.9, 12},
	{10, 1.4, 0.8, 15},
	{12, 1.6, 0.7, 18},
	{15, 1.8, 0.6, 20},
}

// ConfigForLevel returns the difficulty for level n (1-indexed).
// base is the level 1 time limit in ticks. Levels below 1 are treated as 1.
func ConfigForLevel(n, base int) LevelConfig {
	if n < 1 {
		n = 1
	}
	if n <= len(levelTable) {
		row := levelTable[n-1]
		return LevelConfig{
			MaxEnemies:      row.maxEnemies,
			SpeedMultiplier: row.speedMult,
			TimeLimit:       int(float64(base) * row.timeFactor),
			TotalItems:      row.totalItems,
		}
	}

	extra := n - len(levelTable)
	return LevelConfig{
		MaxEnemies:      15 + 2*extra,
		SpeedMultiplier: 1.8 + 0.2*float64(extra),
		TimeLimit:       max(minTimeLimit, int(float64(base)*(0.5-0.05*float64(extra)))),
		TotalItems:      min(maxItemsPerLevel, 20+2*extra),
	}
}
