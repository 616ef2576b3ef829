package treasure

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/treasure-hunt/internal/config"
)

func newTestSpawner() *SpawnController {
	return NewSpawnController(config.DefaultTreasureConfig())
}

func TestInitialEnemies(t *testing.T) {
	s := newTestSpawner()

	// Speed index 4 picks 4 from {-3,-2,2,3,4}; 4*1.4 truncates to 5.
	r := &scriptedRand{ints: []int{4, 0}}
	enemies := s.InitialEnemies(r, ConfigForLevel(3, 7200))

	if len(enemies) != 10 {
		t.Fatalf("len(enemies) = %d, expected 10", len(enemies))
	}
	if enemies[0].X != 100 || enemies[0].Y != 200 || enemies[0].Speed != 5 {
		t.Errorf("enemies[0] = (%v, %v, %d), expected (100, 200, 5)", enemies[0].X, enemies[0].Y, enemies[0].Speed)
	}
	if enemies[1].Speed != -4 { // -3*1.4 = -4.2 truncates toward zero
		t.Errorf("enemies[1].Speed = %d, expected -4", enemies[1].Speed)
	}
	if enemies[9].X != 400 || enemies[9].Y != 600 {
		t.Errorf("enemies[9] at (%v, %v), expected (400, 600)", enemies[9].X, enemies[9].Y)
	}
}

func TestInitialEnemiesCappedAtStartList(t *testing.T) {
	s := newTestSpawner()
	enemies := s.InitialEnemies(&scriptedRand{}, ConfigForLevel(10, 7200))
	if len(enemies) != len(enemyStarts) {
		t.Errorf("len(enemies) = %d, expected %d", len(enemies), len(enemyStarts))
	}
}

func TestEnemyDelay(t *testing.T) {
	s := newTestSpawner()
	tests := []struct {
		level int
		want  int
	}{
		{1, 180},
		{3, 140},
		{7, 60},
		{10, 60},
	}
	for _, tc := range tests {
		if got := s.EnemyDelay(tc.level); got != tc.want {
			t.Errorf("EnemyDelay(%d) = %d, expected %d", tc.level, got, tc.want)
		}
	}
}

func TestTickEnemy(t *testing.T) {
	s := newTestSpawner()
	lc := ConfigForLevel(2, 7200)

	// side=bottom, x=50+10, y=650+5, speed index 5 -> 4*1.2 = 4.8 -> 4
	r := &scriptedRand{ints: []int{1, 10, 5, 5}}

	for i := 1; i < 160; i++ {
		if e := s.TickEnemy(r, 2, 0, lc); e != nil {
			t.Fatalf("tick %d spawned early", i)
		}
	}
	e := s.TickEnemy(r, 2, 0, lc)
	if e == nil {
		t.Fatal("expected a spawn when the timer reaches the level delay")
	}
	if e.X != 60 || e.Y != 655 || e.Speed != 4 {
		t.Errorf("spawned (%v, %v, %d), expected (60, 655, 4)", e.X, e.Y, e.Speed)
	}
	if s.enemyTimer != 0 {
		t.Errorf("enemyTimer = %d, expected 0", s.enemyTimer)
	}
	if s.enemyDelay != 170 {
		t.Errorf("enemyDelay = %d, expected 170", s.enemyDelay)
	}
}

func TestTickEnemyAtCapDoesNotAdvance(t *testing.T) {
	s := newTestSpawner()
	lc := ConfigForLevel(1, 7200)
	for i := 0; i < 500; i++ {
		if e := s.TickEnemy(&scriptedRand{}, 1, lc.MaxEnemies, lc); e != nil {
			t.Fatal("spawned at cap")
		}
	}
	if s.enemyTimer != 0 {
		t.Errorf("enemyTimer = %d, expected 0 at cap", s.enemyTimer)
	}
}

func TestEnemyDelayFloor(t *testing.T) {
	s := newTestSpawner()
	lc := ConfigForLevel(1, 7200)
	for i := 0; i < 100; i++ {
		s.enemyTimer = s.EnemyDelay(1)
		s.TickEnemy(&scriptedRand{}, 1, 0, lc)
	}
	if s.enemyDelay != 30 {
		t.Errorf("enemyDelay = %d, expected floor 30", s.enemyDelay)
	}
	if s.EnemyDelay(1) != 60 {
		t.Errorf("EnemyDelay(1) = %d, expected level floor 60", s.EnemyDelay(1))
	}
}

func TestTickTreasure(t *testing.T) {
	s := newTestSpawner()
	r := &scriptedRand{}

	for i := 0; i < 1000; i++ {
		if it := s.TickTreasure(r, false, 0); it != nil {
			t.Fatal("spawned before the box opened")
		}
	}
	for i := 0; i < 1000; i++ {
		if it := s.TickTreasure(r, true, 15); it != nil {
			t.Fatal("spawned at the item cap")
		}
	}

	for i := 1; i < 600; i++ {
		if it := s.TickTreasure(r, true, 3); it != nil {
			t.Fatalf("tick %d spawned early", i)
		}
	}
	it := s.TickTreasure(&scriptedRand{ints: []int{5, 7, 2}}, true, 3)
	if it == nil {
		t.Fatal("expected a spawn after 600 ticks")
	}
	if it.X != 105 || it.Y != 107 || it.Kind != ItemCrown {
		t.Errorf("spawned (%v, %v, %v), expected (105, 107, crown)", it.X, it.Y, it.Kind)
	}
	if it.W != ItemSize || it.H != ItemSize {
		t.Errorf("item size %dx%d, expected %dx%d", it.W, it.H, ItemSize, ItemSize)
	}
}

func TestSpawnChance(t *testing.T) {
	s := newTestSpawner()
	tests := []struct {
		level int
		want  int
	}{
		{1, 300},
		{3, 200},
		{5, 100},
		{9, 100},
	}
	for _, tc := range tests {
		if got := s.SpawnChance(tc.level); got != tc.want {
			t.Errorf("SpawnChance(%d) = %d, expected %d", tc.level, got, tc.want)
		}
	}
}

func TestSpawnPowerUp(t *testing.T) {
	s := newTestSpawner()

	if p := s.SpawnPowerUp(&scriptedRand{}, 2); p != nil {
		t.Error("spawned at the power-up cap")
	}

	p := s.SpawnPowerUp(&scriptedRand{ints: []int{0, 0, 1, 9}}, 0)
	if p == nil {
		t.Fatal("expected a power-up")
	}
	if p.X != 50 || p.Y != 100 {
		t.Errorf("power-up at (%v, %v), expected (50, 100)", p.X, p.Y)
	}
	if p.Kind != PowerShield {
		t.Errorf("Kind = %v, expected shield", p.Kind)
	}
	if p.Color != Palette[9] {
		t.Errorf("Color = %+v, expected sky blue", p.Color)
	}
}

func TestRollPowerUp(t *testing.T) {
	s := newTestSpawner()
	// randRange(1, 300) == 2: no spawn
	if p := s.RollPowerUp(&scriptedRand{ints: []int{1}}, 1, 0); p != nil {
		t.Error("spawned on a failed roll")
	}
	if p := s.RollPowerUp(&scriptedRand{}, 1, 0); p == nil {
		t.Error("expected a spawn on a successful roll")
	}
}

func TestScatterBoundsAndKinds(t *testing.T) {
	s := newTestSpawner()
	r := rand.New(rand.NewSource(7))

	items := s.Scatter(r, 25)
	if len(items) != 25 {
		t.Fatalf("len(items) = %d, expected 25", len(items))
	}
	for i, it := range items {
		if it.X < 50 || it.X > 720 || it.Y < 50 || it.Y > 720 {
			t.Errorf("item %d at (%v, %v) outside [50, 720]", i, it.X, it.Y)
		}
		if it.Kind != ItemKind(i%8) {
			t.Errorf("item %d kind = %v, expected %v", i, it.Kind, ItemKind(i%8))
		}
		if it.Speed == 0 || it.Speed < -4 || it.Speed > 4 {
			t.Errorf("item %d speed = %d", i, it.Speed)
		}
		if it.Collected || !it.Color.IsZero() {
			t.Errorf("item %d should start uncollected with no override color", i)
		}
	}
}

func TestScatterZones(t *testing.T) {
	s := newTestSpawner()

	// Zero draws put each item at zone minimum minus jitter, then clamp.
	items := s.Scatter(&scriptedRand{}, 6)
	want := [][2]float64{{50, 50}, {530, 50}, {50, 230}, {530, 230}, {50, 430}, {530, 430}}
	for i, it := range items {
		if it.X != want[i][0] || it.Y != want[i][1] {
			t.Errorf("item %d at (%v, %v), expected (%v, %v)", i, it.X, it.Y, want[i][0], want[i][1])
		}
	}
}
