package treasure

import "testing"

func TestBouncerMove(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		speed     int
		wantX     float64
		wantSpeed int
	}{
		{"free move", 100, 3, 103, 3},
		{"left wall", 2, -4, 0, 4},
		{"exactly zero", 3, -3, 0, 3},
		{"right wall", 748, 3, 750, -3},
		{"past right wall", 749, 4, 750, -4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnemy(tc.x, 200, tc.speed)
			e.Move(800)
			if e.X != tc.wantX || e.Speed != tc.wantSpeed {
				t.Errorf("Move() -> x=%v speed=%d, expected x=%v speed=%d", e.X, e.Speed, tc.wantX, tc.wantSpeed)
			}
			if e.Y != 200 {
				t.Errorf("Move() changed y to %v", e.Y)
			}
		})
	}
}

func TestPlayerMoveClamps(t *testing.T) {
	p := Player{Entity: newEntity(5, 745, 50, 50, ImagePlayer), Speed: 10}

	p.Move(-1, 1, 800, 800)
	if p.X != 0 || p.Y != 750 {
		t.Errorf("Move(-1, 1) -> (%v, %v), expected (0, 750)", p.X, p.Y)
	}

	p.Move(1, -1, 800, 800)
	if p.X != 10 || p.Y != 740 {
		t.Errorf("Move(1, -1) -> (%v, %v), expected (10, 740)", p.X, p.Y)
	}
}

func TestKindStrings(t *testing.T) {
	if ItemSapphire.String() != "sapphire" {
		t.Errorf("ItemSapphire.String() = %q", ItemSapphire.String())
	}
	if PowerShield.String() != "shield" {
		t.Errorf("PowerShield.String() = %q", PowerShield.String())
	}
	if PowerNone.String() != "none" {
		t.Errorf("PowerNone.String() = %q", PowerNone.String())
	}
}
