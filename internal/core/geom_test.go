package core

import "testing"

func TestRectHitTest(t *testing.T) {
	quit := NewRect(680, 10, 100, 40)
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 680, 10, true},
		{"center", 730, 30, true},
		{"right edge excluded", 780, 30, false},
		{"bottom edge excluded", 730, 50, false},
		{"left of button", 679, 30, false},
		{"above button", 730, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := quit.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectCenterAndEdges(t *testing.T) {
	r := NewRect(5, 5, 280, 270)
	if r.Right() != 285 || r.Bottom() != 275 {
		t.Errorf("edges = (%d, %d), expected (285, 275)", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 145 || cy != 140 {
		t.Errorf("Center() = (%d, %d), expected (145, 140)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 750); got != 0 {
		t.Errorf("Clamp below = %d", got)
	}
	if got := Clamp(760, 50, 720); got != 720 {
		t.Errorf("Clamp above = %d", got)
	}
	if got := Clamp(385.5, 0.0, 750.0); got != 385.5 {
		t.Errorf("Clamp inside = %v", got)
	}
	if got := Clamp(1.25, 0.0, 1.0); got != 1 {
		t.Errorf("Clamp float above = %v", got)
	}
}

func TestAbs(t *testing.T) {
	for _, v := range []int{-4, -1, 0, 3} {
		got := Abs(v)
		if got < 0 || (got != v && got != -v) {
			t.Errorf("Abs(%d) = %d", v, got)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"partial overlap", Box{X: 0, Y: 0, W: 50, H: 50}, Box{X: 25, Y: 25, W: 30, H: 30}, true},
		{"touching right edge", Box{X: 0, Y: 0, W: 50, H: 50}, Box{X: 50, Y: 0, W: 50, H: 50}, false},
		{"touching bottom edge", Box{X: 0, Y: 0, W: 50, H: 50}, Box{X: 0, Y: 50, W: 50, H: 50}, false},
		{"fractional overlap", Box{X: 0, Y: 0, W: 50, H: 50}, Box{X: 49.5, Y: 10, W: 30, H: 30}, true},
		{"far apart", Box{X: 0, Y: 0, W: 30, H: 30}, Box{X: 400, Y: 400, W: 30, H: 30}, false},
		{"contained", Box{X: 0, Y: 0, W: 100, H: 100}, Box{X: 10, Y: 10, W: 5, H: 5}, true},
		{"overlap on x only", Box{X: 0, Y: 0, W: 50, H: 50}, Box{X: 10, Y: 80, W: 50, H: 50}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestOverlapsSelf(t *testing.T) {
	boxes := []Box{
		{X: 0, Y: 0, W: 1, H: 1},
		{X: 375, Y: 700, W: 50, H: 50},
		{X: -10.5, Y: 3.25, W: 30, H: 30},
	}
	for _, b := range boxes {
		if !Overlaps(b, b) {
			t.Errorf("box %+v should overlap itself", b)
		}
	}
}

func TestBoxRect(t *testing.T) {
	b := Box{X: 12.75, Y: 7.25, W: 30, H: 20}
	r := b.Rect()
	if r != NewRect(12, 7, 30, 20) {
		t.Errorf("Rect() = %+v, expected {12 7 30 20}", r)
	}
	if b.Right() != 42.75 {
		t.Errorf("Right() = %v, expected 42.75", b.Right())
	}
}
