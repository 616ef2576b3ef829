package treasure

import (
	"github.com/vovakirdan/treasure-hunt/internal/config"
	"github.com/vovakirdan/treasure-hunt/internal/core"
)

// scriptedRand replays fixed values, then returns zeros.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// recordingAudio remembers every cue request.
type recordingAudio struct {
	played  []core.Cue
	stopped []core.Cue
}

func (a *recordingAudio) PlayCue(c core.Cue) { a.played = append(a.played, c) }
func (a *recordingAudio) StopCue(c core.Cue) { a.stopped = append(a.stopped, c) }

func (a *recordingAudio) count(c core.Cue) int {
	n := 0
	for _, p := range a.played {
		if p == c {
			n++
		}
	}
	return n
}

func (a *recordingAudio) reset() {
	a.played = nil
	a.stopped = nil
}

// drawOp is one recorded renderer call.
type drawOp struct {
	kind   string // clear, image, rect, text, present
	name   string // image name or text
	x, y   int
	rect   core.Rect
	color  core.Color
	filled bool
}

// recordingRenderer captures draw calls in order.
type recordingRenderer struct {
	ops []drawOp
}

func (r *recordingRenderer) Clear() { r.ops = append(r.ops, drawOp{kind: "clear"}) }
func (r *recordingRenderer) DrawImage(img core.Image, x, y int) {
	r.ops = append(r.ops, drawOp{kind: "image", name: img.Name, x: x, y: y})
}
func (r *recordingRenderer) DrawRect(rect core.Rect, c core.Color, filled bool) {
	r.ops = append(r.ops, drawOp{kind: "rect", rect: rect, color: c, filled: filled})
}
func (r *recordingRenderer) DrawText(text string, x, y int, c core.Color, _ int) {
	r.ops = append(r.ops, drawOp{kind: "text", name: text, x: x, y: y, color: c})
}
func (r *recordingRenderer) Present() { r.ops = append(r.ops, drawOp{kind: "present"}) }

func (r *recordingRenderer) text(s string) (drawOp, bool) {
	for _, op := range r.ops {
		if op.kind == "text" && op.name == s {
			return op, true
		}
	}
	return drawOp{}, false
}

// newTestGame returns a started endless game whose RNG always yields zero.
// With zero draws every spawn lands at the low end of its range, far from
// the player's start position.
func newTestGame() (*Game, *recordingAudio) {
	g := New(config.DefaultTreasureConfig())
	g.newRand = func(int64) Rand { return &scriptedRand{} }
	audio := &recordingAudio{}
	g.SetAudio(audio)
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	return g, audio
}

// seededGame returns a started game using the production RNG.
func seededGame(seed int64) *Game {
	g := New(config.DefaultTreasureConfig())
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})
	return g
}

// atPlayer returns the player position so entities can be placed on it.
func atPlayer(g *Game) (float64, float64) {
	return g.player.X, g.player.Y
}
