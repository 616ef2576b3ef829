package treasure

import "github.com/vovakirdan/treasure-hunt/internal/core"

// particlesPerTick is how many sparkles an active power-up emits each tick.
const particlesPerTick = 3

// Particle is a short-lived cosmetic sparkle around the player.
type Particle struct {
	X, Y    float64
	DX, DY  float64
	Size    float64
	Life    int
	MaxLife int
	Color   core.Color
}

func newParticle(r Rand, x, y float64, c core.Color) *Particle {
	size := randRange(r, 2, 6)
	life := randRange(r, 20, 40)
	return &Particle{
		X:       x,
		Y:       y,
		Size:    float64(size),
		Life:    life,
		MaxLife: life,
		DX:      uniform(r, -2, 2),
		DY:      uniform(r, -2, 2),
		Color:   c,
	}
}

// Update ages the particle by one tick.
func (p *Particle) Update() {
	p.X += p.DX
	p.Y += p.DY
	p.Life--
	p.Size = max(0, p.Size-0.1)
}

// Alive reports whether the particle should still be drawn.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Alpha returns the remaining life as a fraction in [0, 1].
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.Clamp(float64(p.Life)/float64(p.MaxLife), 0, 1)
}

// updateParticles ages every particle and drops the dead ones in place.
func updateParticles(ps []*Particle) []*Particle {
	active := ps[:0]
	for _, p := range ps {
		p.Update()
		if p.Alive() {
			active = append(active, p)
		}
	}
	// Clear the tail so dropped particles can be collected.
	for i := len(active); i < len(ps); i++ {
		ps[i] = nil
	}
	return active
}
