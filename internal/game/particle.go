package game

import (
	"math/rand"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// Particle is a short-lived coloured dot.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // frames left
	Color  core.Color
}

// ParticleSystem owns every live particle.
type ParticleSystem struct {
	items []Particle
	cfg   config.Particles
}

// NewParticleSystem creates an empty system.
func NewParticleSystem(cfg config.Particles) *ParticleSystem {
	return &ParticleSystem{
		items: make([]Particle, 0, cfg.CollisionBurst+cfg.MilestoneBurst),
		cfg:   cfg,
	}
}

// Burst spawns n particles at (x, y) with random velocity, life and hue.
func (ps *ParticleSystem) Burst(rng *rand.Rand, x, y float64, n int) {
	half := ps.cfg.Speed / 2
	for range n {
		ps.items = append(ps.items, Particle{
			X:     x,
			Y:     y,
			VX:    rng.Float64()*ps.cfg.Speed - half,
			VY:    rng.Float64()*ps.cfg.Speed - half,
			Life:  ps.cfg.LifeMin + rng.Float64()*(ps.cfg.LifeMax-ps.cfg.LifeMin),
			Color: core.HSL(rng.Float64()*360, 1, 0.5),
		})
	}
}

// Update moves every particle by f frames and drops the expired ones.
func (ps *ParticleSystem) Update(f float64) {
	if f <= 0 {
		return
	}
	alive := ps.items[:0]
	for _, p := range ps.items {
		p.X += p.VX * f
		p.Y += p.VY * f
		p.Life -= f
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.items = alive
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.items)
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.items = ps.items[:0]
}

// Items returns a copy of the live particles.
func (ps *ParticleSystem) Items() []Particle {
	out := make([]Particle, len(ps.items))
	copy(out, ps.items)
	return out
}
