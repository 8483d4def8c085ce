package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dino-dash/internal/config"
)

// Spawner decides when obstacles appear and what they look like.
type Spawner struct {
	cfg   config.Spawner
	rng   *rand.Rand
	timer float64 // ms since the last spawn
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.Spawner, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Reset zeroes the spawn timer.
func (s *Spawner) Reset() {
	s.timer = 0
}

// Timer returns the milliseconds accumulated since the last spawn.
func (s *Spawner) Timer() float64 {
	return s.timer
}

// Advance adds dt to the timer and reports whether the interval has
// elapsed. The timer restarts from zero when it fires.
func (s *Spawner) Advance(dt, interval float64) bool {
	s.timer += dt
	if s.timer > interval {
		s.timer = 0
		return true
	}
	return false
}

// Spawn creates the next obstacle group with its left edge at x.
func (s *Spawner) Spawn(x, groundY float64) []Obstacle {
	if s.rng.Float64() < s.cfg.CactusChance {
		return s.cacti(x, groundY)
	}
	return []Obstacle{s.bird(x, groundY)}
}

func (s *Spawner) cacti(x, groundY float64) []Obstacle {
	count := 1
	if s.rng.Float64() < s.cfg.ClusterChance {
		count = s.cfg.ClusterMin + s.rng.Intn(s.cfg.ClusterMax-s.cfg.ClusterMin+1)
	}
	clustered := count > 1

	maxScale := s.cfg.SoloScaleMax
	if clustered {
		maxScale = s.cfg.ClusterScaleMax
	}

	group := make([]Obstacle, 0, count)
	for range count {
		scale := 1 + s.rng.Float64()*(maxScale-1)
		size := s.cfg.BaseSize * scale
		group = append(group, Obstacle{
			Kind:      KindCactus,
			X:         x,
			Y:         groundY - size,
			W:         size,
			H:         size,
			Clustered: clustered,
		})
		x += size + s.cfg.ClusterGap
	}
	return group
}

func (s *Spawner) bird(x, groundY float64) Obstacle {
	return Obstacle{
		Kind:  KindBird,
		X:     x,
		Y:     groundY - s.cfg.BirdAltitude - s.rng.Float64()*s.cfg.BirdBand,
		W:     s.cfg.BirdSize,
		H:     s.cfg.BirdSize,
		Phase: s.rng.Float64() * 2 * math.Pi,
	}
}
