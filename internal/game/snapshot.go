package game

import "github.com/vovakirdan/dino-dash/internal/core"

// PlayerView is the read-only part of the player that hosts may look at.
type PlayerView struct {
	Hitbox    core.RectF
	Ducking   bool
	Grounded  bool
	HasJumped bool
}

// Snapshot is an immutable copy of everything the presentation layer and
// the spectator feed need for one frame.
type Snapshot struct {
	Width, Height float64
	GroundY       float64
	Time          float64 // simulation ms, drives pulses and bobbing
	Score         int
	HighScore     int
	Speed         float64
	Background    float64
	Phase         Phase
	Outcome       Outcome
	Paused        bool
	DangerStart   int
	DangerEnd     int
	FadeLife      float64
	ParticleSize  float64

	Player    PlayerView
	Obstacles []Obstacle
	Particles []Particle
}

// Snapshot captures the current frame.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.obstacles))
	copy(obstacles, s.obstacles)

	return Snapshot{
		Width:        s.width,
		Height:       s.height,
		GroundY:      s.groundY,
		Time:         s.elapsed,
		Score:        s.score,
		HighScore:    s.highScore,
		Speed:        s.speed,
		Background:   s.background,
		Phase:        s.phase,
		Outcome:      s.outcome,
		Paused:       s.paused,
		DangerStart:  s.cfg.Phases.DangerStart,
		DangerEnd:    s.cfg.Phases.DangerEnd,
		FadeLife:     s.cfg.Particles.FadeLife,
		ParticleSize: s.cfg.Particles.Radius,
		Player: PlayerView{
			Hitbox:    s.player.Hitbox(),
			Ducking:   s.player.Ducking,
			Grounded:  s.player.Grounded,
			HasJumped: s.player.HasJumped,
		},
		Obstacles: obstacles,
		Particles: s.particles.Items(),
	}
}

// InDanger reports whether the snapshot falls inside the danger window.
func (snap Snapshot) InDanger() bool {
	return snap.Score >= snap.DangerStart && snap.Score < snap.DangerEnd
}

// ParticleAlpha returns the opacity of p in [0, 1].
func (snap Snapshot) ParticleAlpha(p Particle) float64 {
	if snap.FadeLife <= 0 {
		return 0
	}
	return core.Clamp(p.Life/snap.FadeLife, 0, 1)
}
