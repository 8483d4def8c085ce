package game

import (
	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// Player is the runner. Y is the top of the hitbox; the ground line is the
// bottom limit.
type Player struct {
	X, Y      float64
	VY        float64
	Ducking   bool
	Grounded  bool
	HasJumped bool // set by a jump, cleared when a press gesture ends

	dims    config.Player
	physics config.Physics
	groundY float64
}

// NewPlayer creates a player standing on groundY.
func NewPlayer(cfg config.Config, groundY float64) *Player {
	p := &Player{dims: cfg.Player, physics: cfg.Physics}
	p.Reset(groundY)
	return p
}

// Reset puts the player back at the spawn position, standing on the ground.
func (p *Player) Reset(groundY float64) {
	p.groundY = groundY
	p.X = p.dims.X
	p.VY = 0
	p.Ducking = false
	p.Grounded = true
	p.HasJumped = false
	p.Y = groundY - p.Height()
}

// Width returns the current hitbox width.
func (p *Player) Width() float64 {
	if p.Ducking {
		return p.dims.DuckWidth
	}
	return p.dims.StandWidth
}

// Height returns the current hitbox height.
func (p *Player) Height() float64 {
	if p.Ducking {
		return p.dims.DuckHeight
	}
	return p.dims.StandHeight
}

// Hitbox returns the posture-specific collision box.
func (p *Player) Hitbox() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Width(), H: p.Height()}
}

// Jump launches the player when grounded and standing.
// It reports whether the jump happened.
func (p *Player) Jump() bool {
	if !p.Grounded || p.Ducking {
		return false
	}
	p.VY = p.physics.JumpImpulse
	p.Grounded = false
	p.HasJumped = true
	return true
}

// StartDuck crouches. Ignored in the air.
func (p *Player) StartDuck() {
	if !p.Grounded || p.Ducking {
		return
	}
	p.Ducking = true
	p.Y = p.groundY - p.Height()
}

// EndDuck stands back up, keeping the feet on the ground line.
func (p *Player) EndDuck() {
	if !p.Ducking {
		return
	}
	bottom := p.Y + p.Height()
	p.Ducking = false
	p.Y = bottom - p.Height()
	if p.Grounded {
		p.Y = p.groundY - p.Height()
	}
}

// EndGesture clears the per-gesture jump latch.
func (p *Player) EndGesture() {
	p.HasJumped = false
}

// Update integrates gravity over f frames and lands the player on the ground.
func (p *Player) Update(f float64) {
	if f <= 0 {
		return
	}
	g := p.physics.Gravity * f
	if p.Ducking && !p.Grounded {
		g *= p.physics.FastFall
	}
	p.VY += g
	p.Y += p.VY * f

	h := p.Height()
	if p.Y+h >= p.groundY {
		p.Y = p.groundY - h
		p.VY = 0
		p.Grounded = true
	} else {
		p.Grounded = false
	}
}

// SetGround moves the ground line. A grounded player follows it; an airborne
// one is clamped if the new line is above its feet.
func (p *Player) SetGround(groundY float64) {
	p.groundY = groundY
	h := p.Height()
	if p.Grounded || p.Y+h >= groundY {
		p.Y = groundY - h
		p.VY = 0
		p.Grounded = true
	}
}

// GroundY returns the ground line the player stands on.
func (p *Player) GroundY() float64 {
	return p.groundY
}
