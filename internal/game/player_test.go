package game

import (
	"testing"

	"github.com/vovakirdan/dino-dash/internal/config"
)

func newTestPlayer() *Player {
	return NewPlayer(config.Default(), 550)
}

func TestPlayerJump(t *testing.T) {
	p := newTestPlayer()

	if !p.Jump() {
		t.Fatal("grounded player should jump")
	}
	if p.VY != -15 || p.Grounded || !p.HasJumped {
		t.Errorf("after jump: VY=%v Grounded=%v HasJumped=%v", p.VY, p.Grounded, p.HasJumped)
	}
	if p.Jump() {
		t.Error("airborne player should not jump again")
	}

	p.Update(1)
	if p.VY != -14.4 {
		t.Errorf("VY after one frame = %v, expected -14.4", p.VY)
	}
	if p.Y >= 450 {
		t.Errorf("player should be rising, Y = %v", p.Y)
	}
}

func TestPlayerLands(t *testing.T) {
	p := newTestPlayer()
	p.Jump()

	frames := 0
	for !p.Grounded && frames < 200 {
		p.Update(1)
		frames++
	}
	if !p.Grounded {
		t.Fatal("player never landed")
	}
	if p.Y != 450 || p.VY != 0 {
		t.Errorf("landed at Y=%v VY=%v, expected 450 and 0", p.Y, p.VY)
	}
	// Impulse 15 at 0.6 per frame: about 50 frames up and down.
	if frames < 45 || frames > 55 {
		t.Errorf("jump lasted %d frames, expected about 50", frames)
	}
}

func TestPlayerDuck(t *testing.T) {
	p := newTestPlayer()

	p.StartDuck()
	box := p.Hitbox()
	if !p.Ducking || box.W != 120 || box.H != 60 || box.Bottom() != 550 {
		t.Errorf("duck hitbox = %+v, expected 120x60 on the ground", box)
	}
	if p.Jump() {
		t.Error("ducking player should not jump")
	}

	p.EndDuck()
	box = p.Hitbox()
	if p.Ducking || box.W != 100 || box.H != 100 || box.Bottom() != 550 {
		t.Errorf("stand hitbox = %+v, expected 100x100 on the ground", box)
	}
}

func TestPlayerDuckIgnoredInAir(t *testing.T) {
	p := newTestPlayer()
	p.Jump()
	p.Update(1)

	p.StartDuck()
	if p.Ducking {
		t.Error("duck should be ignored in the air")
	}

	// Ending a duck that never started is harmless.
	y := p.Y
	p.EndDuck()
	if p.Y != y {
		t.Errorf("EndDuck moved an airborne standing player: %v -> %v", y, p.Y)
	}
}

func TestPlayerFastFall(t *testing.T) {
	p := newTestPlayer()
	p.Grounded = false
	p.Ducking = true
	p.Y = 100
	p.VY = 0

	p.Update(1)
	if p.VY != 1.2 {
		t.Errorf("VY = %v, expected doubled gravity 1.2", p.VY)
	}
}

func TestPlayerFrameFactor(t *testing.T) {
	a := newTestPlayer()
	a.Jump()
	a.Update(0)
	if a.VY != -15 {
		t.Errorf("zero factor should not integrate, VY = %v", a.VY)
	}

	a.Update(2)
	if a.VY != -13.8 {
		t.Errorf("VY after f=2 = %v, expected -13.8", a.VY)
	}
}

func TestPlayerGestureLatch(t *testing.T) {
	p := newTestPlayer()
	p.Jump()
	if !p.HasJumped {
		t.Fatal("jump should set the latch")
	}
	p.EndGesture()
	if p.HasJumped {
		t.Error("EndGesture should clear the latch")
	}
}

func TestPlayerSetGround(t *testing.T) {
	p := newTestPlayer()
	p.SetGround(300)
	if p.Y != 200 || !p.Grounded {
		t.Errorf("grounded player should follow the ground: Y=%v", p.Y)
	}

	p.Jump()
	p.Update(1)
	y := p.Y
	p.SetGround(800)
	if p.Grounded || p.Y != y {
		t.Error("airborne player above the new ground should keep falling")
	}
}
