package game

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/dino-dash/internal/core"
)

func TestGesture(t *testing.T) {
	tests := []struct {
		name     string
		holdFor  float64
		player   PlayerView
		wantTick []core.Intent
		wantEnd  []core.Intent
	}{
		{
			name:    "tap jumps",
			holdFor: 100,
			wantEnd: []core.Intent{core.IntentJump, core.IntentGestureEnd},
		},
		{
			name:     "hold ducks then stands",
			holdFor:  250,
			player:   PlayerView{Ducking: true},
			wantTick: []core.Intent{core.IntentDuckStart},
			wantEnd:  []core.Intent{core.IntentDuckEnd, core.IntentGestureEnd},
		},
		{
			name:    "no second jump in one gesture",
			holdFor: 50,
			player:  PlayerView{HasJumped: true},
			wantEnd: []core.Intent{core.IntentGestureEnd},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGesture(200)
			g.Press(1000)
			if !g.Active() {
				t.Fatal("gesture should be active after Press")
			}

			got := g.Tick(1000 + tc.holdFor)
			if !reflect.DeepEqual(got, tc.wantTick) {
				t.Errorf("Tick() = %v, expected %v", got, tc.wantTick)
			}
			if again := g.Tick(1000 + tc.holdFor + 10); again != nil {
				t.Errorf("second Tick() = %v, expected nothing", again)
			}

			end := g.Release(1000+tc.holdFor+20, tc.player)
			if !reflect.DeepEqual(end, tc.wantEnd) {
				t.Errorf("Release() = %v, expected %v", end, tc.wantEnd)
			}
			if g.Active() {
				t.Error("gesture should end on Release")
			}
		})
	}
}

func TestGestureReleaseWithoutPress(t *testing.T) {
	g := NewGesture(0)
	if got := g.Release(10, PlayerView{}); got != nil {
		t.Errorf("Release() without Press = %v, expected nothing", got)
	}
	if got := g.Tick(10_000); got != nil {
		t.Errorf("Tick() without Press = %v, expected nothing", got)
	}
}

func TestGestureDrivesSession(t *testing.T) {
	s, _, _ := newTestSession(t, noSpawns)
	g := NewGesture(200)

	g.Press(0)
	for _, in := range g.Tick(300) {
		s.Input(in)
	}
	s.Step(frame)
	if !s.player.Ducking {
		t.Fatal("hold should duck the player")
	}

	for _, in := range g.Release(400, s.Snapshot().Player) {
		s.Input(in)
	}
	s.Step(frame)
	if s.player.Ducking || !s.player.Grounded {
		t.Error("release after a hold should stand the player up without jumping")
	}

	g.Press(500)
	for _, in := range g.Release(550, s.Snapshot().Player) {
		s.Input(in)
	}
	s.Step(frame)
	if s.player.Grounded {
		t.Error("tap should jump")
	}
	if s.player.HasJumped {
		t.Error("gesture end should clear the jump latch")
	}
}
