package game

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/dino-dash/internal/core"
)

type spriteDraw struct {
	sprite Sprite
	dst    core.RectF
	alpha  float64
}

// recordingSurface keeps every primitive Render issues.
type recordingSurface struct {
	sprites []spriteDraw
	rects   []core.RectF
	circles []core.Color
	texts   []string
}

func (r *recordingSurface) DrawSprite(sp Sprite, dst core.RectF, alpha float64) {
	r.sprites = append(r.sprites, spriteDraw{sp, dst, alpha})
}

func (r *recordingSurface) FillRect(dst core.RectF, _ core.Color) {
	r.rects = append(r.rects, dst)
}

func (r *recordingSurface) FillCircle(_, _, _ float64, c core.Color) {
	r.circles = append(r.circles, c)
}

func (r *recordingSurface) DrawText(text string, _, _ float64, _ TextSize, _ Align, _ core.Color) {
	r.texts = append(r.texts, text)
}

func (r *recordingSurface) spriteCount(sp Sprite) int {
	n := 0
	for _, d := range r.sprites {
		if d.sprite == sp {
			n++
		}
	}
	return n
}

func (r *recordingSurface) hasText(sub string) bool {
	for _, s := range r.texts {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func baseSnapshot() Snapshot {
	return Snapshot{
		Width:        1200,
		Height:       600,
		GroundY:      550,
		DangerStart:  1000,
		DangerEnd:    1500,
		FadeLife:     80,
		ParticleSize: 3,
		Player: PlayerView{
			Hitbox:   core.RectF{X: 50, Y: 450, W: 100, H: 100},
			Grounded: true,
		},
	}
}

func TestCrossFade(t *testing.T) {
	tests := []struct {
		score    int
		expected float64
	}{
		{999, 0},
		{1000, 0},
		{1125, 0.5},
		{1250, 1},
		{1375, 0.5},
		{1500, 0},
		{1800, 0},
	}

	for _, tc := range tests {
		if got := CrossFade(tc.score, 1000, 1500); math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("CrossFade(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestPulseRange(t *testing.T) {
	for ms := 0.0; ms < 5000; ms += 7 {
		if p := Pulse(ms); p < 0 || p > 1 {
			t.Fatalf("Pulse(%v) = %v outside [0, 1]", ms, p)
		}
	}
}

func TestRenderCalmFrame(t *testing.T) {
	snap := baseSnapshot()
	snap.Score = 42
	snap.HighScore = 99
	snap.Obstacles = []Obstacle{
		{Kind: KindCactus, X: 600, Y: 500, W: 50, H: 50},
		{Kind: KindBird, X: 900, Y: 300, W: 50, H: 50},
	}
	snap.Particles = []Particle{{X: 10, Y: 10, Life: 40, Color: core.ColorWhite}}

	var s recordingSurface
	Render(&s, snap)

	if got := s.spriteCount(SpriteBackground); got != 2 {
		t.Errorf("background layers = %d, expected 2", got)
	}
	if got := s.spriteCount(SpriteBackgroundAlt); got != 0 {
		t.Errorf("danger background drawn in calm phase %d times", got)
	}
	if s.spriteCount(SpritePlayer) != 1 || s.spriteCount(SpriteCactus) != 1 || s.spriteCount(SpriteBird) != 1 {
		t.Errorf("unexpected sprites: %+v", s.sprites)
	}
	if len(s.circles) != 1 || s.circles[0].A != 128 {
		t.Errorf("particle dots = %v, expected one at half opacity", s.circles)
	}
	if !s.hasText("Score: 42") || !s.hasText("High Score: 99") {
		t.Errorf("HUD texts = %v", s.texts)
	}
	if s.hasText("Restart") {
		t.Error("running frame should not show the restart hint")
	}
	if len(s.rects) != 1 || s.rects[0].Y != 550 || s.rects[0].H != 50 {
		t.Errorf("ground strip = %v", s.rects)
	}
}

func TestRenderDangerFrame(t *testing.T) {
	snap := baseSnapshot()
	snap.Score = 1250
	snap.Phase = PhaseDanger
	snap.Time = 200 * math.Pi / 2 // pulse peak

	var s recordingSurface
	Render(&s, snap)

	if got := s.spriteCount(SpriteBackgroundAlt); got != 2 {
		t.Fatalf("danger background layers = %d, expected 2", got)
	}
	for _, d := range s.sprites {
		if d.sprite == SpriteBackgroundAlt && math.Abs(d.alpha-1) > 1e-12 {
			t.Errorf("danger background alpha at 1250 = %v, expected 1", d.alpha)
		}
	}
	if len(s.circles) != tintRings {
		t.Errorf("tint rings = %d, expected %d", len(s.circles), tintRings)
	}
}

func TestRenderDuckingSprite(t *testing.T) {
	snap := baseSnapshot()
	snap.Player.Ducking = true
	snap.Player.Hitbox = core.RectF{X: 50, Y: 490, W: 120, H: 60}

	var s recordingSurface
	Render(&s, snap)

	if s.spriteCount(SpritePlayerDuck) != 1 || s.spriteCount(SpritePlayer) != 0 {
		t.Errorf("ducking player should use the duck sprite: %+v", s.sprites)
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		paused  bool
		title   string
	}{
		{"won", OutcomeWon, false, "YEY!"},
		{"lost", OutcomeLost, false, "GAME OVER"},
		{"paused", OutcomeRunning, true, "PAUSED"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := baseSnapshot()
			snap.Outcome = tc.outcome
			snap.Paused = tc.paused

			var s recordingSurface
			Render(&s, snap)

			if !s.hasText(tc.title) {
				t.Errorf("expected %q in %v", tc.title, s.texts)
			}
			if tc.outcome != OutcomeRunning && !s.hasText("Press R to Restart") {
				t.Error("game over should show the restart hint")
			}
		})
	}
}
