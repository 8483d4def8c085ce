package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dino-dash/internal/core"
)

// Sprite identifies an image asset.
type Sprite int

const (
	SpritePlayer Sprite = iota
	SpritePlayerDuck
	SpriteCactus
	SpriteBird
	SpriteBackground
	SpriteBackgroundAlt
)

func (s Sprite) String() string {
	switch s {
	case SpritePlayer:
		return "player"
	case SpritePlayerDuck:
		return "player-duck"
	case SpriteCactus:
		return "cactus"
	case SpriteBird:
		return "bird"
	case SpriteBackground:
		return "background"
	case SpriteBackgroundAlt:
		return "background-alt"
	default:
		return "unknown"
	}
}

// TextSize selects a font size on hosts that have one.
type TextSize int

const (
	TextHUD TextSize = iota
	TextTitle
	TextBody
)

// Align controls where text sits relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Surface is the drawing backend. Coordinates are world units with the
// origin at the top-left; text y is the baseline.
type Surface interface {
	DrawSprite(sp Sprite, dst core.RectF, alpha float64)
	FillRect(dst core.RectF, c core.Color)
	FillCircle(cx, cy, radius float64, c core.Color)
	DrawText(text string, x, y float64, size TextSize, align Align, c core.Color)
}

const (
	groundStrip  = 50
	tintRings    = 8
	tintPeak     = 0.3
	pulsePeriod  = 200.0 // ms per radian
	titlePeriod  = 300.0
	overlayAlpha = 0.8
)

// CrossFade returns the opacity of the danger background for a score.
// It ramps up from start to the window midpoint and back down to end.
func CrossFade(score, start, end int) float64 {
	if score < start || score >= end || end <= start {
		return 0
	}
	half := float64(end-start) / 2
	mid := float64(start) + half
	s := float64(score)
	if s <= mid {
		return (s - float64(start)) / half
	}
	return (float64(end) - s) / half
}

// Pulse returns the danger overlay pulse in [0, 1] at simulation time t.
func Pulse(t float64) float64 {
	return (math.Sin(t/pulsePeriod) + 1) / 2
}

// Render draws one frame. It only reads the snapshot.
func Render(dst Surface, snap Snapshot) {
	drawBackground(dst, snap)

	dst.FillRect(core.RectF{X: 0, Y: snap.Height - groundStrip, W: snap.Width, H: groundStrip}, core.ColorGround)

	sprite := SpritePlayer
	if snap.Player.Ducking {
		sprite = SpritePlayerDuck
	}
	dst.DrawSprite(sprite, snap.Player.Hitbox, 1)

	for _, o := range snap.Obstacles {
		sp := SpriteCactus
		if o.Kind == KindBird {
			sp = SpriteBird
		}
		dst.DrawSprite(sp, o.Rect(), 1)
	}

	for _, p := range snap.Particles {
		dst.FillCircle(p.X, p.Y, snap.ParticleSize, core.WithAlpha(p.Color, snap.ParticleAlpha(p)))
	}

	if snap.InDanger() {
		drawDangerTint(dst, snap)
	}

	dst.DrawText(fmt.Sprintf("Score: %d", snap.Score), 20, 50, TextHUD, AlignLeft, core.ColorGold)
	dst.DrawText(fmt.Sprintf("High Score: %d", snap.HighScore), 20, 100, TextHUD, AlignLeft, core.ColorGold)

	switch {
	case snap.Outcome != OutcomeRunning:
		drawGameOver(dst, snap)
	case snap.Paused:
		drawBanner(dst, snap, "PAUSED", "Press P to resume", 0)
	}
}

func drawBackground(dst Surface, snap Snapshot) {
	x := snap.Background
	for _, off := range []float64{0, snap.Width} {
		dst.DrawSprite(SpriteBackground, core.RectF{X: x + off, W: snap.Width, H: snap.Height}, 1)
	}
	if a := CrossFade(snap.Score, snap.DangerStart, snap.DangerEnd); a > 0 {
		for _, off := range []float64{0, snap.Width} {
			dst.DrawSprite(SpriteBackgroundAlt, core.RectF{X: x + off, W: snap.Width, H: snap.Height}, a)
		}
	}
}

// drawDangerTint approximates a radial gradient with stacked translucent
// discs: the centre is covered by every ring, the rim by one.
func drawDangerTint(dst Surface, snap Snapshot) {
	peak := tintPeak * Pulse(snap.Time)
	if peak <= 0 {
		return
	}
	cx, cy := snap.Width/2, snap.Height/2
	radius := snap.Width / 1.5
	for i := tintRings; i >= 1; i-- {
		t := float64(i) / tintRings
		c := core.Lerp(core.ColorGold, core.ColorOrangeRed, t)
		dst.FillCircle(cx, cy, radius*t, core.WithAlpha(c, peak/tintRings))
	}
}

func drawGameOver(dst Surface, snap Snapshot) {
	title := "GAME OVER"
	if snap.Outcome == OutcomeWon {
		title = "YEY!"
	}
	drawBanner(dst, snap, title, "Press R to Restart", math.Sin(snap.Time/titlePeriod)*10)
}

func drawBanner(dst Surface, snap Snapshot, title, hint string, wobble float64) {
	dst.FillRect(core.RectF{W: snap.Width, H: snap.Height}, core.WithAlpha(core.ColorBlack, overlayAlpha))
	cx, cy := snap.Width/2, snap.Height/2
	dst.DrawText(title, cx, cy-40+wobble, TextTitle, AlignCenter, core.ColorWhite)
	dst.DrawText(hint, cx, cy+40, TextBody, AlignCenter, core.ColorRestartTip)
}
