package game

import "github.com/vovakirdan/dino-dash/internal/core"

// DefaultHold is how long a press must last before it becomes a duck.
const DefaultHold = 200.0

// Gesture turns a single pointer (touch or mouse button) into intents:
// a short tap jumps, holding past the threshold ducks until release.
// Times are host milliseconds.
type Gesture struct {
	hold      float64
	pressedAt float64
	down      bool
	ducked    bool
}

// NewGesture creates a tracker with the given hold threshold in ms.
func NewGesture(hold float64) *Gesture {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Gesture{hold: hold}
}

// Press starts a gesture.
func (g *Gesture) Press(now float64) {
	g.down = true
	g.ducked = false
	g.pressedAt = now
}

// Tick emits DuckStart once the press has been held long enough.
func (g *Gesture) Tick(now float64) []core.Intent {
	if !g.down || g.ducked || now-g.pressedAt < g.hold {
		return nil
	}
	g.ducked = true
	return []core.Intent{core.IntentDuckStart}
}

// Release ends the gesture. A ducking player stands up; otherwise the
// player jumps unless it already jumped during this gesture.
func (g *Gesture) Release(now float64, player PlayerView) []core.Intent {
	if !g.down {
		return nil
	}
	g.down = false

	var out []core.Intent
	switch {
	case player.Ducking || g.ducked:
		out = append(out, core.IntentDuckEnd)
	case !player.HasJumped:
		out = append(out, core.IntentJump)
	}
	return append(out, core.IntentGestureEnd)
}

// Active reports whether a press is in progress.
func (g *Gesture) Active() bool {
	return g.down
}
