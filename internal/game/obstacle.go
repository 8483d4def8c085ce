package game

import (
	"math"

	"github.com/vovakirdan/dino-dash/internal/core"
)

// ObstacleKind distinguishes ground and air obstacles.
type ObstacleKind int

const (
	KindCactus ObstacleKind = iota
	KindBird
)

func (k ObstacleKind) String() string {
	if k == KindBird {
		return "bird"
	}
	return "cactus"
}

// Obstacle scrolls from right to left until it leaves the viewport.
type Obstacle struct {
	Kind      ObstacleKind
	X, Y      float64
	W, H      float64
	Phase     float64 // bird bob offset in radians
	Clustered bool
}

// Rect returns the collision box.
func (o Obstacle) Rect() core.RectF {
	return core.RectF{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// OffScreen reports whether the obstacle has fully left the viewport.
func (o Obstacle) OffScreen() bool {
	return o.X+o.W < 0
}

// advance scrolls the obstacle and bobs birds. t is simulation time in ms.
func (o *Obstacle) advance(speed, f, t float64, bob bobbing) {
	o.X -= speed * f
	if o.Kind == KindBird {
		o.Y += math.Sin(t/bob.period+o.Phase) * bob.amplitude * f
	}
}

type bobbing struct {
	amplitude float64
	period    float64
}
