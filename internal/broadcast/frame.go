// Package broadcast streams live game frames to read-only websocket spectators.
package broadcast

import (
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/game"
)

// Box is an axis-aligned rectangle in world units.
type Box struct {
	Kind string  `msgpack:"k,omitempty"`
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
	W    float64 `msgpack:"w"`
	H    float64 `msgpack:"h"`
}

func boxOf(r core.RectF) Box {
	return Box{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Frame is one spectator update, msgpack-encoded on the wire.
type Frame struct {
	Seq       uint64  `msgpack:"seq"`
	Width     float64 `msgpack:"width"`
	Height    float64 `msgpack:"height"`
	GroundY   float64 `msgpack:"ground"`
	Score     int     `msgpack:"score"`
	HighScore int     `msgpack:"high"`
	Phase     string  `msgpack:"phase"`
	Outcome   string  `msgpack:"outcome"`
	Paused    bool    `msgpack:"paused"`
	Player    Box     `msgpack:"player"`
	Ducking   bool    `msgpack:"ducking"`
	Obstacles []Box   `msgpack:"obstacles"`
	Particles int     `msgpack:"particles"`
}

// FrameFromSnapshot converts a snapshot to its wire form.
func FrameFromSnapshot(snap game.Snapshot, seq uint64) Frame {
	obstacles := make([]Box, 0, len(snap.Obstacles))
	for _, o := range snap.Obstacles {
		b := boxOf(o.Rect())
		b.Kind = o.Kind.String()
		obstacles = append(obstacles, b)
	}

	return Frame{
		Seq:       seq,
		Width:     snap.Width,
		Height:    snap.Height,
		GroundY:   snap.GroundY,
		Score:     snap.Score,
		HighScore: snap.HighScore,
		Phase:     snap.Phase.String(),
		Outcome:   snap.Outcome.String(),
		Paused:    snap.Paused,
		Player:    boxOf(snap.Player.Hitbox),
		Ducking:   snap.Player.Ducking,
		Obstacles: obstacles,
		Particles: len(snap.Particles),
	}
}
