// Package core holds the small value types shared by the simulation and the
// hosts: world and cell geometry, colours, the cell buffer and input intents.
// It has no UI dependencies so the game logic stays pure and testable.
package core

import "cmp"

// RectF is an axis-aligned box in world units (y grows downward).
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the centre point of the box.
func (r RectF) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether the closed boxes share at least one point.
// Boxes that merely touch along an edge or corner do overlap.
func (r RectF) Overlaps(o RectF) bool {
	if r.X > o.Right() || o.X > r.Right() {
		return false
	}
	if r.Y > o.Bottom() || o.Y > r.Bottom() {
		return false
	}
	return true
}

// Offset returns the box moved by (dx, dy).
func (r RectF) Offset(dx, dy float64) RectF {
	return RectF{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Rect is a box in terminal cell coordinates.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a cell rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlapping part of two rectangles.
// The result has zero size when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp restricts val to [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
