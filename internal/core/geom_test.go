package core

import "testing"

func TestRectFOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "disjoint horizontal",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 10.5, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "disjoint vertical",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 0, Y: 12, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching edge counts",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 10, Y: 0, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "touching corner counts",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 10, Y: 10, W: 5, H: 5},
			expected: true,
		},
		{
			name:     "contained box",
			a:        RectF{X: 0, Y: 0, W: 20, H: 20},
			b:        RectF{X: 5, Y: 5, W: 2, H: 2},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := RectF{X: 50, Y: 400, W: 100, H: 50}

	if r.Right() != 150 {
		t.Errorf("Right() = %v, expected 150", r.Right())
	}
	if r.Bottom() != 450 {
		t.Errorf("Bottom() = %v, expected 450", r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 100 || cy != 425 {
		t.Errorf("Center() = (%v, %v), expected (100, 425)", cx, cy)
	}
	if got := r.Offset(-10, 5); got.X != 40 || got.Y != 405 || got.W != 100 {
		t.Errorf("Offset() = %+v", got)
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
	}{
		{"partial", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 3, 4, 4), NewRect(2, 3, 4, 4)},
		{"clipped by negative origin", NewRect(-3, -3, 6, 6), NewRect(0, 0, 10, 10), NewRect(0, 0, 3, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersect(tc.b); got != tc.expected {
				t.Errorf("Intersect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}

	if !NewRect(0, 0, 5, 5).Intersect(NewRect(5, 0, 5, 5)).Empty() {
		t.Error("adjacent cell rects should not intersect")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, expected 5", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %d, expected 0", got)
	}
	if got := Clamp(15.5, 0.0, 10.0); got != 10 {
		t.Errorf("Clamp(15.5, 0, 10) = %v, expected 10", got)
	}
}
