package core

import (
	"strings"
)

// Cell is a single terminal character with its colours.
// A zero-alpha colour means "terminal default".
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D cell buffer. Hosts draw into it and the terminal renderer
// turns it into styled text.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a blank screen with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		row := make([]Cell, s.width)
		for x := range row {
			row[x] = blankCell
		}
		s.cells[y] = row
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the whole screen as a rectangle.
func (s *Screen) Bounds() Rect {
	return Rect{W: s.width, H: s.height}
}

// Resize changes the dimensions. Content is discarded; the next frame redraws it.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.allocate()
}

// Clear resets every cell to a blank with default colours.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a rune with a foreground colour, keeping the cell background.
// Out-of-bounds coordinates are ignored.
func (s *Screen) Set(x, y int, r rune, fg Color) {
	if !s.inside(x, y) {
		return
	}
	c := &s.cells[y][x]
	c.Rune = r
	c.FG = fg
}

// SetBackground replaces the background colour of a cell.
func (s *Screen) SetBackground(x, y int, bg Color) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y][x].BG = bg
}

// Get returns the cell at (x, y), or a blank for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// Tint blends bg over the background of every cell in r.
// Cells without a background are treated as black.
func (s *Screen) Tint(r Rect, bg Color, a float64) {
	r = r.Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c := &s.cells[y][x]
			base := c.BG
			if base.A == 0 {
				base = ColorBlack
			}
			c.BG = Blend(base, bg, a)
		}
	}
}

// DrawText writes a string starting at (x, y). Text past the edge is clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r, fg)
	}
}

// DrawTextCentered draws text centred on column cx.
func (s *Screen) DrawTextCentered(cx, y int, text string, fg Color) {
	s.DrawText(cx-len([]rune(text))/2, y, text, fg)
}

// String returns the runes of the buffer, rows joined by newlines.
// Colours are dropped; the terminal renderer handles those.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of one row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
