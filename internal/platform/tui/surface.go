package tui

import (
	"math"

	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/game"
)

// World units covered by one terminal cell. Cells are about twice as tall
// as they are wide, so a square in the world stays roughly square on screen.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// WorldSize converts a terminal size in cells to world units.
func WorldSize(cols, rows int) (w, h float64) {
	return float64(cols) * CellWidth, float64(rows) * CellHeight
}

type glyph struct {
	r  rune
	fg core.Color
}

var spriteGlyphs = map[game.Sprite]glyph{
	game.SpritePlayer:     {'█', core.ColorPlayer},
	game.SpritePlayerDuck: {'▄', core.ColorPlayer},
	game.SpriteCactus:     {'▓', core.ColorCactus},
	game.SpriteBird:       {'▼', core.ColorBird},
}

// Cloud spacing inside a background layer, in world units.
const cloudStep = 230.0

// CellSurface draws the game onto a cell Screen. A shape covers a cell
// when the cell's centre lies inside it.
type CellSurface struct {
	screen *core.Screen
}

var _ game.Surface = (*CellSurface)(nil)

// NewCellSurface wraps a screen.
func NewCellSurface(s *core.Screen) *CellSurface {
	return &CellSurface{screen: s}
}

// cells returns the cells whose centres lie inside r.
func (c *CellSurface) cells(r core.RectF) core.Rect {
	x0 := int(math.Ceil(r.X/CellWidth - 0.5))
	x1 := int(math.Ceil(r.Right()/CellWidth - 0.5))
	y0 := int(math.Ceil(r.Y/CellHeight - 0.5))
	y1 := int(math.Ceil(r.Bottom()/CellHeight - 0.5))
	return core.NewRect(x0, y0, x1-x0, y1-y0).Intersect(c.screen.Bounds())
}

func (c *CellSurface) DrawSprite(sp game.Sprite, dst core.RectF, alpha float64) {
	switch sp {
	case game.SpriteBackground:
		c.background(dst, core.ColorSky, alpha)
		return
	case game.SpriteBackgroundAlt:
		c.background(dst, core.ColorDangerSky, alpha)
		return
	}

	g, ok := spriteGlyphs[sp]
	if !ok {
		return
	}
	area := c.cells(dst)
	if area.Empty() {
		// Too small to cover a centre: mark the cell under its middle.
		cx, cy := dst.Center()
		c.set(int(cx/CellWidth), int(cy/CellHeight), g.r, g.fg, alpha)
		return
	}
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			c.set(x, y, g.r, g.fg, alpha)
		}
	}
}

// background tints the layer and sprinkles clouds that scroll with it.
func (c *CellSurface) background(dst core.RectF, sky core.Color, alpha float64) {
	c.screen.Tint(c.cells(dst), sky, alpha)
	if alpha < 0.5 {
		return
	}
	for k := 0; float64(k)*cloudStep < dst.W; k++ {
		wx := dst.X + float64(k)*cloudStep + cloudStep/2
		wy := dst.Y + float64(2+k%3)*CellHeight*1.5
		x, y := int(math.Floor(wx/CellWidth)), int(math.Floor(wy/CellHeight))
		if wy >= dst.Bottom()-CellHeight*4 {
			continue
		}
		for i := range 3 {
			c.screen.Set(x+i, y, '~', core.ColorCloud)
		}
	}
}

func (c *CellSurface) FillRect(dst core.RectF, col core.Color) {
	c.screen.Tint(c.cells(dst), col, core.Alpha(col))
}

func (c *CellSurface) FillCircle(cx, cy, radius float64, col core.Color) {
	a := core.Alpha(col)
	if radius < CellWidth {
		// Particles: one dot in the cell under the centre.
		c.set(int(math.Floor(cx/CellWidth)), int(math.Floor(cy/CellHeight)), '•', col, 1)
		return
	}

	area := c.cells(core.RectF{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius})
	r2 := radius * radius
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			dx := (float64(x)+0.5)*CellWidth - cx
			dy := (float64(y)+0.5)*CellHeight - cy
			if dx*dx+dy*dy <= r2 {
				c.screen.Tint(core.NewRect(x, y, 1, 1), col, a)
			}
		}
	}
}

func (c *CellSurface) DrawText(text string, x, y float64, _ game.TextSize, align game.Align, col core.Color) {
	col = core.WithAlpha(col, 1)
	row := int(math.Floor(y / CellHeight))
	col0 := int(math.Floor(x / CellWidth))
	if align == game.AlignCenter {
		c.screen.DrawTextCentered(col0, row, text, col)
		return
	}
	c.screen.DrawText(col0, row, text, col)
}

// set writes a glyph, blending its colour into the cell background when
// it is translucent.
func (c *CellSurface) set(x, y int, r rune, fg core.Color, alpha float64) {
	a := core.Clamp(alpha, 0, 1) * core.Alpha(fg)
	if a <= 0 {
		return
	}
	if a < 1 {
		bg := c.screen.Get(x, y).BG
		if bg.A == 0 {
			bg = core.ColorBlack
		}
		fg = core.Blend(bg, fg, a)
	}
	c.screen.Set(x, y, r, core.WithAlpha(fg, 1))
}
