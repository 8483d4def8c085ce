package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/game"
)

func TestWorldSize(t *testing.T) {
	w, h := WorldSize(80, 24)
	if w != 800 || h != 480 {
		t.Errorf("WorldSize(80, 24) = %v x %v, expected 800 x 480", w, h)
	}
}

func TestCellsUseCentres(t *testing.T) {
	s := core.NewScreen(20, 10)
	c := NewCellSurface(s)

	tests := []struct {
		name     string
		rect     core.RectF
		expected core.Rect
	}{
		{"aligned", core.RectF{X: 50, Y: 40, W: 50, H: 40}, core.NewRect(5, 2, 5, 2)},
		{"half cell is rounded by centre", core.RectF{X: 44, Y: 0, W: 12, H: 20}, core.NewRect(4, 0, 2, 1)},
		{"misses every centre", core.RectF{X: 6, Y: 0, W: 3, H: 20}, core.NewRect(1, 0, 0, 1)},
		{"clipped", core.RectF{X: -30, Y: -20, W: 60, H: 60}, core.NewRect(0, 0, 3, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.cells(tc.rect)
			if got.Empty() != tc.expected.Empty() || (!got.Empty() && got != tc.expected) {
				t.Errorf("cells(%+v) = %+v, expected %+v", tc.rect, got, tc.expected)
			}
		})
	}
}

func TestDrawSpriteFillsCells(t *testing.T) {
	s := core.NewScreen(20, 10)
	c := NewCellSurface(s)

	c.DrawSprite(game.SpriteCactus, core.RectF{X: 50, Y: 100, W: 50, H: 60}, 1)

	for y := 5; y < 8; y++ {
		for x := 5; x < 10; x++ {
			if cell := s.Get(x, y); cell.Rune != '▓' || cell.FG != core.ColorCactus {
				t.Fatalf("cell (%d,%d) = %+v, expected cactus", x, y, cell)
			}
		}
	}
	if s.Get(4, 5).Rune != ' ' || s.Get(10, 5).Rune != ' ' {
		t.Error("cactus leaked outside its rectangle")
	}
}

func TestFillRectBlendsBackground(t *testing.T) {
	s := core.NewScreen(4, 2)
	c := NewCellSurface(s)

	c.FillRect(core.RectF{W: 40, H: 40}, core.ColorGround)
	if bg := s.Get(0, 0).BG; bg != core.ColorGround {
		t.Errorf("opaque fill BG = %v, expected %v", bg, core.ColorGround)
	}

	c.FillRect(core.RectF{W: 40, H: 40}, core.WithAlpha(core.ColorBlack, 0.5))
	bg := s.Get(3, 1).BG
	if bg.R >= core.ColorGround.R || bg.A != 255 {
		t.Errorf("translucent black over ground = %v, expected darker opaque colour", bg)
	}
}

func TestParticleIsOneCell(t *testing.T) {
	s := core.NewScreen(10, 5)
	c := NewCellSurface(s)

	c.FillCircle(35, 45, 3, core.WithAlpha(core.ColorWhite, 0.5))

	cell := s.Get(3, 2)
	if cell.Rune != '•' {
		t.Fatalf("particle rune = %q, expected dot", cell.Rune)
	}
	// Half-white over the default (black) background.
	if cell.FG.R < 120 || cell.FG.R > 135 || cell.FG.A != 255 {
		t.Errorf("particle FG = %v, expected opaque mid grey", cell.FG)
	}
	if strings.Count(s.String(), "•") != 1 {
		t.Error("particle should mark exactly one cell")
	}
}

func TestDrawTextPlacement(t *testing.T) {
	s := core.NewScreen(40, 10)
	c := NewCellSurface(s)

	c.DrawText("Score: 7", 20, 50, game.TextHUD, game.AlignLeft, core.ColorGold)
	if row := s.Row(2); !strings.HasPrefix(row, "  Score: 7") {
		t.Errorf("HUD row = %q", row)
	}

	c.DrawText("PAUSED", 200, 100, game.TextTitle, game.AlignCenter, core.ColorWhite)
	if row := s.Row(5); !strings.Contains(row, "PAUSED") || strings.Index(row, "PAUSED") != 17 {
		t.Errorf("centred row = %q", row)
	}
}

func TestRenderFrameOnCells(t *testing.T) {
	s := core.NewScreen(80, 24)
	c := NewCellSurface(s)
	w, h := WorldSize(80, 24)

	session := game.NewSession(game.Options{
		Config: config.Default(),
		Width:  w,
		Height: h,
		Seed:   1,
	})
	game.Render(c, session.Snapshot())

	out := s.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("frame should show the score")
	}
	if !strings.Contains(out, "█") {
		t.Error("frame should show the player")
	}
	if bg := s.Get(0, 23).BG; bg != core.ColorGround {
		t.Errorf("bottom row BG = %v, expected ground", bg)
	}

	plain := RenderScreen(s)
	if !strings.Contains(plain, "Score: 0") {
		t.Error("styled output lost the HUD text")
	}
}
