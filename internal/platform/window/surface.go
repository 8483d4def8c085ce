package window

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/game"
	"github.com/vovakirdan/dino-dash/internal/platform/window/art"
)

type spriteSet map[game.Sprite]*ebiten.Image

var allSprites = []game.Sprite{
	game.SpritePlayer,
	game.SpritePlayerDuck,
	game.SpriteCactus,
	game.SpriteBird,
	game.SpriteBackground,
	game.SpriteBackgroundAlt,
}

// loadSprites reads <dir>/<sprite>.png for every sprite and falls back to
// the generated art for anything missing.
func loadSprites(dir string, logger *log.Logger) spriteSet {
	set := make(spriteSet, len(allSprites))
	for _, sp := range allSprites {
		if dir != "" {
			path := filepath.Join(dir, sp.String()+".png")
			img, err := art.Load(path)
			if err == nil {
				set[sp] = ebiten.NewImageFromImage(img)
				continue
			}
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("could not load sprite", "path", path, "error", err)
			}
		}
		set[sp] = ebiten.NewImageFromImage(art.Generate(sp))
	}
	return set
}

// imageSurface draws the game onto an ebiten image, one pixel per world unit.
type imageSurface struct {
	dst     *ebiten.Image
	sprites spriteSet
	faces   map[game.TextSize]font.Face
}

var _ game.Surface = (*imageSurface)(nil)

func (s *imageSurface) DrawSprite(sp game.Sprite, dst core.RectF, alpha float64) {
	img := s.sprites[sp]
	if img == nil || alpha <= 0 || dst.W <= 0 || dst.H <= 0 {
		return
	}
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(b.Dx()), dst.H/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleAlpha(float32(core.Clamp(alpha, 0, 1)))
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

func (s *imageSurface) FillRect(dst core.RectF, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(dst.X), float32(dst.Y), float32(dst.W), float32(dst.H), c, false)
}

func (s *imageSurface) FillCircle(cx, cy, radius float64, c core.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), c, true)
}

func (s *imageSurface) DrawText(str string, x, y float64, size game.TextSize, align game.Align, c core.Color) {
	face := s.faces[size]
	if face == nil {
		return
	}
	if align == game.AlignCenter {
		x -= art.TextWidth(face, str) / 2
	}
	text.Draw(s.dst, str, face, int(x), int(y), c)
}
