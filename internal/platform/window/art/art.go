// Package art draws the built-in sprites used by the window host when no
// PNG assets are supplied.
package art

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/game"
)

// Sizes of the generated images. The renderer scales them to the hitbox,
// so only the aspect ratio matters.
var sizes = map[game.Sprite]image.Point{
	game.SpritePlayer:        {50, 50},
	game.SpritePlayerDuck:    {60, 30},
	game.SpriteCactus:        {30, 50},
	game.SpriteBird:          {50, 30},
	game.SpriteBackground:    {600, 300},
	game.SpriteBackgroundAlt: {600, 300},
}

// Size returns the generated image size for a sprite.
func Size(sp game.Sprite) image.Point {
	return sizes[sp]
}

// Generate draws the built-in image for sp. Unknown sprites get a 1x1
// transparent image.
func Generate(sp game.Sprite) *image.NRGBA {
	sz, ok := sizes[sp]
	if !ok {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	img := image.NewNRGBA(image.Rect(0, 0, sz.X, sz.Y))

	switch sp {
	case game.SpritePlayer:
		player(img)
	case game.SpritePlayerDuck:
		playerDuck(img)
	case game.SpriteCactus:
		cactus(img)
	case game.SpriteBird:
		bird(img)
	case game.SpriteBackground:
		sky(img, core.ColorSky, core.Blend(core.ColorSky, core.ColorCloud, 0.35))
		clouds(img, core.ColorCloud)
	case game.SpriteBackgroundAlt:
		sky(img, core.ColorDangerSky, core.Blend(core.ColorDangerSky, core.ColorEmber, 0.3))
		clouds(img, core.Blend(core.ColorDangerSky, core.ColorEmber, 0.5))
	}
	return img
}

// Load decodes a PNG file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

func rect(img draw.Image, x, y, w, h int, c color.Color) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
}

func disc(img draw.Image, cx, cy, r float64, c color.Color) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
			}
		}
	}
}

func player(img *image.NRGBA) {
	body := core.ColorPlayer
	dark := core.Blend(body, core.ColorBlack, 0.35)
	rect(img, 22, 0, 26, 18, body)         // head
	rect(img, 36, 4, 4, 4, core.ColorWhite) // eye
	rect(img, 38, 5, 2, 2, core.ColorBlack)
	rect(img, 30, 14, 18, 4, dark)  // jaw
	rect(img, 10, 18, 26, 20, body) // torso
	rect(img, 0, 14, 10, 8, body)   // tail
	rect(img, 34, 24, 8, 4, body)   // arm
	rect(img, 12, 38, 7, 12, body)  // legs
	rect(img, 26, 38, 7, 12, body)
}

func playerDuck(img *image.NRGBA) {
	body := core.ColorPlayer
	rect(img, 0, 8, 40, 16, body)
	rect(img, 36, 4, 24, 14, body)
	rect(img, 50, 7, 4, 4, core.ColorWhite)
	rect(img, 52, 8, 2, 2, core.ColorBlack)
	rect(img, 8, 24, 7, 6, body)
	rect(img, 24, 24, 7, 6, body)
}

func cactus(img *image.NRGBA) {
	c := core.ColorCactus
	light := core.Blend(c, core.ColorWhite, 0.2)
	rect(img, 11, 0, 8, 50, c)
	rect(img, 13, 2, 2, 46, light)
	rect(img, 2, 14, 5, 14, c)
	rect(img, 2, 26, 10, 4, c)
	rect(img, 23, 8, 5, 16, c)
	rect(img, 18, 22, 10, 4, c)
}

func bird(img *image.NRGBA) {
	c := core.ColorBird
	wing := core.Blend(c, core.ColorBlack, 0.25)
	rect(img, 10, 12, 30, 10, c) // body
	rect(img, 0, 14, 10, 4, core.ColorGold)
	rect(img, 4, 12, 3, 3, core.ColorBlack)
	rect(img, 40, 10, 10, 6, c) // tail
	// Wing, swept up.
	for i := range 12 {
		rect(img, 16+i, 12-i, 10, 1, wing)
	}
}

// sky fills img with a vertical gradient from top to bottom.
func sky(img *image.NRGBA, top, bottom core.Color) {
	b := img.Bounds()
	h := b.Dy()
	for y := range h {
		c := core.Blend(top, bottom, float64(y)/float64(max(h-1, 1)))
		rect(img, 0, y, b.Dx(), 1, c)
	}
}

// clouds scatters puffs across the top. None touch the side edges, so two
// copies placed side by side tile cleanly.
func clouds(img *image.NRGBA, c core.Color) {
	b := img.Bounds()
	w := float64(b.Dx())
	for k := range 5 {
		cx := (float64(k) + 0.5) * w / 5
		cy := 40 + 25*math.Sin(float64(k)*1.7)
		for _, off := range []float64{-18, 0, 18} {
			disc(img, cx+off, cy, 14-math.Abs(off)/3, c)
		}
	}
}
