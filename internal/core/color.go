package core

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a straight-alpha RGBA colour used by every drawing surface.
type Color = color.NRGBA

// Palette used by the presentation layer.
var (
	ColorNone       = Color{}
	ColorBlack      = RGB(0, 0, 0)
	ColorWhite      = RGB(255, 255, 255)
	ColorGround     = RGB(0x33, 0x33, 0x33)
	ColorGold       = RGB(255, 215, 0)
	ColorOrangeRed  = RGB(255, 69, 0)
	ColorPlayer     = RGB(84, 196, 92)
	ColorCactus     = RGB(46, 139, 87)
	ColorBird       = RGB(150, 110, 200)
	ColorSky        = RGB(18, 26, 46)
	ColorDangerSky  = RGB(70, 14, 24)
	ColorCloud      = RGB(120, 130, 150)
	ColorEmber      = RGB(255, 120, 60)
	ColorRestartTip = RGB(220, 220, 220)
)

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c Color, a float64) Color {
	c.A = uint8(math.Round(Clamp(a, 0, 1) * 255))
	return c
}

// Alpha returns the colour's alpha in [0, 1].
func Alpha(c Color) float64 {
	return float64(c.A) / 255
}

// Blend mixes src over dst with weight a in [0, 1]. The result is opaque.
func Blend(dst, src Color, a float64) Color {
	a = Clamp(a, 0, 1)
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(d)*(1-a) + float64(s)*a))
	}
	return Color{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

// Lerp interpolates between two colours, alpha included.
func Lerp(a, b Color, t float64) Color {
	t = Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// HSL converts hue (degrees), saturation and lightness (0..1) to an opaque colour.
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	to8 := func(v float64) uint8 {
		return uint8(math.Round(Clamp(v+m, 0, 1) * 255))
	}
	return RGB(to8(r), to8(g), to8(b))
}

// Hex formats the colour as #rrggbb, the form lipgloss accepts.
func Hex(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
