package art

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/dino-dash/internal/game"
)

// Point sizes at 72 DPI, so one point is one world unit.
var fontSizes = map[game.TextSize]float64{
	game.TextHUD:   24,
	game.TextTitle: 64,
	game.TextBody:  28,
}

// Faces builds a Go Regular face for every text size.
func Faces() (map[game.TextSize]font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("art: cannot parse font: %w", err)
	}

	faces := make(map[game.TextSize]font.Face, len(fontSizes))
	for size, pt := range fontSizes {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    pt,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("art: cannot create %v pt face: %w", pt, err)
		}
		faces[size] = face
	}
	return faces, nil
}

// TextWidth measures s in pixels.
func TextWidth(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}
