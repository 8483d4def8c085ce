package game

import (
	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/registry"
)

// Mode IDs.
const (
	ModeClassic = "classic"
	ModeEndless = "endless"
)

func init() {
	registry.Register(registry.Mode{
		ID:          ModeClassic,
		Title:       "Classic",
		Description: "Survive the danger phase and reach the score ceiling",
	})
	registry.Register(registry.Mode{
		ID:          ModeEndless,
		Title:       "Endless",
		Description: "No ceiling: run until you hit something",
		Apply: func(cfg *config.Config) {
			cfg.Scoring.Ceiling = 0
		},
	})
}
