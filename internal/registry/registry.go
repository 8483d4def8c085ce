// Package registry provides a global registry of game modes.
// Modes register themselves in init() functions, allowing the CLI and menus
// to discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dino-dash/internal/config"
)

// Mode is a named rule set layered over the loaded configuration.
type Mode struct {
	// ID is used for CLI arguments and as the score storage key (e.g. "classic").
	ID string

	// Title is the human-readable name shown in menus.
	Title string

	// Description is a one-line summary for list output.
	Description string

	// Apply adjusts the configuration for this mode. May be nil.
	Apply func(cfg *config.Config)
}

// Configure returns a copy of base with the mode applied.
func (m Mode) Configure(base config.Config) config.Config {
	cfg := base
	if m.Apply != nil {
		m.Apply(&cfg)
	}
	return cfg
}

var (
	modes = make(map[string]Mode)
	mu    sync.RWMutex
)

// Register adds a mode to the registry.
// Panics if a mode with the same ID is already registered.
func Register(m Mode) {
	mu.Lock()
	defer mu.Unlock()

	if m.ID == "" {
		panic("registry: mode without ID")
	}
	if _, exists := modes[m.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", m.ID))
	}
	modes[m.ID] = m
}

// List returns all registered modes, sorted by ID.
func List() []Mode {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Mode, 0, len(modes))
	for _, m := range modes {
		result = append(result, m)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get looks a mode up by ID.
func Get(id string) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := modes[id]
	if !ok {
		return Mode{}, fmt.Errorf("registry: unknown mode %q", id)
	}
	return m, nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
