package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-dash/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an in-game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case " ", "up", "w":
		return core.ActionJump, false
	case "down", "s":
		return core.ActionDuck, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b":
		return core.ActionBack, false
	case "ctrl+s":
		return core.ActionScreenshot, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// DuckRelease is how long the duck key may stay silent before the player
// stands up. Terminals only report presses, and auto-repeat starts after an
// initial delay of a few hundred milliseconds.
const DuckRelease = 450 * time.Millisecond

// duckKey turns repeated duck presses into a held state.
type duckKey struct {
	held    bool
	last    time.Time
	release time.Duration
}

func newDuckKey(release time.Duration) *duckKey {
	return &duckKey{release: release}
}

// Press records a press and reports whether the duck just started.
func (d *duckKey) Press(now time.Time) bool {
	d.last = now
	if d.held {
		return false
	}
	d.held = true
	return true
}

// Expired reports, once, that the key went quiet long enough to count as released.
func (d *duckKey) Expired(now time.Time) bool {
	if !d.held || now.Sub(d.last) < d.release {
		return false
	}
	d.held = false
	return true
}

// Cancel releases the key early and reports whether it was held.
func (d *duckKey) Cancel() bool {
	was := d.held
	d.held = false
	return was
}
