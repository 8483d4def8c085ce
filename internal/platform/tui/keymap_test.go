package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-dash/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w", runeKey('w'), core.ActionJump, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDuck, false},
		{"s", runeKey('s'), core.ActionDuck, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, quit := km.MapKey(tc.msg)
			if got != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), got, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestDuckKey(t *testing.T) {
	start := time.Unix(0, 0)
	d := newDuckKey(450 * time.Millisecond)

	if !d.Press(start) {
		t.Fatal("first press should start ducking")
	}
	if d.Press(start.Add(500 * time.Millisecond)) {
		t.Error("auto-repeat press should not start a second duck")
	}
	if d.Expired(start.Add(900 * time.Millisecond)) {
		t.Error("key repeated 400ms ago should still count as held")
	}
	if !d.Expired(start.Add(950 * time.Millisecond)) {
		t.Error("key silent for 450ms should count as released")
	}
	if d.Expired(start.Add(2 * time.Second)) {
		t.Error("release should be reported once")
	}

	d.Press(start)
	if !d.Cancel() {
		t.Error("Cancel should report a held key")
	}
	if d.Cancel() {
		t.Error("second Cancel should report nothing held")
	}
}
