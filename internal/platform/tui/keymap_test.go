package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/copperhead/internal/config"
	"github.com/vovakirdan/copperhead/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey("w"), core.ActionUp},
		{"k", runeKey("k"), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey("s"), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"h", runeKey("h"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"space", runeKey(" "), core.ActionActivate},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionActivate},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionLeaderboard},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("x"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestCustomKeyMap(t *testing.T) {
	keys := config.Default().Keys
	keys.Up = []string{"i"}
	keys.Quit = []string{"esc"}
	km := NewKeyMap(keys)

	if got := km.MapKey(runeKey("i")); got != core.ActionUp {
		t.Errorf("i = %v, expected Up", got)
	}
	if got := km.MapKey(runeKey("w")); got != core.ActionNone {
		t.Errorf("w = %v, expected None after rebinding", got)
	}
	if got := km.MapKey(runeKey("q")); got != core.ActionNone {
		t.Errorf("q = %v, expected None after rebinding", got)
	}
	if got := km.MapKey(tea.KeyMsg{Type: tea.KeyEsc}); got != core.ActionQuit {
		t.Errorf("esc = %v, expected Quit", got)
	}
}

func TestDisabledLeaderboardKey(t *testing.T) {
	km := DefaultKeyMap()
	km.Leaderboard.SetEnabled(false)

	if got := km.MapKey(tea.KeyMsg{Type: tea.KeyTab}); got != core.ActionNone {
		t.Errorf("tab = %v, expected None when disabled", got)
	}
}

func TestActivateLabel(t *testing.T) {
	if got := DefaultKeyMap().ActivateLabel(); got != "space" {
		t.Errorf("ActivateLabel() = %q, expected space", got)
	}

	keys := config.Default().Keys
	keys.Activate = []string{"enter"}
	if got := NewKeyMap(keys).ActivateLabel(); got != "enter" {
		t.Errorf("ActivateLabel() = %q, expected enter", got)
	}
}

func TestHelpLabels(t *testing.T) {
	km := DefaultKeyMap()

	if got := km.Activate.Help().Key; got != "space/enter" {
		t.Errorf("activate help = %q, expected space/enter", got)
	}
	if got := km.ShortHelp()[0].Help().Key; got != "up/down/left/right" {
		t.Errorf("move help = %q, expected up/down/left/right", got)
	}
}
