package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/copperhead/internal/config"
	"github.com/vovakirdan/copperhead/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Activate    key.Binding
	Leaderboard key.Binding
	Quit        key.Binding
	Screenshot  key.Binding

	move key.Binding // Help entry standing in for the four directions
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(keys config.Keys) KeyMap {
	km := KeyMap{
		Up:          binding(keys.Up, "up"),
		Down:        binding(keys.Down, "down"),
		Left:        binding(keys.Left, "left"),
		Right:       binding(keys.Right, "right"),
		Activate:    binding(keys.Activate, "start"),
		Leaderboard: binding(keys.Leaderboard, "scores"),
		Quit:        binding(keys.Quit, "quit"),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}

	var all, labels []string
	for _, ks := range [][]string{keys.Up, keys.Down, keys.Left, keys.Right} {
		all = append(all, ks...)
		if len(ks) > 0 {
			labels = append(labels, config.KeyLabel(ks[0]))
		}
	}
	km.move = key.NewBinding(
		key.WithKeys(all...),
		key.WithHelp(strings.Join(labels, "/"), "move"),
	)
	return km
}

// DefaultKeyMap returns the bindings of the embedded configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

// binding creates a key binding whose help lists the first two keys.
func binding(keys []string, desc string) key.Binding {
	labels := make([]string, 0, 2)
	for _, k := range keys {
		if len(labels) == 2 {
			break
		}
		labels = append(labels, config.KeyLabel(k))
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// ActivateLabel returns the printable name of the primary activate key.
func (k KeyMap) ActivateLabel() string {
	if keys := k.Activate.Keys(); len(keys) > 0 {
		return config.KeyLabel(keys[0])
	}
	return "space"
}

// MapKey translates a key message to an action.
// Quit is checked first so it cannot be shadowed by a game binding.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Activate):
		return core.ActionActivate
	case key.Matches(msg, k.Leaderboard):
		return core.ActionLeaderboard
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.move, k.Activate, k.Leaderboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Activate, k.Leaderboard, k.Screenshot, k.Quit},
	}
}
