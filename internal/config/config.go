// Package config provides YAML-based configuration loading for Copperhead.
// Only presentation, key bindings and server settings are configurable;
// the grid and movement speed are fixed by the game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/copperhead/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete Copperhead configuration.
type Config struct {
	Display  Display  `yaml:"display"`
	Keys     Keys     `yaml:"keys"`
	Server   Server   `yaml:"server"`
	Spectate Spectate `yaml:"spectate"`
	Log      Log      `yaml:"log"`

	source string // Where the configuration was read from
}

// Display controls frame rate and how the board looks.
type Display struct {
	FPS    int               `yaml:"fps"`
	Glyphs Glyphs            `yaml:"glyphs"`
	Colors map[string]string `yaml:"colors"` // Colour role -> lipgloss colour
}

// Glyphs are the two-column strings drawn for each board element.
type Glyphs struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
}

// Keys maps actions to Bubble Tea key names.
type Keys struct {
	Up          []string `yaml:"up"`
	Down        []string `yaml:"down"`
	Left        []string `yaml:"left"`
	Right       []string `yaml:"right"`
	Activate    []string `yaml:"activate"`
	Leaderboard []string `yaml:"leaderboard"`
	Quit        []string `yaml:"quit"`
}

// Server configures the SSH server.
type Server struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Spectate configures the WebSocket spectator feed. An empty address disables it.
type Spectate struct {
	Address string `yaml:"address"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"`
}

// Source reports the file the configuration came from, or "embedded".
func (c Config) Source() string {
	if c.source == "" {
		return "embedded"
	}
	return c.source
}

// Validate checks the configuration for values the platform cannot use.
func (c Config) Validate() error {
	if c.Display.FPS <= 0 {
		return fmt.Errorf("%w: display.fps must be positive, got %d", ErrInvalid, c.Display.FPS)
	}

	roles := make(map[string]bool)
	for _, role := range core.Colors() {
		roles[role.String()] = true
	}
	for name := range c.Display.Colors {
		if !roles[name] {
			return fmt.Errorf("%w: unknown colour role %q", ErrInvalid, name)
		}
	}

	for action, keys := range c.Keys.byAction() {
		if len(keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no keys", ErrInvalid, action)
		}
	}

	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout must not be negative", ErrInvalid)
	}
	return nil
}

// byAction returns the key lists indexed by their YAML names.
func (k Keys) byAction() map[string][]string {
	return map[string][]string{
		"up":          k.Up,
		"down":        k.Down,
		"left":        k.Left,
		"right":       k.Right,
		"activate":    k.Activate,
		"leaderboard": k.Leaderboard,
		"quit":        k.Quit,
	}
}

// ParseLevel converts the configured level name to a log level.
func (l Log) ParseLevel() (log.Level, error) {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return level, nil
}

// KeyLabel returns a printable name for a Bubble Tea key string.
func KeyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
