package config

import (
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/copperhead.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return builtin() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// builtin mirrors defaults/copperhead.yaml.
func builtin() Config {
	return Config{
		Display: Display{
			FPS: 60,
			Glyphs: Glyphs{
				Head: "██",
				Body: "██",
				Food: "◆ ",
			},
			Colors: map[string]string{
				"border":     "#40210D",
				"text":       "#F2D9A6",
				"head":       "#E69940",
				"body_dark":  "#994D1A",
				"body_light": "#D98C38",
				"food":       "#F2A35E",
				"alert":      "#CC3333",
				"muted":      "#A08060",
			},
		},
		Keys: Keys{
			Up:          []string{"up", "w", "k"},
			Down:        []string{"down", "s", "j"},
			Left:        []string{"left", "a", "h"},
			Right:       []string{"right", "d", "l"},
			Activate:    []string{" ", "enter"},
			Leaderboard: []string{"tab"},
			Quit:        []string{"q", "ctrl+c"},
		},
		Server: Server{
			Address:     ":2222",
			HostKey:     ".ssh/copperhead_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
		Log: Log{
			Level: "info",
		},
	}
}
