// copperhead is a terminal snake game: play locally, host it over SSH and
// let others watch through a WebSocket feed.
//
// Usage:
//
//	copperhead               - Play in this terminal (same as play)
//	copperhead play          - Play in this terminal
//	copperhead serve         - Start SSH server for remote play
//	copperhead list          - List available games
//	copperhead config        - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Configuration file (default: search order)
//	--fps <rate>        - Display frame rate (default: from config)
//	--log-level <level> - debug, info, warn or error (default: from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/copperhead/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "copperhead",
	Short: "Copperhead - a snake game for your terminal",
	Long: `Copperhead is a snake game on a fixed 20x20 board. Eat food to grow,
avoid the walls and your own body.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  copperhead
  copperhead play --seed 42
  copperhead play --spectate :8080
  copperhead serve --ssh :2222
  copperhead config > ~/.copperhead/config.yaml`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Display frame rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (empty = from config)")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
