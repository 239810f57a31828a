package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/copperhead/internal/config"
	"github.com/vovakirdan/copperhead/internal/core"
	"github.com/vovakirdan/copperhead/internal/games/snake"
	"github.com/vovakirdan/copperhead/internal/platform/tui"
	"github.com/vovakirdan/copperhead/internal/registry"
	"github.com/vovakirdan/copperhead/internal/spectate"
	"github.com/vovakirdan/copperhead/internal/storage"
)

var (
	flagSeed     int64
	flagSpectate string
	flagLogFile  string
	flagName     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Starts a game in the current terminal. Without an argument the
snake game is played.

Controls:
  Arrows / WASD / HJKL  - Steer
  Space / Enter         - Start or restart
  Tab                   - High scores (between rounds)
  Ctrl+S                - Save a screenshot
  Q / Ctrl+C            - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags. The root command shares them
// because running it without a subcommand plays.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "Food placement seed (0 = random)")
	cmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a WebSocket spectator feed on this address (e.g. :8080)")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	cmd.Flags().StringVar(&flagName, "name", "", "Player name on the leaderboard (default: $USER)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := snake.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownGame) {
			return fmt.Errorf("%w\nRun 'copperhead list' to see available games", err)
		}
		return err
	}

	// The alternate screen owns stdout, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, cfg, "copperhead")
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	hub := startSpectating(ctx, cfg, flagSpectate, logger)

	// Get terminal size
	width, height := 80, 24
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		width, height = w, h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.FPS,
		Seed:     flagSeed,
	}

	player := playerName()
	opts := tui.Options{
		Player:  player,
		Store:   store,
		Hub:     hub,
		Logger:  logger,
		Keys:    tui.NewKeyMap(cfg.Keys),
		Palette: tui.NewPalette(nil, cfg.Display.Colors),
	}

	if err := tui.Run(game, rc, opts); err != nil {
		return fmt.Errorf("game error: %w", err)
	}

	if best, bestErr := store.PlayerBest(gameID, player); bestErr == nil && best > 0 {
		fmt.Printf("Best score this session: %d\n", best)
	}
	return nil
}

// startSpectating serves the spectator feed when an address is set by flag
// or config. It returns nil when spectating is off.
func startSpectating(ctx context.Context, cfg config.Config, flagAddr string, logger *log.Logger) *spectate.Hub {
	addr := cfg.Spectate.Address
	if flagAddr != "" {
		addr = flagAddr
	}
	if addr == "" {
		return nil
	}

	hub := spectate.NewHub(logger)
	go func() {
		if err := hub.Serve(ctx, addr); err != nil {
			logger.Error("Spectator feed stopped", "address", addr, "error", err)
		}
	}()
	logger.Info("Spectator feed", "url", "ws://"+addr+spectate.Path)
	return hub
}

func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
