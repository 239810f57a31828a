package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/copperhead/internal/config"
	"github.com/vovakirdan/copperhead/internal/games/snake"
	"github.com/vovakirdan/copperhead/internal/platform/tui"
	"github.com/vovakirdan/copperhead/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeWatch  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Starts an SSH server that lets remote players connect and play.

Each SSH session gets its own game. Sessions share one high score table
for as long as the server runs.

Connect with:
  ssh -p 2222 localhost`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH listen address (default: from config, :2222)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (default: from config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Close idle sessions after this long (default: from config)")
	serveCmd.Flags().StringVar(&flagServeWatch, "spectate", "", "Serve a WebSocket spectator feed on this address (e.g. :8080)")
}

// serveConfig loads the configuration with the serve flags applied on top.
func serveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, err
	}

	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.Server.IdleTimeout = flagIdleTimeout
	}
	return cfg, cfg.Validate()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := serveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, cfg, "copperhead")
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := startSpectating(ctx, cfg, flagServeWatch, logger)

	server, err := tui.NewSSHServer(tui.ServerConfigFrom(cfg, snake.ID), store, hub, logger)
	if err != nil {
		return err
	}

	logger.Info("Config", "source", cfg.Source())
	logger.Info("Connect with", "command", "ssh -p <port> <host>")

	return server.ListenAndServe(ctx)
}
