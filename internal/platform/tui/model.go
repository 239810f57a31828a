package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/copperhead/internal/core"
	"github.com/vovakirdan/copperhead/internal/registry"
	"github.com/vovakirdan/copperhead/internal/spectate"
	"github.com/vovakirdan/copperhead/internal/storage"
)

// helpH is the number of rows reserved below the game for the help line.
const helpH = 1

// Options configure everything around the game itself.
// Zero values are replaced with defaults by NewModel.
type Options struct {
	Player  string         // Name on the leaderboard and spectator feed
	Store   *storage.Store // Leaderboard; nil disables it
	Hub     *spectate.Hub  // Spectator feed; nil disables it
	Logger  *log.Logger
	Keys    KeyMap
	Palette Palette
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	inputFrame core.InputFrame
	gameState  core.GameState
	help       help.Model
	board      LeaderboardModel
	showBoard  bool
	quitting   bool
	scoreSaved bool   // Whether the result has been saved for the current game over
	lastSeq    uint64 // Last spectator frame published
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH are the terminal size.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if len(opts.Keys.Quit.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}
	if opts.Palette == nil {
		opts.Palette = DefaultPalette()
	}
	if opts.Player == "" {
		opts.Player = "player"
	}
	opts.Keys.Leaderboard.SetEnabled(opts.Store != nil)

	width, height := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenH = max(height-helpH, 0)

	h := help.New()
	h.Width = width

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
		help:       h,
		board:      NewLeaderboard(opts.Store, game.ID(), game.Title(), opts.Player, width, height),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	m.opts.Logger.Debug("Game ready", "game", m.game.ID(), "player", m.opts.Player, "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.opts.Keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.opts.Keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeaderboard:
		// The leaderboard never hides a running round.
		if !m.gameState.Running {
			m.showBoard = !m.showBoard
			if m.showBoard {
				m.board.Refresh()
			}
		}
		return m, nil
	}

	if m.showBoard {
		if action == core.ActionActivate {
			m.showBoard = false
			return m, nil
		}
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg)
		return m, cmd
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events. The round keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpH, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.board.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick runs one display frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Running && !prev.Running {
		m.showBoard = false
		m.opts.Logger.Info("Round started", "game", m.game.ID(), "player", m.opts.Player)
	}

	// Record the result on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.recordResult()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	m.publish()

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordResult logs the finished round and saves it to the leaderboard.
func (m *Model) recordResult() {
	var stats registry.RoundStats
	if r, ok := m.game.(registry.Reporter); ok {
		stats = r.RoundStats()
	}

	score := m.gameState.Score
	logger := m.opts.Logger.With("game", m.game.ID(), "player", m.opts.Player)
	msg := "Game over"
	if stats.BoardFull {
		msg = "Board full"
	}
	logger.Info(msg, "score", score, "best", stats.HighScore, "length", stats.Length, "ticks", stats.Ticks)

	if m.opts.Store == nil || score == 0 {
		return
	}

	// Compare against the table before this round lands in it.
	prev, highErr := m.opts.Store.HighScore(m.game.ID())
	if highErr != nil {
		logger.Warn("Could not read high score", "error", highErr)
	}

	_, err := m.opts.Store.SaveResult(storage.Result{
		GameID:    m.game.ID(),
		Player:    m.opts.Player,
		Score:     score,
		Length:    stats.Length,
		Ticks:     stats.Ticks,
		BoardFull: stats.BoardFull,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		logger.Warn("Could not save result", "error", err)
		return
	}
	if highErr == nil && score > prev {
		logger.Info("New high score", "score", score, "previous", prev)
	}
}

// publish sends the game's view to spectators when it changed.
func (m *Model) publish() {
	if m.opts.Hub == nil {
		return
	}
	sp, ok := m.game.(registry.Spectatable)
	if !ok {
		return
	}
	seq, view := sp.Frame()
	if seq == m.lastSeq {
		return
	}
	m.lastSeq = seq
	if err := m.opts.Hub.Publish(m.opts.Player, view); err != nil {
		m.opts.Logger.Warn("Could not publish frame", "player", m.opts.Player, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("Could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".copperhead", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("Could not save screenshot", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("Could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("Screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showBoard {
		return m.board.View()
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen, m.opts.Palette) + "\n" + m.help.View(m.opts.Keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
