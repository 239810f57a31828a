// Package snake implements Copperhead: a snake on a fixed 20×20 grid that
// grows by eating food and dies on walls or itself.
//
// Game and Snake hold the simulation. Arcade adapts a Game to the
// platform's registry.Game contract: it turns frame input into events,
// paces simulation ticks at a fixed rate and renders to a core.Screen.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/copperhead/internal/core"
	"github.com/vovakirdan/copperhead/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "snake"

// MoveInterval is the fixed simulation tick: the snake moves ten times a second
// regardless of the display frame rate.
const MoveInterval = 100 * time.Millisecond

// Glyphs are the strings drawn for each board element. Every grid cell is
// two terminal columns wide; longer strings are cut, shorter ones padded.
type Glyphs struct {
	Head string
	Body string
	Food string
}

// Options tune presentation only; they never change the simulation.
type Options struct {
	Glyphs      Glyphs
	ActivateKey string // Label shown in "Press ... to start"
}

// DefaultOptions returns the built-in presentation options.
func DefaultOptions() Options {
	return Options{
		Glyphs: Glyphs{
			Head: "██",
			Body: "██",
			Food: "◆ ",
		},
		ActivateKey: "space",
	}
}

// Package-level presentation options, set once by the CLI before games are created.
var options = DefaultOptions()

// Configure sets the presentation options used by games created afterwards.
func Configure(opts Options) {
	def := DefaultOptions()
	if opts.Glyphs.Head == "" {
		opts.Glyphs.Head = def.Glyphs.Head
	}
	if opts.Glyphs.Body == "" {
		opts.Glyphs.Body = def.Glyphs.Body
	}
	if opts.Glyphs.Food == "" {
		opts.Glyphs.Food = def.Glyphs.Food
	}
	if opts.ActivateKey == "" {
		opts.ActivateKey = def.ActivateKey
	}
	options = opts
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Arcade runs a Game inside the terminal platform.
type Arcade struct {
	game    *Game
	pacer   core.Pacer
	opts    Options
	screenW int
	screenH int
	seq     uint64 // Bumped whenever the snapshot changes
}

// New creates an arcade adapter. Reset must be called before Step.
func New() *Arcade {
	return &Arcade{opts: options}
}

// ID returns the game identifier.
func (a *Arcade) ID() string {
	return ID
}

// Title returns the display name.
func (a *Arcade) Title() string {
	return "Copperhead"
}

// Reset starts a new round. The first call creates the Game; later calls
// reseed it and keep the high score.
func (a *Arcade) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	if a.game == nil {
		a.game = NewGame(rng)
	} else {
		a.game.rng = rng
		a.game.Reset()
	}
	a.pacer = core.NewPacer(MoveInterval, cfg.TickRate)
	a.Resize(cfg.ScreenW, cfg.ScreenH)
	a.seq++
}

// Resize records the screen size. The simulation keeps running.
func (a *Arcade) Resize(width, height int) {
	a.screenW = width
	a.screenH = height
}

// tooSmall reports whether the board cannot be drawn; play pauses meanwhile.
func (a *Arcade) tooSmall() bool {
	return a.screenW < MinScreenW || a.screenH < MinScreenH
}

// Step forwards the frame's actions in arrival order, then runs every
// simulation tick that became due during this frame.
func (a *Arcade) Step(in core.InputFrame) core.StepResult {
	state, tick := a.game.State(), a.game.tick

	for _, action := range in.Actions() {
		a.game.Pressed(eventFor(action))
	}

	// The first move comes one full interval after the round starts.
	if state == StateStart && a.game.State() == StateRunning {
		a.pacer.Reset()
	}

	ticks := 0
	if !a.tooSmall() {
		ticks = a.pacer.Advance()
		for range ticks {
			a.game.Update()
		}
	}

	if a.game.State() != state || a.game.tick != tick {
		a.seq++
	}

	return core.StepResult{State: a.State(), Ticks: ticks}
}

// eventFor maps platform actions to game events.
func eventFor(action core.Action) Event {
	switch action {
	case core.ActionUp:
		return EventUp
	case core.ActionDown:
		return EventDown
	case core.ActionLeft:
		return EventLeft
	case core.ActionRight:
		return EventRight
	case core.ActionActivate:
		return EventActivate
	default:
		return EventOther
	}
}

// State returns the current game state.
func (a *Arcade) State() core.GameState {
	state := a.game.State()
	return core.GameState{
		Score:    a.game.Score(),
		Running:  state == StateRunning,
		GameOver: state == StateGameOver,
	}
}

// RoundStats implements registry.Reporter.
func (a *Arcade) RoundStats() registry.RoundStats {
	return registry.RoundStats{
		Length:    a.game.snake.Len(),
		Ticks:     a.game.tick,
		HighScore: a.game.HighScore(),
		BoardFull: a.game.boardFull,
	}
}

// Snapshot returns the game's snapshot.
func (a *Arcade) Snapshot() Snapshot {
	return a.game.Snapshot()
}

// Frame implements registry.Spectatable.
func (a *Arcade) Frame() (uint64, any) {
	return a.seq, a.Snapshot()
}

var (
	_ registry.Spectatable = (*Arcade)(nil)
	_ registry.Reporter    = (*Arcade)(nil)
)
