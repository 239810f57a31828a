package snake

import "math/rand"

// State is the lifecycle phase of a game.
type State int

const (
	StateStart State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Event is a discrete input delivered to the game.
type Event int

const (
	EventOther Event = iota
	EventUp
	EventDown
	EventLeft
	EventRight
	EventActivate
)

// Direction returns the heading a directional event asks for.
func (e Event) Direction() (Direction, bool) {
	switch e {
	case EventUp:
		return DirUp, true
	case EventDown:
		return DirDown, true
	case EventLeft:
		return DirLeft, true
	case EventRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Game owns one snake, its food, the scores and the lifecycle state.
// It is not safe for concurrent use; the driver serialises Pressed and Update.
type Game struct {
	rng       *rand.Rand
	snake     *Snake
	food      Point
	score     int
	highScore int
	state     State
	tick      uint64 // Updates in the current game

	// Single-slot direction buffer, applied at the start of the next Update.
	pending    Direction
	hasPending bool

	boardFull bool
}

// NewGame creates a game in the Start state with a fresh snake and food.
// The RNG drives food placement; pass a seeded source for reproducible play.
func NewGame(rng *rand.Rand) *Game {
	g := &Game{rng: rng}
	g.Reset()
	return g
}

// Reset starts a new round: fresh snake and food, zero score, Start state.
// The high score is kept.
func (g *Game) Reset() {
	g.snake = NewSnake()
	g.score = 0
	g.state = StateStart
	g.tick = 0
	g.hasPending = false
	g.boardFull = false
	g.spawnFood()
}

// Pressed feeds one input event through the state machine.
func (g *Game) Pressed(ev Event) {
	switch g.state {
	case StateStart:
		if ev == EventActivate {
			g.state = StateRunning
		}
	case StateRunning:
		if dir, ok := ev.Direction(); ok {
			g.queue(dir)
		}
	case StateGameOver:
		if ev == EventActivate {
			g.Reset()
		}
	}
}

// queue buffers a direction unless one is already waiting for the next tick.
func (g *Game) queue(dir Direction) {
	if g.hasPending {
		return
	}
	g.pending = dir
	g.hasPending = true
}

// Update advances the simulation by one tick. It does nothing unless the
// game is running. Eating is resolved before collisions, so a fatal move
// that also eats still scores.
func (g *Game) Update() {
	if g.state != StateRunning {
		return
	}
	g.tick++

	if g.hasPending {
		g.snake.Turn(g.pending)
		g.hasPending = false
	}

	if g.snake.Move(g.food) {
		g.score++
		g.snake.Grow()
		if !g.spawnFood() {
			g.boardFull = true
		}
	}

	if !g.snake.Head().InGrid() || g.snake.SelfCollision() || g.boardFull {
		g.end()
	}
}

// end moves to GameOver and records the high score.
func (g *Game) end() {
	g.state = StateGameOver
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// spawnFood places food on a random free cell by rejection sampling.
// It returns false, leaving food off the grid, when the snake covers every cell.
func (g *Game) spawnFood() bool {
	if g.freeCells() == 0 {
		g.food = Point{X: -1, Y: -1}
		return false
	}
	for {
		p := Point{X: g.rng.Intn(GridWidth), Y: g.rng.Intn(GridHeight)}
		if !g.snake.Occupies(p) {
			g.food = p
			return true
		}
	}
}

// freeCells counts grid cells not covered by the snake.
func (g *Game) freeCells() int {
	seen := make(map[Point]struct{}, g.snake.Len())
	for _, seg := range g.snake.body {
		if seg.InGrid() {
			seen[seg] = struct{}{}
		}
	}
	return GridWidth*GridHeight - len(seen)
}

// State returns the lifecycle phase.
func (g *Game) State() State {
	return g.state
}

// Score returns the score of the current round.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score of any finished round.
func (g *Game) HighScore() int {
	return g.highScore
}
