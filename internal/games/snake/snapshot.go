package snake

// Snapshot is a read-only copy of the game for renderers, spectators and
// determinism tests. Mutating it never affects the game.
type Snapshot struct {
	State     State     `json:"state"`
	Body      []Point   `json:"body"` // Head first
	Heading   Direction `json:"heading"`
	Food      Point     `json:"food"`
	Score     int       `json:"score"`
	HighScore int       `json:"high_score"`
	Tick      uint64    `json:"tick"`
	BoardFull bool      `json:"board_full"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:     g.state,
		Body:      g.snake.Body(),
		Heading:   g.snake.Heading(),
		Food:      g.food,
		Score:     g.score,
		HighScore: g.highScore,
		Tick:      g.tick,
		BoardFull: g.boardFull,
	}
}
