package snake

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/copperhead/internal/core"
)

// Board layout in terminal cells.
const (
	cellW  = 2                   // Columns per grid cell
	boardW = GridWidth*cellW + 2 // Grid plus border
	boardH = GridHeight + 2      // Grid plus border
	hudH   = 1                   // Status line above the board

	// MinScreenW and MinScreenH are the smallest screen that fits the board.
	MinScreenW = boardW
	MinScreenH = boardH + hudH
)

// Render draws the game to the screen.
func (a *Arcade) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Window too small", core.ColorAlert)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorMuted)
		return
	}

	area := dst.Bounds().Centered(boardW, boardH+hudH)
	frame := core.NewRect(area.X, area.Y+hudH, boardW, boardH)
	snap := a.Snapshot()

	a.renderHUD(dst, area, snap)
	dst.DrawBox(frame, core.ColorBorder)

	switch snap.State {
	case StateStart:
		a.renderStart(dst, frame)
	case StateRunning:
		a.drawCell(dst, frame, snap.Food, a.opts.Glyphs.Food, core.ColorFood)
		a.renderSnake(dst, frame, snap.Body)
	case StateGameOver:
		// Final position stays visible, food does not.
		a.renderSnake(dst, frame, snap.Body)
		a.renderGameOver(dst, frame, snap)
	}
}

// renderHUD draws the title and scores on the line above the board.
func (a *Arcade) renderHUD(dst *core.Screen, area core.Rect, snap Snapshot) {
	dst.DrawTextColored(area.X, area.Y, "COPPERHEAD", core.ColorText)
	if snap.State == StateStart {
		return
	}
	scores := fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.HighScore)
	dst.DrawTextColored(area.Right()-len(scores), area.Y, scores, core.ColorText)
}

// renderStart draws the title card with a preview of the starting snake.
func (a *Arcade) renderStart(dst *core.Screen, frame core.Rect) {
	center := GridHeight / 2
	dst.DrawTextCentered(frame.Y+1+center-4, "C O P P E R H E A D", core.ColorText)
	a.renderSnake(dst, frame, NewSnake().Body())
	prompt := fmt.Sprintf("Press %s to start", a.opts.ActivateKey)
	dst.DrawTextCentered(frame.Y+1+center+3, prompt, core.ColorMuted)
}

// renderGameOver draws the end-of-round caption and scores on a blank panel
// over the board. The snake stays visible around the panel.
func (a *Arcade) renderGameOver(dst *core.Screen, frame core.Rect, snap Snapshot) {
	caption := "COILED!"
	if snap.BoardFull {
		caption = "BOARD FULL!"
	}
	lines := []string{
		caption,
		"",
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Highest: %d", snap.HighScore),
		"",
		fmt.Sprintf("Press %s to restart", a.opts.ActivateKey),
	}
	colors := []core.Color{
		core.ColorAlert, core.ColorDefault, core.ColorText,
		core.ColorText, core.ColorDefault, core.ColorMuted,
	}

	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	panel := gameOverPanel(frame, width, len(lines))
	dst.FillRect(panel, ' ', core.ColorDefault)

	for i, line := range lines {
		if line != "" {
			dst.DrawTextCentered(panel.Y+1+i, line, colors[i])
		}
	}
}

// gameOverPanel returns the area cleared behind the game-over text: the
// text block plus one cell of padding on every side, centred in the grid.
func gameOverPanel(frame core.Rect, textW, textH int) core.Rect {
	grid := core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2)
	return grid.Centered(textW+4, textH+2)
}

// renderSnake draws the body with alternating copper tones, then the head on
// top so it stays visible when it overlaps a segment on the losing move.
func (a *Arcade) renderSnake(dst *core.Screen, frame core.Rect, body []Point) {
	if len(body) == 0 {
		return
	}
	head := body[0]
	for i, seg := range body[1:] {
		if seg == head {
			continue
		}
		color := core.ColorBodyDark
		if i%2 == 1 {
			color = core.ColorBodyLight
		}
		a.drawCell(dst, frame, seg, a.opts.Glyphs.Body, color)
	}
	a.drawCell(dst, frame, head, a.opts.Glyphs.Head, core.ColorHead)
}

// drawCell draws a glyph in grid cell p. Cells off the grid are skipped.
func (a *Arcade) drawCell(dst *core.Screen, frame core.Rect, p Point, glyph string, color core.Color) {
	if !p.InGrid() {
		return
	}
	x := frame.X + 1 + p.X*cellW
	y := frame.Y + 1 + p.Y

	runes := []rune(glyph)
	for i := range cellW {
		r := ' '
		if i < len(runes) {
			r = runes[i]
		}
		dst.SetColored(x+i, y, r, color)
	}
}
