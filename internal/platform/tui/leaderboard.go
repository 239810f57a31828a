package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/copperhead/internal/storage"
)

// Leaderboard layout constants
const (
	maxResults     = 100 // Max results to load
	leaderboardPad = 8   // Rows for title, borders and footer
)

// LeaderboardModel shows the best rounds of this process in a table.
// It is drawn over the game while the round is not running.
type LeaderboardModel struct {
	store   *storage.Store
	gameID  string
	title   string
	player  string
	results []storage.Result
	stats   *storage.GameStats
	table   table.Model
	width   int
	height  int
	err     error
}

// NewLeaderboard creates a leaderboard for one game.
func NewLeaderboard(store *storage.Store, gameID, title, player string, width, height int) LeaderboardModel {
	m := LeaderboardModel{
		store:  store,
		gameID: gameID,
		title:  title,
		player: player,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table sized to the screen.
func (m *LeaderboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 7},
		{Title: "Length", Width: 7},
		{Title: "When", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-leaderboardPad, 3)),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#40210D")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#F2D9A6")).
		Background(lipgloss.Color("#994D1A")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads results from the store.
func (m *LeaderboardModel) Refresh() {
	m.results, m.stats, m.err = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	results, err := m.store.TopResults(m.gameID, maxResults)
	if err != nil {
		m.err = err
	} else {
		m.results = results
	}
	if stats, err := m.store.Stats(m.gameID); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current results.
func (m *LeaderboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rank := fmt.Sprintf("#%d", i+1)
		if r.Player == m.player && m.player != "" {
			rank += "*"
		}
		rows[i] = table.Row{
			rank,
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			r.CreatedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// SetSize adapts the table to a new screen size.
func (m *LeaderboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.updateTableRows()
}

// Update passes scroll keys to the table.
func (m LeaderboardModel) Update(msg tea.Msg) (LeaderboardModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m LeaderboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#E69940"))
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("HIGH SCORES - %s", m.title), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#40210D")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))
	b.WriteString("\n")

	if m.stats != nil && m.stats.GamesCount > 0 {
		summary := fmt.Sprintf("%d rounds  avg %.1f  best %d", m.stats.GamesCount, m.stats.AvgScore, m.stats.HighScore)
		if m.stats.BoardFulls > 0 {
			summary += fmt.Sprintf("  boards filled %d", m.stats.BoardFulls)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#A08060")).Render(centerText(summary, m.width)))
	}

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m LeaderboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#A08060")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Scores are unavailable right now.")
	}
	if len(m.results) == 0 {
		return emptyStyle.Render("No scores recorded yet.\nPlay a round to set a high score!")
	}

	return m.table.View()
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
