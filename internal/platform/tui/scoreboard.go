package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/scores"
	"github.com/vovakirdan/kids-arcade/internal/storage"
)

// recentRounds is how many past rounds show under the records.
const recentRounds = 5

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("up/k", "prev game")),
		Down: key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("down/j", "next game")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel is the records screen: one row per game with its best
// score and stars, and the last few rounds of the highlighted game when the
// database is open.
type ScoreboardModel struct {
	games      []registry.GameInfo
	directions map[string]scores.Direction
	gameCursor int
	book       *scores.Book
	store      *storage.Store
	record     scores.Record
	recent     []storage.ScoreEntry
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new scoreboard model. store may be nil.
func NewScoreboardModel(book *scores.Book, store *storage.Store, width, height int) ScoreboardModel {
	games := registry.List()
	m := ScoreboardModel{
		games:      games,
		directions: scoreDirections(games),
		book:       book,
		store:      store,
		keys:       DefaultScoreboardKeyMap(),
		help:       help.New(),
		width:      width,
		height:     height,
	}
	m.table = m.recordTable()
	if len(games) > 0 {
		m.loadScores(games[0].ID)
	}
	return m
}

// scoreDirections learns which way each game's score improves. The star
// scale is part of a game's loaded configuration, so each game is reset once.
func scoreDirections(games []registry.GameInfo) map[string]scores.Direction {
	dirs := make(map[string]scores.Direction, len(games))
	for _, info := range games {
		g, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		g.Reset(core.DefaultConfig())
		dirs[info.ID] = g.Scale().Direction
	}
	return dirs
}

// recordTable lists every game with its best record and, with a database,
// how many rounds were played.
func (m ScoreboardModel) recordTable() table.Model {
	var plays map[string]*storage.GameStats
	if m.store != nil {
		plays, _ = m.store.AllGamesStats()
	}

	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		best, stars := "-", ""
		if m.book != nil {
			if r := m.book.Get(g.ID); !r.Empty() {
				best, stars = strconv.Itoa(r.BestScore), starLine(r.BestStars)
			}
		}
		played := "-"
		if st, ok := plays[g.ID]; ok {
			played = strconv.Itoa(st.GamesCount)
		}
		rows[i] = table.Row{g.Title, best, stars, played}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Game", Width: 18},
			{Title: "Best", Width: 6},
			{Title: "Stars", Width: 6},
			{Title: "Plays", Width: 6},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, max(m.height-recentRounds-10, 3))),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)
	t.SetCursor(m.gameCursor)
	return t
}

// loadScores reads the record and the latest rounds of one game.
func (m *ScoreboardModel) loadScores(gameID string) {
	m.record = scores.Record{}
	if m.book != nil {
		m.record = m.book.Get(gameID)
	}
	m.recent = nil
	if m.store != nil {
		if entries, err := m.store.RecentScores(gameID, recentRounds); err == nil {
			m.recent = entries
		}
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.recordTable()
	}
	return m, nil
}

// move steps the highlighted game, wrapping at both ends.
func (m *ScoreboardModel) move(d int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + d + len(m.games)) % len(m.games)
	m.table.SetCursor(m.gameCursor)
	m.loadScores(m.games[m.gameCursor].ID)
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(boardBoxStyle.Render(m.table.View()), m.width))
	b.WriteString("\n\n")

	if len(m.games) > 0 {
		b.WriteString(centerText(m.games[m.gameCursor].Title+"  "+m.recordLine(), m.width))
		b.WriteString("\n")
		b.WriteString(centerBlock(boardDimStyle.Render(m.recentLines()), m.width))
		b.WriteString("\n")
	}
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// recordLine summarises the best record of the highlighted game.
func (m ScoreboardModel) recordLine() string {
	if m.record.Empty() {
		return "No best score yet"
	}
	line := fmt.Sprintf("Best: %d  %s", m.record.BestScore, starLine(m.record.BestStars))
	if len(m.games) > 0 && m.directions[m.games[m.gameCursor].ID] == scores.LowerIsBetter {
		line += "  (fewer is better)"
	}
	return line
}

func (m ScoreboardModel) recentLines() string {
	if len(m.recent) == 0 {
		return "No rounds recorded yet."
	}
	lines := make([]string, len(m.recent))
	for i, r := range m.recent {
		lines[i] = fmt.Sprintf("%4d  %s  %s", r.Score, starLine(r.Stars), r.CreatedAt.Format("Jan 02 15:04"))
	}
	return strings.Join(lines, "\n")
}

// centerBlock centers a multi-line block as a whole.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
