// Package tui provides the terminal scoreboard and its SSH server.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/axolotl-dash/internal/highscore"
)

// Scoreboard layout constants
const (
	tableWidth    = 30
	minTableRows  = 3
	headerHeight  = 7 // Title, banner, borders, help
	defaultWidth  = 80
	defaultHeight = 24
)

// Loader reads the current ranking. *highscore.Ledger satisfies it.
type Loader interface {
	Load() (highscore.Ranking, error)
}

// RankingMsg carries a freshly loaded ranking into the model.
type RankingMsg struct {
	Ranking highscore.Ranking
	Err     error
}

// ReloadMsg asks the model to load the ranking again.
type ReloadMsg struct{}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reload, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Reload, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// Highlight marks the row belonging to the run just recorded.
type Highlight struct {
	Rank  int // 1-based; 0 means nothing to highlight
	Score int
}

// ScoreboardModel is the Bubble Tea model for the top-10 board.
type ScoreboardModel struct {
	loader    Loader
	ranking   highscore.Ranking
	loadErr   error
	highlight Highlight
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
}

// NewScoreboardModel creates a scoreboard that reads from loader.
// The ranking is loaded once here; ReloadMsg or the reload key load it again.
func NewScoreboardModel(loader Loader, width, height int) ScoreboardModel {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		loader: loader,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.applyRanking(loader.Load())
	return m
}

// WithHighlight returns a copy of the model that marks the given run.
func (m ScoreboardModel) WithHighlight(hl Highlight) ScoreboardModel {
	m.highlight = hl
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: tableWidth - 10},
	}

	rows := m.height - headerHeight
	if rows < minTableRows {
		rows = minTableRows
	}
	if rows > highscore.Capacity {
		rows = highscore.Capacity
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(rows),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// applyRanking stores a load result and refreshes the table.
func (m *ScoreboardModel) applyRanking(r highscore.Ranking, err error) {
	m.ranking = r
	m.loadErr = err
	m.updateTableRows()
}

// updateTableRows rebuilds the rows and puts the cursor on this run's entry.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.ranking))
	for i, score := range m.ranking {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", score),
		}
	}
	m.table.SetRows(rows)

	if m.isHighlighted() {
		m.table.SetCursor(m.highlight.Rank - 1)
	} else {
		m.table.GotoTop()
	}
}

// isHighlighted reports whether the highlighted run is still on the board.
func (m ScoreboardModel) isHighlighted() bool {
	rank := m.highlight.Rank
	return rank > 0 && rank <= len(m.ranking) && m.ranking[rank-1] == m.highlight.Score
}

// reloadCmd loads the ranking off the update loop.
func (m ScoreboardModel) reloadCmd() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		r, err := loader.Load()
		return RankingMsg{Ranking: r, Err: err}
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reload):
			return m, m.reloadCmd()

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case ReloadMsg:
		return m, m.reloadCmd()

	case RankingMsg:
		m.applyRanking(msg.Ranking, msg.Err)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("TOP 10 HIGH SCORES"), m.width))
	b.WriteString("\n")

	if banner := m.banner(); banner != "" {
		b.WriteString(centerText(banner, m.width))
	}
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// banner returns the line under the title: the new-high notice, or a
// warning when stored history was discarded.
func (m ScoreboardModel) banner() string {
	if m.isHighlighted() {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")).
			Render(fmt.Sprintf("New High Score! Rank #%d", m.highlight.Rank))
	}
	if m.loadErr != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Render("Saved scores were unreadable and have been reset.")
	}
	return ""
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.ranking) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a run to set a high score!")
	}

	return m.table.View()
}

// Ranking returns the ranking currently displayed.
func (m ScoreboardModel) Ranking() highscore.Ranking {
	return m.ranking.Clone()
}

// centerText places a (possibly multi-line) block in the middle of width columns.
func centerText(s string, width int) string {
	if lipgloss.Width(s) >= width {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// RunScoreboard runs the scoreboard in the local terminal.
// Each value received on changes triggers a reload; changes may be nil.
func RunScoreboard(loader Loader, width, height int, hl Highlight, changes <-chan struct{}) error {
	model := NewScoreboardModel(loader, width, height).WithHighlight(hl)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if changes != nil {
		go func() {
			for range changes {
				p.Send(ReloadMsg{})
			}
		}()
	}

	_, err := p.Run()
	return err
}
