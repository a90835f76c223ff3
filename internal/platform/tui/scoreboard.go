package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/registry"
	"github.com/vovakirdan/tui-pinball/internal/storage"
)

const (
	minWidthForStats = 90  // wide enough to put the stats panel beside the table
	statsWidth       = 24  // stats panel width
	maxScores        = 100 // rows loaded per board
	autopilotSuffix  = "_autopilot"
)

// scoreOrder selects how a board's rows are sorted.
type scoreOrder int

const (
	orderBest scoreOrder = iota
	orderRecent
)

func (o scoreOrder) String() string {
	if o == orderRecent {
		return "recent"
	}
	return "best"
}

// board is one leaderboard: a registered table, or the autopilot runs
// recorded for it by the spectator server.
type board struct {
	ID    string
	Title string
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Next  key.Binding
	Prev  key.Binding
	Order key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Order, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Order, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next board"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev board"),
		),
		Order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	boards   []board
	cursor   int
	order    scoreOrder
	store    *storage.Store
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	tickRate int // simulation rate, to turn ticks into play time

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		boards:   listBoards(store),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
		tickRate: config.DefaultPinballConfig().Physics.TickRate,
	}
	m.help.Width = width
	m.table = m.createTable()
	m.reload()
	return m
}

// listBoards returns the registered tables followed by every autopilot board
// that has recorded runs.
func listBoards(store *storage.Store) []board {
	games := registry.List()
	boards := make([]board, 0, len(games))
	titles := make(map[string]string, len(games))
	for _, g := range games {
		boards = append(boards, board{ID: g.ID, Title: g.Title})
		titles[g.ID] = g.Title
	}
	if store == nil {
		return boards
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		return boards
	}
	var auto []board
	for id := range all {
		base, ok := strings.CutSuffix(id, autopilotSuffix)
		if !ok {
			continue
		}
		title, known := titles[base]
		if !known {
			continue
		}
		auto = append(auto, board{ID: id, Title: title + " (autopilot)"})
	}
	sort.Slice(auto, func(i, j int) bool { return auto[i].ID < auto[j].ID })
	return append(boards, auto...)
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForStats
}

// createTable builds the score table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 10},
		{Title: "Balls", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Played", Width: 13},
	}

	avail := m.width - 6
	if m.wide() {
		avail -= statsWidth + 4
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := avail - used; spare > 0 {
		columns[1].Width += min(spare, 6)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

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

// current returns the board under the cursor.
func (m ScoreboardModel) current() (board, bool) {
	if len(m.boards) == 0 {
		return board{}, false
	}
	return m.boards[m.cursor], true
}

// reload fetches rows and totals for the current board in the current order.
func (m *ScoreboardModel) reload() {
	m.scores = nil
	m.stats = nil
	b, ok := m.current()
	if ok && m.store != nil {
		var scores []storage.ScoreEntry
		var err error
		if m.order == orderRecent {
			scores, err = m.store.RecentScores(b.ID, maxScores)
		} else {
			scores, err = m.store.TopScores(b.ID, maxScores)
		}
		if err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(b.ID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// playTime converts simulated ticks to play time.
func (m *ScoreboardModel) playTime(ticks int64) string {
	if m.tickRate <= 0 {
		return "-"
	}
	d := time.Duration(ticks) * time.Second / time.Duration(m.tickRate)
	return d.Truncate(time.Second).String()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Drained),
			m.playTime(s.Ticks),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// statsLine summarizes all recorded games on the current board.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games: %d  |  Best: %d  |  Average: %.0f  |  Balls drained: %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalDrained)
}

// move shifts the board cursor by delta with wraparound.
func (m *ScoreboardModel) move(delta int) {
	if len(m.boards) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.boards)) % len(m.boards)
	m.reload()
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

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.move(1)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.move(-1)
			return m, nil

		case key.Matches(msg, m.keys.Order):
			m.order = 1 - m.order
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.updateTableRows()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	title := "HIGH SCORES"
	if b, ok := m.current(); ok {
		title = fmt.Sprintf("HIGH SCORES - %s", b.Title)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(centerText(titleStyle.Render(title), m.width))
	sb.WriteString("\n")
	sb.WriteString(centerText(dimStyle.Render(m.boardTabs()+"   order: "+m.order.String()), m.width))
	sb.WriteString("\n\n")

	tbl := boxStyle.Render(m.renderTableContent())
	if m.wide() {
		panel := boxStyle.Width(statsWidth).Render(m.statsPanel())
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tbl, "  ", panel))
	} else {
		sb.WriteString(tbl)
		if line := m.statsLine(); line != "" {
			sb.WriteString("\n")
			sb.WriteString(line)
		}
	}

	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return sb.String()
}

// boardTabs shows the board position, e.g. "< 2/3 >".
func (m ScoreboardModel) boardTabs() string {
	if len(m.boards) == 0 {
		return "no boards"
	}
	return fmt.Sprintf("< %d/%d >", m.cursor+1, len(m.boards))
}

// statsPanel renders the totals for the side panel.
func (m ScoreboardModel) statsPanel() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No totals yet"
	}
	lines := []string{
		"Totals",
		"",
		fmt.Sprintf("Games    %d", m.stats.GamesCount),
		fmt.Sprintf("Best     %d", m.stats.HighScore),
		fmt.Sprintf("Average  %.0f", m.stats.AvgScore),
		fmt.Sprintf("Drained  %d", m.stats.TotalDrained),
	}
	if !m.stats.LastPlayed.IsZero() {
		lines = append(lines, fmt.Sprintf("Last     %s", m.stats.LastPlayed.Format("Jan 02")))
	}
	return strings.Join(lines, "\n")
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nDrain your last ball to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
