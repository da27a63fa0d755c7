package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/registry"
	"github.com/vovakirdan/tui-brickgame/internal/storage"
)

// runsShown is how many runs the scoreboard lists per game.
const runsShown = 10

// ScoreHistory is the read side of the score store the scoreboard needs.
type ScoreHistory interface {
	TopScores(id core.GameID, limit int) ([]storage.ScoreEntry, error)
	ReadHighScore(id core.GameID) (int, error)
}

type scoreboardKeys struct {
	Prev, Next key.Binding
	Up, Down   key.Binding
	Back, Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultScoreboardKeys = scoreboardKeys{
	Prev: key.NewBinding(key.WithKeys("left", "a", "shift+tab"), key.WithHelp("left", "prev game")),
	Next: key.NewBinding(key.WithKeys("right", "d", "tab"), key.WithHelp("right/tab", "next game")),
	Up:   key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("up", "scroll")),
	Down: key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("down", "scroll")),
	Back: key.NewBinding(key.WithKeys("esc", "b", "backspace"), key.WithHelp("esc", "back")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activeGameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	emptyRunsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// ScoreboardModel shows every game's record next to the best runs of the
// selected one.
type ScoreboardModel struct {
	games   []registry.GameInfo
	records map[core.GameID]int
	cursor  int
	store   ScoreHistory
	runs    []storage.ScoreEntry
	table   table.Model
	help    help.Model
	keys    scoreboardKeys
	width   int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard on the first game. store may be nil.
func NewScoreboardModel(store ScoreHistory, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:   registry.List(),
		records: make(map[core.GameID]int),
		store:   store,
		help:    help.New(),
		keys:    defaultScoreboardKeys,
		width:   width,
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 9},
			{Title: "Played", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(min(runsShown+1, max(3, height-10))),
		table.WithStyles(styles),
	)

	if store != nil {
		for _, g := range m.games {
			if high, err := store.ReadHighScore(g.ID); err == nil {
				m.records[g.ID] = high
			}
		}
	}
	m.load()
	return m
}

// load fetches the runs of the selected game.
func (m *ScoreboardModel) load() {
	m.runs = nil
	if m.store != nil && len(m.games) > 0 {
		if runs, err := m.store.TopScores(m.games[m.cursor].ID, runsShown); err == nil {
			m.runs = runs
		}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%07d", r.Score),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.games)) % len(m.games)
	m.load()
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
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the record list and the run table side by side.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var games strings.Builder
	games.WriteString("RECORDS\n\n")
	for i, g := range m.games {
		line := fmt.Sprintf("  %-10s %07d", g.Title, m.records[g.ID])
		if i == m.cursor {
			line = activeGameStyle.Render("> " + line[2:])
		}
		games.WriteString(line + "\n")
	}

	runs := m.table.View()
	if len(m.runs) == 0 {
		runs = emptyRunsStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(games.String()),
		" ",
		panelStyle.Render(runs),
	)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("H I G H   S C O R E S"), m.width))
	b.WriteString("\n\n")
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// Selected returns the game whose runs are shown.
func (m ScoreboardModel) Selected() core.GameID {
	if len(m.games) == 0 {
		return 0
	}
	return m.games[m.cursor].ID
}

// Record returns the high score of the selected game.
func (m ScoreboardModel) Record() int {
	return m.records[m.Selected()]
}

// Rows returns the table rows currently shown.
func (m ScoreboardModel) Rows() []table.Row {
	return m.table.Rows()
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
func RunScoreboard(store ScoreHistory, width, height int) (goBack bool, err error) {
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
