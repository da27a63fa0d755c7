package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/engine"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
	"github.com/vovakirdan/tui-brickgame/internal/platform/frame"
	"github.com/vovakirdan/tui-brickgame/internal/platform/session"
)

// Options wires the game model to its collaborators. Every field is optional.
type Options struct {
	Scores      engine.ScoreStore
	History     session.History
	Sounds      engine.SoundPlayer
	Logger      *log.Logger
	Seed        int64
	HoldTimeout time.Duration
}

// endScreen counts end-of-game transitions; the banner itself is drawn by
// the frame from the game state.
type endScreen struct {
	victories int
	defeats   int
}

func (e *endScreen) ShowVictory() { e.victories++ }
func (e *endScreen) ShowDefeat()  { e.defeats++ }

// Model is the Bubble Tea model running one game.
type Model struct {
	game   *engine.Game
	board  *entity.Board
	screen *core.Screen
	keys   *KeyMapper
	hold   *session.HoldTracker
	record *session.Recorder
	pacer  *engine.Pacer
	end    *endScreen
	help   help.Model
	now    func() time.Time

	quitting   bool
	backToMenu bool
}

// NewModel creates a model and starts the game.
func NewModel(rules engine.Rules, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	board := entity.NewBoard()
	end := &endScreen{}
	game := engine.New(rules, engine.Options{
		Canvas:  board,
		Scores:  opts.Scores,
		Screens: end,
		Sounds:  opts.Sounds,
		Logger:  opts.Logger,
		Seed:    opts.Seed,
	})
	game.Start()

	return Model{
		game:   game,
		board:  board,
		screen: core.NewScreen(frame.Width, frame.Height),
		keys:   NewKeyMapper(),
		hold:   session.NewHoldTracker(opts.HoldTimeout),
		record: session.NewRecorder(opts.History, opts.Logger),
		pacer:  engine.NewPacer(core.TickInterval),
		end:    end,
		help:   help.New(),
		now:    time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pacer.Nominal())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Engine keys are queued for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, cmd := m.keys.MapKey(msg)
	switch cmd {
	case CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case CommandMenu:
		m.backToMenu = true
		m.game.World().ClearAll()
		return m, tea.Quit
	}

	if k != core.KeyNone {
		m.hold.Press(k, m.now())
		m.game.Input().Push(core.Press(k))
	}
	return m, nil
}

// handleTick releases stale keys, runs one engine tick and schedules the next.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, ev := range m.hold.Expire(now) {
		m.game.Input().Push(ev)
	}
	m.game.Tick()
	m.record.Observe(m.game)

	return m, tickCmd(m.pacer.Next(now))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	frame.Draw(m.screen, frame.Capture(m.game, m.board))

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.ShortHelpView(gameBindings)))
	return b.String()
}

// Game returns the hosted game.
func (m Model) Game() *engine.Game { return m.game }

// BackToMenu reports whether the player asked for the game selector.
func (m Model) BackToMenu() bool { return m.backToMenu }

// IsQuitting returns true if the player asked to quit.
func (m Model) IsQuitting() bool { return m.quitting }

var gameBindings = []key.Binding{
	key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("arrows", "move")),
	key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "action")),
	key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "hold")),
	key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "reset")),
	key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "menu")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
}

// Run plays one game until the player quits or goes back to the selector.
func Run(rules engine.Rules, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(rules, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
