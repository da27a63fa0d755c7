// Package console is the tcell front end: it owns the terminal directly and
// runs the engine from its own ticker instead of a Bubble Tea program.
package console

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/engine"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
	"github.com/vovakirdan/tui-brickgame/internal/platform/frame"
	"github.com/vovakirdan/tui-brickgame/internal/platform/session"
)

// Options wires the console to its collaborators. Every field is optional.
type Options struct {
	Scores      engine.ScoreStore
	History     session.History
	Sounds      engine.SoundPlayer
	Logger      *log.Logger
	Seed        int64
	HoldTimeout time.Duration
}

// Style returns the tcell style for a frame color.
func Style(c core.Color) tcell.Style {
	n := c.ANSI()
	if n < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(n))
}

// Console hosts one game on a tcell screen.
type Console struct {
	screen tcell.Screen
	game   *engine.Game
	board  *entity.Board
	buf    *core.Screen
	hold   *session.HoldTracker
	record *session.Recorder
	pacer  *engine.Pacer
	logger *log.Logger
	now    func() time.Time
}

// New creates a console on an initialized screen and starts the game.
func New(screen tcell.Screen, rules engine.Rules, opts Options) *Console {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	board := entity.NewBoard()
	game := engine.New(rules, engine.Options{
		Canvas: board,
		Scores: opts.Scores,
		Sounds: opts.Sounds,
		Logger: opts.Logger,
		Seed:   opts.Seed,
	})
	game.Start()

	return &Console{
		screen: screen,
		game:   game,
		board:  board,
		buf:    core.NewScreen(frame.Width, frame.Height),
		hold:   session.NewHoldTracker(opts.HoldTimeout),
		record: session.NewRecorder(opts.History, opts.Logger),
		pacer:  engine.NewPacer(core.TickInterval),
		logger: opts.Logger,
		now:    time.Now,
	}
}

// Game returns the hosted game.
func (c *Console) Game() *engine.Game { return c.game }

// HandleEvent queues engine keys and reports application commands.
func (c *Console) HandleEvent(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, cmd := MapKey(ev)
		if cmd != CommandNone {
			return cmd
		}
		if k != core.KeyNone {
			c.hold.Press(k, c.now())
			c.game.Input().Push(core.Press(k))
		}
	case *tcell.EventResize:
		c.screen.Sync()
	}
	return CommandNone
}

// Step releases stale keys and runs one engine tick. It returns the delay
// until the next tick.
func (c *Console) Step(now time.Time) time.Duration {
	for _, ev := range c.hold.Expire(now) {
		c.game.Input().Push(ev)
	}
	c.game.Tick()
	c.record.Observe(c.game)
	return c.pacer.Next(now)
}

// Draw composes the frame and copies it onto the terminal, centered.
func (c *Console) Draw() {
	frame.Draw(c.buf, frame.Capture(c.game, c.board))

	c.screen.Clear()
	w, h := c.screen.Size()
	ox := max(0, (w-c.buf.Width())/2)
	oy := max(0, (h-c.buf.Height())/2)
	for y := range c.buf.Height() {
		for x := range c.buf.Width() {
			cell := c.buf.GetCell(x, y)
			c.screen.SetContent(ox+x, oy+y, cell.Rune, nil, Style(cell.Color))
		}
	}
	c.screen.Show()
}

// Run drives the game until the player quits or asks for the menu.
func (c *Console) Run() (backToMenu bool) {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	timer := time.NewTimer(c.pacer.Nominal())
	defer timer.Stop()
	c.Draw()

	for {
		select {
		case ev := <-events:
			switch c.HandleEvent(ev) {
			case CommandQuit:
				return false
			case CommandMenu:
				c.game.World().ClearAll()
				return true
			}
		case now := <-timer.C:
			timer.Reset(c.Step(now))
			c.Draw()
		}
	}
}

// Play opens the terminal, runs rules on it and restores the terminal.
func Play(rules engine.Rules, opts Options) (backToMenu bool, err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return false, err
	}
	if err := screen.Init(); err != nil {
		return false, err
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	return New(screen, rules, opts).Run(), nil
}
