package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-brickgame/internal/core"
)

// Command is an application-level request that never reaches the engine.
type Command int

const (
	CommandNone Command = iota
	CommandQuit         // Esc, Ctrl+C
	CommandMenu         // Backspace
)

// MapKey translates a tcell key event to an engine key or a command.
func MapKey(ev *tcell.EventKey) (core.Key, Command) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.KeyNone, CommandQuit
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.KeyNone, CommandMenu
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		if ev.Modifiers()&tcell.ModShift != 0 {
			return core.KeyHold, CommandNone
		}
		return arrows[ev.Key()], CommandNone
	case tcell.KeyBacktab:
		return core.KeyHold, CommandNone
	case tcell.KeyEnter:
		return core.KeyReset, CommandNone
	case tcell.KeyRune:
		return runes[ev.Rune()], CommandNone
	}
	return core.KeyNone, CommandNone
}

var arrows = map[tcell.Key]core.Key{
	tcell.KeyUp:    core.KeyUp,
	tcell.KeyDown:  core.KeyDown,
	tcell.KeyLeft:  core.KeyLeft,
	tcell.KeyRight: core.KeyRight,
}

var runes = map[rune]core.Key{
	'w': core.KeyUp,
	's': core.KeyDown,
	'a': core.KeyLeft,
	'd': core.KeyRight,
	' ': core.KeyAction,
	'c': core.KeyHold,
	'C': core.KeyHold,
	'p': core.KeyPause,
	'P': core.KeyPause,
}
