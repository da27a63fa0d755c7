package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-brickgame/internal/core"
)

// Command is an application-level request that never reaches the engine.
type Command int

const (
	CommandNone Command = iota
	CommandQuit         // Esc, Ctrl+C
	CommandMenu         // Backspace: back to the game selector
)

// KeyMapper translates Bubble Tea key messages to engine keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an engine key or an application command.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Key, Command) {
	switch msg.String() {
	case "esc", "ctrl+c":
		return core.KeyNone, CommandQuit
	case "backspace":
		return core.KeyNone, CommandMenu
	}

	switch msg.String() {
	case "up", "w":
		return core.KeyUp, CommandNone
	case "down", "s":
		return core.KeyDown, CommandNone
	case "left", "a":
		return core.KeyLeft, CommandNone
	case "right", "d":
		return core.KeyRight, CommandNone
	case " ":
		return core.KeyAction, CommandNone
	case "c", "C", "shift+up", "shift+down", "shift+left", "shift+right", "shift+tab":
		// Terminals report no bare Shift; these stand in for it.
		return core.KeyHold, CommandNone
	case "p", "P":
		return core.KeyPause, CommandNone
	case "enter":
		return core.KeyReset, CommandNone
	}

	return core.KeyNone, CommandNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab", "h":
		return MenuActionScoreboard
	case "backspace", "b":
		return MenuActionBack
	}

	return MenuActionNone
}
