package core

// Key identifies a logical key delivered to the engine. Front ends map
// physical keys onto these; application keys (quit, back to menu) never
// reach the engine.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyAction // Space: speed boost, launch, hard drop
	KeyHold   // Shift: Tetris hold/switch
	KeyPause  // P
	KeyReset  // Enter
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyAction:
		return "Action"
	case KeyHold:
		return "Hold"
	case KeyPause:
		return "Pause"
	case KeyReset:
		return "Reset"
	default:
		return "None"
	}
}

// Direction returns the movement direction bound to an arrow key, or DirNull.
func (k Key) Direction() Direction {
	switch k {
	case KeyUp:
		return DirUp
	case KeyDown:
		return DirDown
	case KeyLeft:
		return DirLeft
	case KeyRight:
		return DirRight
	default:
		return DirNull
	}
}

// KeyEvent is one press or release.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// Press is a pressed event for k.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k, Pressed: true}
}

// Release is a released event for k.
func Release(k Key) KeyEvent {
	return KeyEvent{Key: k}
}
