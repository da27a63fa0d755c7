package core

// Color is the foreground of one screen cell. Front ends map it to their own
// palette through ANSI.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ANSI returns the xterm 256-color index of c, or -1 for the terminal default.
func (c Color) ANSI() int {
	switch {
	case c == ColorDefault:
		return -1
	case c <= ColorWhite:
		return int(c)
	case c <= ColorBrightWhite:
		return int(c) + 1 // skip bright black
	case c == ColorOrange:
		return 208
	case c == ColorGray:
		return 240
	}
	return -1
}
