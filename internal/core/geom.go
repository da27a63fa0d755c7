// Package core provides the fundamental grid types shared by the brick game
// engine, its rule engines and the terminal front ends. It has no external
// dependencies to keep game logic pure and testable.
package core

// Board dimensions in cells.
const (
	GridW = 10
	GridH = 20
)

// Point is a cell coordinate on the board. X grows rightward, Y grows downward.
// Off-grid values are legal; entities sitting there are simply never drawn.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// OnGrid reports whether p lies inside the 10x20 board.
func (p Point) OnGrid() bool {
	return p.X >= 0 && p.X < GridW && p.Y >= 0 && p.Y < GridH
}

// Direction is a unit step on the grid.
type Direction int

const (
	DirNull Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Offset returns the unit displacement for the direction.
func (d Direction) Offset() Point {
	switch d {
	case DirUp:
		return Point{0, -1}
	case DirDown:
		return Point{0, 1}
	case DirLeft:
		return Point{-1, 0}
	case DirRight:
		return Point{1, 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction. Null is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNull
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Null"
	}
}

// Rect represents an axis-aligned box of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Grow returns r expanded by n cells on every side.
func (r Rect) Grow(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}
