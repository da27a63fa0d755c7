package tetris

import (
	"slices"
	"strings"

	"github.com/vovakirdan/tui-brickgame/internal/core"
)

// Shape is a tetromino letter.
type Shape byte

const (
	ShapeT Shape = 'T'
	ShapeJ Shape = 'J'
	ShapeL Shape = 'L'
	ShapeS Shape = 'S'
	ShapeZ Shape = 'Z'
	ShapeI Shape = 'I'
	ShapeO Shape = 'O'
)

// AllShapes lists the shapes in draw order for the random generator.
var AllShapes = []Shape{ShapeT, ShapeJ, ShapeL, ShapeS, ShapeZ, ShapeI, ShapeO}

func (s Shape) String() string {
	if s == 0 {
		return "-"
	}
	return string(rune(s))
}

// rotation is one orientation: its cells relative to the anchor and the
// index of the orientation a rotation leads to.
type rotation struct {
	next  int
	cells [4][2]int
}

var rotations = map[Shape][]rotation{
	ShapeT: {
		{1, [4][2]int{{-1, 0}, {0, 0}, {1, 0}, {0, -1}}},
		{2, [4][2]int{{-1, 0}, {0, 0}, {0, -1}, {0, 1}}},
		{3, [4][2]int{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}},
		{0, [4][2]int{{0, -1}, {0, 0}, {1, 0}, {0, 1}}},
	},
	ShapeJ: {
		{1, [4][2]int{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}}},
		{2, [4][2]int{{0, -1}, {0, 0}, {0, 1}, {-1, 1}}},
		{3, [4][2]int{{-1, -1}, {0, -1}, {1, -1}, {1, 0}}},
		{0, [4][2]int{{-1, -1}, {0, -1}, {-1, 0}, {-1, 1}}},
	},
	ShapeL: {
		{1, [4][2]int{{-1, 0}, {0, 0}, {1, 0}, {1, -1}}},
		{2, [4][2]int{{-1, -1}, {0, -1}, {0, 0}, {0, 1}}},
		{3, [4][2]int{{-1, 0}, {-1, -1}, {0, -1}, {1, -1}}},
		{0, [4][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}}},
	},
	ShapeS: {
		{1, [4][2]int{{-1, 0}, {0, 0}, {0, -1}, {1, -1}}},
		{0, [4][2]int{{0, 1}, {0, 0}, {-1, 0}, {-1, -1}}},
	},
	ShapeZ: {
		{1, [4][2]int{{-1, -1}, {0, -1}, {0, 0}, {1, 0}}},
		{0, [4][2]int{{0, -1}, {0, 0}, {-1, 0}, {-1, 1}}},
	},
	ShapeI: {
		{1, [4][2]int{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}},
		{0, [4][2]int{{0, -1}, {0, 0}, {0, 1}, {0, 2}}},
	},
	ShapeO: {
		{0, [4][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	},
}

// States returns the number of orientations of the shape.
func (s Shape) States() int {
	return len(rotations[s])
}

// Cells returns the shape's cells in the given orientation around anchor.
func (s Shape) Cells(anchor core.Point, state int) []core.Point {
	rots := rotations[s]
	if state < 0 || state >= len(rots) {
		return nil
	}
	out := make([]core.Point, 0, 4)
	for _, c := range rots[state].cells {
		out = append(out, anchor.Add(core.Pt(c[0], c[1])))
	}
	return out
}

// Preview renders the spawn orientation as rows of "[]" cells for the HUD.
func (s Shape) Preview() []string {
	cells := s.Cells(core.Point{}, 0)
	if len(cells) == 0 {
		return nil
	}
	minX, maxX, minY, maxY := cells[0].X, cells[0].X, cells[0].Y, cells[0].Y
	for _, c := range cells[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}

	rows := make([]string, 0, maxY-minY+1)
	for y := minY; y <= maxY; y++ {
		var sb strings.Builder
		for x := minX; x <= maxX; x++ {
			if slices.Contains(cells, core.Pt(x, y)) {
				sb.WriteString("[]")
			} else {
				sb.WriteString("  ")
			}
		}
		rows = append(rows, strings.TrimRight(sb.String(), " "))
	}
	return rows
}
