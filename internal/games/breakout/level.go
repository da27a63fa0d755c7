package breakout

import "github.com/vovakirdan/tui-brickgame/internal/core"

// Stages is the number of brick layouts; clearing the last one wins.
const Stages = 3

// Level is a brick layout on the top rows of the board.
type Level struct {
	Number int
	Name   string
	Bricks []core.Point // row by row, left to right
}

// ParseLevel creates a Level from an ASCII map, one string per board row
// starting at the top. '#' is a brick, anything else is empty.
func ParseLevel(number int, name string, lines []string) Level {
	level := Level{Number: number, Name: name}
	for y, line := range lines {
		for x := 0; x < len(line) && x < core.GridW; x++ {
			if line[x] == '#' {
				level.Bricks = append(level.Bricks, core.Pt(x, y))
			}
		}
	}
	return level
}

var levels = []Level{
	ParseLevel(1, "Frame", []string{
		"##########",
		"#........#",
		"#........#",
		"#..####..#",
		"#..####..#",
		"#..####..#",
		"#..####..#",
		"#........#",
		"#........#",
		"##########",
	}),

	ParseLevel(2, "Bowtie", []string{
		"##......##",
		"###....###",
		".###..###.",
		"..######..",
		".###..###.",
		"###....###",
		"##......##",
	}),

	ParseLevel(3, "Ladder", []string{
		"##########",
		"#...##...#",
		"##########",
		"#...##...#",
		"##########",
		"#...##...#",
		"##########",
	}),
}

// GetLevel returns the layout for stage n (1-based).
func GetLevel(n int) (Level, bool) {
	if n < 1 || n > len(levels) {
		return Level{}, false
	}
	return levels[n-1], true
}

// BrickPoints returns the reward for one brick on stage n.
func BrickPoints(n int) int {
	switch n {
	case 1:
		return 15
	case 2:
		return 20
	case 3:
		return 30
	default:
		return 0
	}
}

// StageBonus returns the bonus for reaching stage n.
func StageBonus(n int) int {
	return 3000 + 3000*(n-1)
}
