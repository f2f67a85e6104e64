// Package core provides the push-puzzle rules for Star Pusher: the level grid,
// map decoration, flood fill and the move/push state machine.
// This package is UI-agnostic and deterministic given a seeded RNG.
package core

import "fmt"

// Symbol is a single cell glyph as it appears in a level file.
type Symbol byte

// Level file glyphs.
const (
	SymFloor       Symbol = ' '
	SymWall        Symbol = '#'
	SymGoal        Symbol = '.'
	SymBox         Symbol = '$'
	SymActor       Symbol = '@'
	SymActorOnGoal Symbol = '+'
	SymBoxOnGoal   Symbol = '*'
)

// IsState reports whether the symbol marks game state (actor, box or goal)
// rather than terrain.
func (s Symbol) IsState() bool {
	switch s {
	case SymGoal, SymBox, SymActor, SymActorOnGoal, SymBoxOnGoal:
		return true
	}
	return false
}

// Dir is one of the four cardinal directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Dirs lists every direction in clockwise order starting from Up.
var Dirs = [...]Dir{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) unit vector for the direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Coord is a zero-based grid position: X is the column, Y is the row.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the coordinate one cell away in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
