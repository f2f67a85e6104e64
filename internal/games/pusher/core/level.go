package core

// State is the mutable part of a playthrough.
type State struct {
	Actor Coord
	Boxes []Coord // order is stable per box identity
	Steps int
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	boxes := make([]Coord, len(s.Boxes))
	copy(boxes, s.Boxes)
	return State{Actor: s.Actor, Boxes: boxes, Steps: s.Steps}
}

// Level is a parsed, read-only level definition.
type Level struct {
	Index int    // 0-based position within its file
	Title string // from the comment preceding the block, may be empty
	Line  int    // 1-based line of the block's first row

	Width  int
	Height int
	Grid   *Grid
	Goals  []Coord // scan order
	Start  State

	goalSet map[Coord]struct{}
}

// NewLevel builds a level from a grid and the located positions.
// The start state is stored as given with its step counter forced to zero.
func NewLevel(grid *Grid, actor Coord, goals, boxes []Coord) *Level {
	l := &Level{
		Width:   grid.W,
		Height:  grid.H,
		Grid:    grid,
		Goals:   append([]Coord(nil), goals...),
		Start:   State{Actor: actor, Boxes: append([]Coord(nil), boxes...)},
		goalSet: make(map[Coord]struct{}, len(goals)),
	}
	for _, g := range goals {
		l.goalSet[g] = struct{}{}
	}
	return l
}

// IsGoal reports whether c is one of the level's goals.
func (l *Level) IsGoal(c Coord) bool {
	_, ok := l.goalSet[c]
	return ok
}

// Reset returns a fresh copy of the start state that shares no memory with
// the level, so repeated plays never leak mutation into each other.
func (l *Level) Reset() State {
	s := l.Start.Clone()
	s.Steps = 0
	return s
}
