package core

// Puzzle is the move/push state machine for one playthrough of a level.
// It is not safe for concurrent use.
type Puzzle struct {
	level   *Level
	terrain Terrain
	state   State
	boxAt   map[Coord]int // box position -> index into state.Boxes
	done    bool          // the current state is solved; moves are refused
}

// NewPuzzle starts a playthrough of level. Wall checks are answered by
// terrain; pass nil to use the level's own grid.
func NewPuzzle(level *Level, terrain Terrain) *Puzzle {
	if terrain == nil {
		terrain = level.Grid
	}
	p := &Puzzle{level: level, terrain: terrain}
	p.Restart()
	return p
}

// Restart replaces the state with a fresh copy of the level's start state.
// A level that starts solved stays locked.
func (p *Puzzle) Restart() {
	p.state = p.level.Reset()
	p.boxAt = make(map[Coord]int, len(p.state.Boxes))
	for i, b := range p.state.Boxes {
		p.boxAt[b] = i
	}
	p.done = p.Solved()
}

// Level returns the level being played.
func (p *Puzzle) Level() *Level {
	return p.level
}

// State returns a copy of the current state.
func (p *Puzzle) State() State {
	return p.state.Clone()
}

// Actor returns the actor position.
func (p *Puzzle) Actor() Coord {
	return p.state.Actor
}

// Steps returns the number of accepted moves.
func (p *Puzzle) Steps() int {
	return p.state.Steps
}

// HasBox reports whether a box occupies c.
func (p *Puzzle) HasBox(c Coord) bool {
	_, ok := p.boxAt[c]
	return ok
}

// blocked reports whether a pushed box cannot enter c.
// The grid edge counts as a wall here.
func (p *Puzzle) blocked(c Coord) bool {
	return p.terrain.IsWall(c) || !p.terrain.InBounds(c) || p.HasBox(c)
}

// Move attempts to move the actor one cell in direction d, pushing at most one
// box. It returns true if the actor moved; a blocked move is not an error and
// leaves the state untouched. Once the puzzle is solved every further move is
// refused, so a solved state stays solved. Unknown directions are refused.
func (p *Puzzle) Move(d Dir) bool {
	if p.done {
		return false
	}
	if dx, dy := d.Delta(); dx == 0 && dy == 0 {
		return false
	}

	target := p.state.Actor.Step(d)
	if p.terrain.IsWall(target) || !p.terrain.InBounds(target) {
		return false
	}

	if i, ok := p.boxAt[target]; ok {
		beyond := target.Step(d)
		if p.blocked(beyond) {
			return false
		}
		delete(p.boxAt, target)
		p.state.Boxes[i] = beyond
		p.boxAt[beyond] = i
	}

	p.state.Actor = target
	p.state.Steps++
	p.done = p.Solved()
	return true
}

// Solved reports whether every goal holds a box.
func (p *Puzzle) Solved() bool {
	for _, g := range p.level.Goals {
		if !p.HasBox(g) {
			return false
		}
	}
	return true
}
