package core

import "strings"

// Grid is the rectangular terrain of a level, stored column-major so that
// cells are addressed as (x, y). It is never resized after parsing.
type Grid struct {
	W    int
	H    int
	cols [][]Symbol
}

// NewGrid creates a grid of the given size filled with floor.
func NewGrid(w, h int) *Grid {
	g := &Grid{W: w, H: h, cols: make([][]Symbol, w)}
	for x := range g.cols {
		g.cols[x] = make([]Symbol, h)
		for y := range g.cols[x] {
			g.cols[x][y] = SymFloor
		}
	}
	return g
}

// GridFromRows builds a grid from text rows, right-padding short rows with
// floor so the result is rectangular. Rows are used as-is otherwise.
func GridFromRows(rows []string) *Grid {
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	g := NewGrid(w, len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			g.cols[x][y] = Symbol(r[x])
		}
	}
	return g
}

// InBounds returns true if the coordinate is inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the symbol at (x, y), or floor when out of bounds.
func (g *Grid) At(x, y int) Symbol {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return SymFloor
	}
	return g.cols[x][y]
}

// Set writes a symbol; out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, s Symbol) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.cols[x][y] = s
}

// IsWall reports whether c is a wall. Out-of-bounds cells are not walls.
func (g *Grid) IsWall(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.cols[c.X][c.Y] == SymWall
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cols := make([][]Symbol, len(g.cols))
	for x := range g.cols {
		cols[x] = make([]Symbol, len(g.cols[x]))
		copy(cols[x], g.cols[x])
	}
	return &Grid{W: g.W, H: g.H, cols: cols}
}

// Rows renders the grid back to text rows, one string per y.
func (g *Grid) Rows() []string {
	rows := make([]string, g.H)
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		sb.Reset()
		for x := 0; x < g.W; x++ {
			sb.WriteByte(byte(g.cols[x][y]))
		}
		rows[y] = sb.String()
	}
	return rows
}
