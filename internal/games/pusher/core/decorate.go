package core

import "math/rand"

// TileKind is the render classification of a decorated cell.
type TileKind uint8

const (
	TileExterior TileKind = iota // floor not reachable from the start
	TileInterior                 // floor reachable from the start
	TileWall
	TileCorner // wall with an elbow of neighbouring walls
	TileDecorated
)

// Decoration is a cosmetic prop placed on exterior floor.
type Decoration uint8

const (
	DecorNone Decoration = iota
	DecorRock
	DecorShortTree
	DecorTallTree
	DecorUglyTree
)

// AllDecorations is the closed set of props, in declaration order.
var AllDecorations = []Decoration{DecorRock, DecorShortTree, DecorTallTree, DecorUglyTree}

// String returns the config name of a decoration.
func (d Decoration) String() string {
	switch d {
	case DecorRock:
		return "rock"
	case DecorShortTree:
		return "short_tree"
	case DecorTallTree:
		return "tall_tree"
	case DecorUglyTree:
		return "ugly_tree"
	default:
		return "none"
	}
}

// ParseDecoration is the inverse of Decoration.String.
func ParseDecoration(name string) (Decoration, bool) {
	for _, d := range AllDecorations {
		if d.String() == name {
			return d, true
		}
	}
	return DecorNone, false
}

// Tile is one decorated cell.
type Tile struct {
	Kind  TileKind
	Decor Decoration // set only when Kind is TileDecorated
}

// DecorOptions controls cosmetic decoration placement.
type DecorOptions struct {
	Percent int          // chance in [0,100] that an exterior cell gets a prop
	Kinds   []Decoration // props to choose from uniformly
}

// DefaultDecorOptions returns the classic 20% placement over every prop.
func DefaultDecorOptions() DecorOptions {
	return DecorOptions{Percent: 20, Kinds: AllDecorations}
}

// Terrain answers the wall queries the puzzle needs.
type Terrain interface {
	InBounds(c Coord) bool
	IsWall(c Coord) bool
}

// Decorated is the render-ready view of a level's terrain.
type Decorated struct {
	W     int
	H     int
	tiles [][]Tile // [x][y]
}

// Tile returns the tile at c. Out-of-bounds cells read as exterior floor.
func (d *Decorated) Tile(c Coord) Tile {
	if !d.InBounds(c) {
		return Tile{Kind: TileExterior}
	}
	return d.tiles[c.X][c.Y]
}

// InBounds returns true if c lies inside the decorated grid.
func (d *Decorated) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < d.W && c.Y >= 0 && c.Y < d.H
}

// IsWall reports whether c is a wall or wall corner.
func (d *Decorated) IsWall(c Coord) bool {
	if !d.InBounds(c) {
		return false
	}
	k := d.tiles[c.X][c.Y].Kind
	return k == TileWall || k == TileCorner
}

// floorInterior marks flood-filled floor in the working copy.
const floorInterior Symbol = 'o'

// Decorate derives the decorated view of grid. Floor reachable from start is
// interior, the rest exterior; walls with an elbow of neighbouring walls become
// corners; exterior floor is decorated at random with opts. rng only affects
// which props are placed, never the floor or wall classification.
func Decorate(grid *Grid, start Coord, rng *rand.Rand, opts DecorOptions) *Decorated {
	work := grid.Clone()
	for x := 0; x < work.W; x++ {
		for y := 0; y < work.H; y++ {
			if work.cols[x][y].IsState() {
				work.cols[x][y] = SymFloor
			}
		}
	}

	FloodFill(work.cols, start.X, start.Y, SymFloor, floorInterior)

	d := &Decorated{W: work.W, H: work.H, tiles: make([][]Tile, work.W)}
	for x := range d.tiles {
		d.tiles[x] = make([]Tile, work.H)
	}

	wall := func(x, y int) bool { return work.IsWall(C(x, y)) }
	for x := 0; x < work.W; x++ {
		for y := 0; y < work.H; y++ {
			switch work.cols[x][y] {
			case SymWall:
				d.tiles[x][y].Kind = TileWall
				if (wall(x, y-1) && wall(x+1, y)) ||
					(wall(x+1, y) && wall(x, y+1)) ||
					(wall(x, y+1) && wall(x-1, y)) ||
					(wall(x-1, y) && wall(x, y-1)) {
					d.tiles[x][y].Kind = TileCorner
				}
			case floorInterior:
				d.tiles[x][y].Kind = TileInterior
			default:
				d.tiles[x][y].Kind = TileExterior
				if len(opts.Kinds) > 0 && rng != nil && rng.Intn(100) < opts.Percent {
					d.tiles[x][y] = Tile{
						Kind:  TileDecorated,
						Decor: opts.Kinds[rng.Intn(len(opts.Kinds))],
					}
				}
			}
		}
	}
	return d
}
