package core

// FloodFill relabels the 4-connected region of cells equal to match that
// contains (x, y), writing replace into each of them. cells is indexed
// cells[x][y] and may be ragged. It returns the number of cells relabeled.
//
// Termination does not depend on match differing from replace: visited cells
// are tracked separately, and the worklist is an explicit stack so large
// regions cannot exhaust the call stack.
func FloodFill[T comparable](cells [][]T, x, y int, match, replace T) int {
	inBounds := func(x, y int) bool {
		return x >= 0 && x < len(cells) && y >= 0 && y < len(cells[x])
	}
	if !inBounds(x, y) || cells[x][y] != match {
		return 0
	}

	visited := make([][]bool, len(cells))
	for i := range cells {
		visited[i] = make([]bool, len(cells[i]))
	}

	filled := 0
	stack := []Coord{{X: x, Y: y}}
	visited[x][y] = true
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cells[c.X][c.Y] = replace
		filled++

		for _, d := range Dirs {
			n := c.Step(d)
			if !inBounds(n.X, n.Y) || visited[n.X][n.Y] || cells[n.X][n.Y] != match {
				continue
			}
			visited[n.X][n.Y] = true
			stack = append(stack, n)
		}
	}
	return filled
}
