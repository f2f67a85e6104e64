package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloodFillEnclosedRoom(t *testing.T) {
	g := GridFromRows([]string{
		"          ",
		"  #####   ",
		"  #   #   ",
		"  #   #   ",
		"  #####   ",
		"          ",
	})

	n := FloodFill(g.cols, 4, 2, SymFloor, 'o')
	assert.Equal(t, 6, n)

	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			inside := x >= 3 && x <= 5 && y >= 2 && y <= 3
			if inside {
				assert.Equal(t, Symbol('o'), g.At(x, y), "cell (%d,%d)", x, y)
			} else {
				assert.NotEqual(t, Symbol('o'), g.At(x, y), "cell (%d,%d) leaked", x, y)
			}
		}
	}
}

func TestFloodFillNoDiagonals(t *testing.T) {
	cells := [][]int{
		{0, 1},
		{1, 0},
	}
	n := FloodFill(cells, 0, 0, 0, 9)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, cells[1][1])
}

func TestFloodFillNoOpWhenSeedDiffers(t *testing.T) {
	cells := [][]int{{1, 0}, {0, 0}}
	assert.Equal(t, 0, FloodFill(cells, 0, 0, 0, 5))
	assert.Equal(t, [][]int{{1, 0}, {0, 0}}, cells)
}

func TestFloodFillOutOfBoundsSeed(t *testing.T) {
	cells := [][]int{{0}}
	assert.Equal(t, 0, FloodFill(cells, -1, 0, 0, 5))
	assert.Equal(t, 0, FloodFill(cells, 0, 3, 0, 5))
}

func TestFloodFillSameMatchAndReplace(t *testing.T) {
	cells := [][]int{{0, 0, 0}, {0, 0, 0}}
	assert.Equal(t, 6, FloodFill(cells, 1, 1, 0, 0))
}

func TestFloodFillRaggedColumns(t *testing.T) {
	cells := [][]int{{0, 0, 0}, {0}, {0, 0}}
	assert.Equal(t, 6, FloodFill(cells, 0, 2, 0, 1))
}

func TestFloodFillLargeGrid(t *testing.T) {
	const size = 1000
	cells := make([][]uint8, size)
	for x := range cells {
		cells[x] = make([]uint8, size)
	}

	n := FloodFill(cells, size/2, size/2, 0, 1)
	require.Equal(t, size*size, n)
	assert.Equal(t, uint8(1), cells[0][0])
	assert.Equal(t, uint8(1), cells[size-1][size-1])
}
