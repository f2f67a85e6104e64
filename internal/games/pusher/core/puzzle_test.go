package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimalLevelSolvedByOnePush(t *testing.T) {
	lvl := levelFromRows(
		"#####",
		"#@$.#",
		"#####",
	)
	p := NewPuzzle(lvl, nil)
	require.False(t, p.Solved())

	assert.True(t, p.Move(DirRight))
	assert.True(t, p.Solved())
	assert.Equal(t, C(2, 1), p.Actor())
	assert.Equal(t, []Coord{C(3, 1)}, p.State().Boxes)
	assert.Equal(t, 1, p.Steps())
}

func TestBlockedPushIntoBox(t *testing.T) {
	lvl := levelFromRows(
		"#####",
		"#@$$#",
		"#####",
	)
	p := NewPuzzle(lvl, nil)
	before := p.State()

	assert.False(t, p.Move(DirRight))
	assert.Equal(t, before, p.State())
}

func TestMoveIntoWall(t *testing.T) {
	lvl := levelFromRows(
		"###",
		"#@#",
		"###",
	)
	p := NewPuzzle(lvl, nil)
	for _, d := range Dirs {
		assert.False(t, p.Move(d), "direction %v", d)
		assert.Equal(t, C(1, 1), p.Actor())
	}
	assert.Equal(t, 0, p.Steps())
}

func TestPushIntoWall(t *testing.T) {
	lvl := levelFromRows(
		"#####",
		"# @$#",
		"#. ##",
		"#####",
	)
	p := NewPuzzle(lvl, nil)
	before := p.State()
	assert.False(t, p.Move(DirRight))
	assert.Equal(t, before, p.State())
}

func TestPushOffGridEdge(t *testing.T) {
	// No surrounding walls: the grid edge itself blocks the box.
	lvl := levelFromRows(
		".@$",
	)
	p := NewPuzzle(lvl, nil)
	before := p.State()
	assert.False(t, p.Move(DirRight))
	assert.Equal(t, before, p.State())
}

func TestActorCannotLeaveGrid(t *testing.T) {
	lvl := levelFromRows(
		"@$.",
	)
	p := NewPuzzle(lvl, nil)
	assert.False(t, p.Move(DirLeft))
	assert.False(t, p.Move(DirUp))
	assert.False(t, p.Move(DirDown))
	assert.Equal(t, C(0, 0), p.Actor())
}

func TestWalkOntoFloorAndGoals(t *testing.T) {
	lvl := levelFromRows(
		"######",
		"#@ . #",
		"#  $ #",
		"######",
	)
	p := NewPuzzle(lvl, nil)
	assert.True(t, p.Move(DirRight))
	assert.True(t, p.Move(DirRight))
	assert.Equal(t, C(3, 1), p.Actor(), "standing on a goal")
	assert.False(t, p.Solved())
}

func TestStepCounting(t *testing.T) {
	lvl := levelFromRows(
		"#######",
		"#@ $ .#",
		"#     #",
		"#######",
	)
	p := NewPuzzle(lvl, nil)

	moves := []Dir{DirUp, DirLeft, DirRight, DirDown, DirDown, DirUp, DirRight, DirRight}
	expected := 0
	for _, d := range moves {
		moved := p.Move(d)
		if moved {
			expected++
		}
		assert.Equal(t, expected, p.Steps(), "after %v", d)
	}
	assert.Equal(t, 5, expected)
	assert.True(t, p.Solved())
}

func TestSolvedStaysSolved(t *testing.T) {
	lvl := levelFromRows(
		"######",
		"#@$. #",
		"######",
	)
	p := NewPuzzle(lvl, nil)
	require.True(t, p.Move(DirRight))
	require.True(t, p.Solved())

	// Further pushes would knock the box off the goal; they must be refused.
	assert.False(t, p.Move(DirRight))
	assert.False(t, p.Move(DirLeft))
	assert.True(t, p.Solved())
	assert.Equal(t, 1, p.Steps())
}

func TestLevelSolvedAtStartIsLocked(t *testing.T) {
	lvl := levelFromRows(
		"######",
		"#@*  #",
		"######",
	)
	p := NewPuzzle(lvl, nil)
	require.True(t, p.Solved())

	assert.False(t, p.Move(DirRight))
	assert.True(t, p.Solved())
	assert.Equal(t, []Coord{C(2, 1)}, p.State().Boxes)
	assert.Equal(t, C(1, 1), p.Actor())
	assert.Equal(t, 0, p.Steps())

	p.Restart()
	assert.False(t, p.Move(DirRight), "restart keeps a solved start locked")
}

func TestUnknownDirectionRefused(t *testing.T) {
	lvl := levelFromRows(
		"#####",
		"#@$.#",
		"#####",
	)
	p := NewPuzzle(lvl, nil)

	assert.False(t, p.Move(Dir(9)))
	assert.Equal(t, 0, p.Steps())
	assert.Equal(t, C(1, 1), p.Actor())
}

func TestMultipleGoalsNeedAllBoxes(t *testing.T) {
	lvl := levelFromRows(
		"#######",
		"#@$. .#",
		"#  $  #",
		"#######",
	)
	p := NewPuzzle(lvl, nil)
	require.True(t, p.Move(DirRight))
	assert.False(t, p.Solved(), "one goal still empty")
}

func TestExtraBoxesAllowed(t *testing.T) {
	lvl := levelFromRows(
		"#######",
		"#@$.  #",
		"#  $  #",
		"#######",
	)
	p := NewPuzzle(lvl, nil)
	require.True(t, p.Move(DirRight))
	assert.True(t, p.Solved())
}

func TestBoxOrderStable(t *testing.T) {
	lvl := levelFromRows(
		"#######",
		"#@$  .#",
		"# $   #",
		"#    .#",
		"#######",
	)
	p := NewPuzzle(lvl, nil)
	first := p.State().Boxes
	require.Len(t, first, 2)

	require.True(t, p.Move(DirRight))
	boxes := p.State().Boxes
	assert.Equal(t, C(3, 1), boxes[0])
	assert.Equal(t, first[1], boxes[1])
}

func TestRestartDoesNotAliasLevel(t *testing.T) {
	lvl := levelFromRows(
		"######",
		"#@$ .#",
		"######",
	)
	p := NewPuzzle(lvl, nil)
	require.True(t, p.Move(DirRight))

	assert.Equal(t, []Coord{C(2, 1)}, lvl.Start.Boxes, "start state untouched")
	assert.Equal(t, C(1, 1), lvl.Start.Actor)

	p.Restart()
	assert.Equal(t, lvl.Start.Boxes, p.State().Boxes)
	assert.Equal(t, 0, p.Steps())

	s := lvl.Reset()
	s.Boxes[0] = C(9, 9)
	assert.Equal(t, C(2, 1), lvl.Reset().Boxes[0])
}

func TestStateCopyIsDetached(t *testing.T) {
	lvl := levelFromRows("@$.")
	p := NewPuzzle(lvl, nil)
	s := p.State()
	s.Boxes[0] = C(0, 0)
	assert.True(t, p.HasBox(C(1, 0)))
}

func TestDecoratedTerrainMatchesGrid(t *testing.T) {
	rows := []string{
		"  #####",
		"###   #",
		"#.@$  #",
		"### $.#",
		"#.##$ #",
		"# # . ##",
		"#$ *$$.#",
		"#   .  #",
		"########",
	}
	lvl := levelFromRows(rows...)
	d := Decorate(lvl.Grid, lvl.Start.Actor, nil, DefaultDecorOptions())

	byGrid := NewPuzzle(lvl, nil)
	byDecor := NewPuzzle(lvl, d)
	seq := []Dir{DirRight, DirRight, DirDown, DirDown, DirLeft, DirUp, DirUp, DirLeft, DirDown}
	for _, dir := range seq {
		assert.Equal(t, byGrid.Move(dir), byDecor.Move(dir))
		assert.Equal(t, byGrid.State(), byDecor.State())
	}
}

func TestDirDelta(t *testing.T) {
	tests := []struct {
		d      Dir
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirRight, 1, 0},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
	}
	for _, tc := range tests {
		dx, dy := tc.d.Delta()
		assert.Equal(t, tc.dx, dx, tc.d.String())
		assert.Equal(t, tc.dy, dy, tc.d.String())
	}
}
