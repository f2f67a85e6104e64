package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/star-pusher/internal/games/pusher/core"
	"github.com/vovakirdan/star-pusher/internal/registry"
)

func TestParseSingleLevel(t *testing.T) {
	lvls, err := Parse([]byte("#####\n#@$.#\n#####\n"))
	require.NoError(t, err)
	require.Len(t, lvls, 1)

	l := lvls[0]
	assert.Equal(t, 5, l.Width)
	assert.Equal(t, 3, l.Height)
	assert.Equal(t, core.C(1, 1), l.Start.Actor)
	assert.Equal(t, []core.Coord{core.C(2, 1)}, l.Start.Boxes)
	assert.Equal(t, []core.Coord{core.C(3, 1)}, l.Goals)
	assert.Equal(t, 0, l.Start.Steps)
	assert.Equal(t, 1, l.Line)
}

func TestParseNoTrailingNewline(t *testing.T) {
	lvls, err := Parse([]byte("#####\n#@$.#\n#####"))
	require.NoError(t, err)
	require.Len(t, lvls, 1)
	assert.Equal(t, 3, lvls[0].Height)
}

func TestParseMultipleLevelsAndTitles(t *testing.T) {
	text := `; pack header

; One
#####
#@$.#
#####


; Two
######
#+$ .#; trailing comment
# $  #
######
`
	lvls, err := Parse([]byte(text))
	require.NoError(t, err)
	require.Len(t, lvls, 2)

	assert.Equal(t, "One", lvls[0].Title)
	assert.Equal(t, 0, lvls[0].Index)
	assert.Equal(t, "Two", lvls[1].Title)
	assert.Equal(t, 1, lvls[1].Index)
	assert.Equal(t, 10, lvls[1].Line)

	two := lvls[1]
	assert.Equal(t, 6, two.Width, "comment does not count towards width")
	assert.Equal(t, core.C(1, 1), two.Start.Actor)
	assert.True(t, two.IsGoal(core.C(1, 1)), "actor-on-goal is a goal")
	assert.True(t, two.IsGoal(core.C(4, 1)))
	assert.Len(t, two.Start.Boxes, 2)
}

func TestParseRowCommentDoesNotTitleNextLevel(t *testing.T) {
	text := "; First\n#####\n#@$.# ; hint for first\n#####\n\n#####\n#.$@#\n#####\n\n; Third\n#####\n#@$.#\n#####\n"

	lvls, err := Parse([]byte(text))
	require.NoError(t, err)
	require.Len(t, lvls, 3)

	assert.Equal(t, "First", lvls[0].Title)
	assert.Empty(t, lvls[1].Title)
	assert.Equal(t, "Third", lvls[2].Title)
}

func TestParseCommentLineEndsBlockAndTitlesNext(t *testing.T) {
	text := "#####\n#@$.#\n#####\n; Second\n#####\n#.$@#\n#####\n"

	lvls, err := Parse([]byte(text))
	require.NoError(t, err)
	require.Len(t, lvls, 2)

	assert.Empty(t, lvls[0].Title)
	assert.Equal(t, "Second", lvls[1].Title)
}

func TestParseRightPadsRows(t *testing.T) {
	lvls, err := Parse([]byte("####\n#@.#####\n#$#\n"))
	require.NoError(t, err)
	g := lvls[0].Grid
	assert.Equal(t, 8, g.W)
	assert.Equal(t, []string{
		"####    ",
		"#@.#####",
		"#$#     ",
	}, g.Rows())
}

func TestParseColumnMajorScanOrder(t *testing.T) {
	lvls, err := Parse([]byte("#######\n#@  $.#\n#$   .#\n#######\n"))
	require.NoError(t, err)
	// Boxes are listed column by column, top to bottom.
	assert.Equal(t, []core.Coord{core.C(1, 2), core.C(4, 1)}, lvls[0].Start.Boxes)
	assert.Equal(t, []core.Coord{core.C(5, 1), core.C(5, 2)}, lvls[0].Goals)
}

func TestParseBoxOnGoal(t *testing.T) {
	lvls, err := Parse([]byte("#####\n#@*.#\n# $ #\n#####\n"))
	require.NoError(t, err)
	l := lvls[0]
	assert.Len(t, l.Goals, 2)
	assert.Len(t, l.Start.Boxes, 2)
	assert.True(t, l.IsGoal(core.C(2, 1)))
}

func TestParseAlternateFloorGlyphs(t *testing.T) {
	lvls, err := Parse([]byte("#####\n#@$.#\n#-_-#\n#####\n"))
	require.NoError(t, err)
	assert.Equal(t, core.SymFloor, lvls[0].Grid.At(1, 2))
	assert.Equal(t, core.SymFloor, lvls[0].Grid.At(2, 2))
}

func TestParseFormatErrors(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		kind  Kind
		level int
		line  int
	}{
		{
			name:  "missing start",
			text:  "#####\n# $.#\n#####\n",
			kind:  KindMissingStart,
			level: 1,
			line:  4,
		},
		{
			name:  "no goals",
			text:  "#####\n#@$.#\n#####\n\n#####\n#@$ #\n#####\n",
			kind:  KindNoGoals,
			level: 2,
			line:  8,
		},
		{
			name:  "insufficient boxes",
			text:  "#####\n#@$.#\n# ..#\n#####\n",
			kind:  KindInsufficientBoxes,
			level: 1,
			line:  5,
		},
		{
			name:  "multiple starts",
			text:  "#####\n#@$.#\n#@  #\n#####\n",
			kind:  KindMultipleStarts,
			level: 1,
			line:  5,
		},
		{
			name:  "unknown symbol",
			text:  "#####\n#@$.#\n# X #\n#####\n",
			kind:  KindUnknownSymbol,
			level: 1,
			line:  5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.text))
			require.Error(t, err)

			var fe *FormatError
			require.True(t, errors.As(err, &fe), "error %v is not a FormatError", err)
			assert.Equal(t, tc.kind, fe.Kind)
			assert.Equal(t, tc.level, fe.Level)
			assert.Equal(t, tc.line, fe.Line)
			assert.Contains(t, err.Error(), tc.kind.String())
		})
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse([]byte("; only comments\n\n\n"))
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestParseCRLF(t *testing.T) {
	lvls, err := Parse([]byte("#####\r\n#@$.#\r\n#####\r\n\r\n#####\r\n#.$@#\r\n#####\r\n"))
	require.NoError(t, err)
	require.Len(t, lvls, 2)
	assert.Equal(t, 5, lvls[0].Width)
}

func TestParseThenReset(t *testing.T) {
	lvls, err := LoadEmbedded("packs/starter.txt")
	require.NoError(t, err)

	for _, l := range lvls {
		s := l.Reset()
		assert.Equal(t, 0, s.Steps)
		assert.Len(t, s.Boxes, len(l.Start.Boxes))
		assert.GreaterOrEqual(t, len(s.Boxes), len(l.Goals))
	}
}

func TestEmbeddedPacksRegistered(t *testing.T) {
	for _, id := range PackIDs() {
		require.True(t, registry.Exists(id), "pack %q", id)
		lvls, err := registry.Create(id)
		require.NoError(t, err, "pack %q", id)
		assert.NotEmpty(t, lvls, "pack %q", id)
		for _, l := range lvls {
			assert.NotEmpty(t, l.Title, "pack %q level %d", id, l.Index+1)
		}
	}
}

func TestRegisterFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "mine.txt")
	require.NoError(t, os.WriteFile(good, []byte("#####\n#@$.#\n#####\n"), 0o600))

	require.NoError(t, RegisterFile(good))
	defer registry.Unregister(FilePackID)

	assert.Equal(t, "mine.txt", registry.Title(FilePackID))
	lvls, err := registry.Create(FilePackID)
	require.NoError(t, err)
	assert.Len(t, lvls, 1)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("###\n#.#\n###\n"), 0o600))
	err = RegisterFile(bad)
	var fe *FormatError
	assert.True(t, errors.As(err, &fe))

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestLoadFileErrorMessage(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("###\n#.#\n###\n"), 0o600))

	_, err := LoadFile(bad)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), "levels:"), err.Error())
	assert.Contains(t, err.Error(), "bad.txt: level 1")
}
