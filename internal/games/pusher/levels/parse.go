// Package levels parses Star Pusher level files and provides the built-in
// level packs. This package depends on core but core does not depend on levels.
package levels

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/star-pusher/internal/games/pusher/core"
)

// ErrNoLevels is returned when a file contains no level blocks at all.
var ErrNoLevels = errors.New("no levels found")

// Kind classifies a malformed level.
type Kind int

const (
	KindMissingStart Kind = iota + 1
	KindNoGoals
	KindInsufficientBoxes
	KindMultipleStarts
	KindUnknownSymbol
)

// String returns a short description of the violation.
func (k Kind) String() string {
	switch k {
	case KindMissingStart:
		return "missing start"
	case KindNoGoals:
		return "no goals"
	case KindInsufficientBoxes:
		return "insufficient boxes"
	case KindMultipleStarts:
		return "multiple starts"
	case KindUnknownSymbol:
		return "unknown symbol"
	default:
		return "unknown"
	}
}

// FormatError reports a level that cannot be played.
type FormatError struct {
	Level  int // 1-based level number within the file
	Line   int // 1-based line number, approximate
	Kind   Kind
	Detail string
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("level %d (around line %d): %s", e.Level, e.Line, e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Parse reads every level in text. Blocks of rows are separated by blank
// lines; ';' starts a comment running to the end of the line. The first
// malformed level aborts the parse with a *FormatError.
func Parse(text []byte) ([]*core.Level, error) {
	var (
		result   []*core.Level
		rows     []string
		title    string
		pending  string // last comment-only line seen outside a block
		firstRow int
		lineNum  int
	)

	sc := bufio.NewScanner(bytes.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		lvl, err := buildLevel(rows, len(result), lineNum)
		if err != nil {
			return err
		}
		lvl.Title = title
		lvl.Line = firstRow
		result = append(result, lvl)
		rows = nil
		title = ""
		pending = ""
		return nil
	}

	handle := func(line string) error {
		lineNum++
		line = strings.TrimRight(line, "\r\n")
		comment := ""
		if i := strings.IndexByte(line, ';'); i >= 0 {
			comment = strings.TrimSpace(line[i+1:])
			line = line[:i]
		}

		if line == "" {
			if err := flush(); err != nil {
				return err
			}
			// Only a comment standing on its own line can title the next block.
			if comment != "" {
				pending = comment
			}
			return nil
		}
		if len(rows) == 0 {
			firstRow = lineNum
			title = pending
			pending = ""
		}
		rows = append(rows, line)
		return nil
	}

	for sc.Scan() {
		if err := handle(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("levels: reading input: %w", err)
	}
	// Synthetic trailing blank line so a final level without one still ends.
	if err := handle(""); err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, ErrNoLevels
	}
	return result, nil
}

// buildLevel converts one block of rows into a level and validates it.
// index is 0-based; line is the line that terminated the block.
func buildLevel(rows []string, index, line int) (*core.Level, error) {
	fail := func(kind Kind, detail string) error {
		return &FormatError{Level: index + 1, Line: line, Kind: kind, Detail: detail}
	}

	grid := core.GridFromRows(rows)

	var (
		start core.Coord
		found bool
		goals []core.Coord
		boxes []core.Coord
	)
	for x := 0; x < grid.W; x++ {
		for y := 0; y < grid.H; y++ {
			sym := grid.At(x, y)
			switch sym {
			case '-', '_':
				grid.Set(x, y, core.SymFloor)
				continue
			case core.SymFloor, core.SymWall, core.SymGoal, core.SymBox,
				core.SymActor, core.SymActorOnGoal, core.SymBoxOnGoal:
			default:
				return nil, fail(KindUnknownSymbol, fmt.Sprintf("%q at %v", rune(sym), core.C(x, y)))
			}

			c := core.C(x, y)
			if sym == core.SymActor || sym == core.SymActorOnGoal {
				if found {
					return nil, fail(KindMultipleStarts, fmt.Sprintf("second start at %v", c))
				}
				start, found = c, true
			}
			if sym == core.SymGoal || sym == core.SymActorOnGoal || sym == core.SymBoxOnGoal {
				goals = append(goals, c)
			}
			if sym == core.SymBox || sym == core.SymBoxOnGoal {
				boxes = append(boxes, c)
			}
		}
	}

	switch {
	case !found:
		return nil, fail(KindMissingStart, `no "@" or "+"`)
	case len(goals) == 0:
		return nil, fail(KindNoGoals, "")
	case len(boxes) < len(goals):
		return nil, fail(KindInsufficientBoxes,
			fmt.Sprintf("%d goals but only %d boxes", len(goals), len(boxes)))
	}

	lvl := core.NewLevel(grid, start, goals, boxes)
	lvl.Index = index
	return lvl, nil
}
