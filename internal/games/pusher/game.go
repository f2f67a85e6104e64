// Package pusher provides the Star Pusher game: it drives the puzzle core
// through a pack of levels and draws it onto the platform screen.
package pusher

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/star-pusher/internal/config"
	platformcore "github.com/vovakirdan/star-pusher/internal/core"
	"github.com/vovakirdan/star-pusher/internal/games/pusher/core"
)

// Game implements platformcore.Game for one level pack.
type Game struct {
	pack   string
	levels []*core.Level
	cfg    config.PusherConfig
	glyphs glyphSet
	rng    *rand.Rand

	index   int
	terrain *core.Decorated
	puzzle  *core.Puzzle

	skin      int
	ticks     int
	announced bool // solve event sent for the current level

	screenW int
	screenH int
}

var _ platformcore.Game = (*Game)(nil)

// New creates a game over the given levels. cfg should already be
// validated; the game starts at level 0 unless StartAt is called before
// Reset.
func New(pack string, levels []*core.Level, cfg config.PusherConfig) *Game {
	if len(cfg.Skins) == 0 {
		cfg.Skins = config.DefaultPusherConfig().Skins
	}
	return &Game{pack: pack, levels: levels, cfg: cfg, glyphs: newGlyphSet(cfg)}
}

// StartAt selects the 0-based level the next Reset loads.
// Out-of-range values are clamped.
func (g *Game) StartAt(level int) {
	g.index = level
}

// ID returns the pack ID, used as the persistence key.
func (g *Game) ID() string {
	return g.pack
}

// Reset initializes the game for the given screen and seed and loads the
// selected level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if len(g.levels) == 0 {
		g.puzzle = nil
		g.terrain = nil
		return
	}
	g.load(platformcore.Clamp(g.index, 0, len(g.levels)-1))
}

// Resize records a new screen size. Progress is kept.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// load decorates and starts the level at index i.
func (g *Game) load(i int) {
	g.index = i
	lvl := g.levels[i]
	g.terrain = core.Decorate(lvl.Grid, lvl.Start.Actor, g.rng, g.cfg.DecorOptions())
	g.puzzle = core.NewPuzzle(lvl, g.terrain)
	g.ticks = 0
	g.announced = false
}

// Step applies every action of the frame in order and advances one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	var events []platformcore.Event
	if g.puzzle == nil {
		return platformcore.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		if a == platformcore.ActionQuit || a == platformcore.ActionBack {
			continue
		}

		// While the solved banner is up any key other than restart or
		// previous moves on.
		if g.puzzle.Solved() && a != platformcore.ActionRestart && a != platformcore.ActionPrev {
			if next, ok := g.neighbour(1); ok {
				g.load(next)
				events = append(events, g.changed())
			}
			continue
		}

		switch a {
		case platformcore.ActionUp, platformcore.ActionDown,
			platformcore.ActionLeft, platformcore.ActionRight:
			g.puzzle.Move(actionDir(a))
		case platformcore.ActionRestart:
			g.puzzle.Restart()
			g.announced = false
		case platformcore.ActionNext:
			if next, ok := g.neighbour(1); ok && next != g.index {
				g.load(next)
				events = append(events, g.changed())
			}
		case platformcore.ActionPrev:
			if prev, ok := g.neighbour(-1); ok && prev != g.index {
				g.load(prev)
				events = append(events, g.changed())
			}
		case platformcore.ActionSkin:
			g.skin = (g.skin + 1) % len(g.cfg.Skins)
		}

		// A level that starts solved records nothing.
		if g.puzzle.Solved() && !g.announced && g.puzzle.Steps() > 0 {
			g.announced = true
			events = append(events, platformcore.Event{
				Kind:  platformcore.EventSolved,
				Level: g.index,
				Steps: g.puzzle.Steps(),
			})
		}
	}

	if !g.puzzle.Solved() {
		g.ticks++
	}

	return platformcore.StepResult{State: g.State(), Events: events}
}

// neighbour returns the level index delta steps away, honouring the wrap
// setting. ok is false when there is nowhere to go.
func (g *Game) neighbour(delta int) (int, bool) {
	n := len(g.levels)
	i := g.index + delta
	if i >= 0 && i < n {
		return i, true
	}
	if !g.cfg.Play.WrapLevels {
		return g.index, false
	}
	return (i%n + n) % n, true
}

func (g *Game) changed() platformcore.Event {
	return platformcore.Event{Kind: platformcore.EventLevelChanged, Level: g.index}
}

func actionDir(a platformcore.Action) core.Dir {
	switch a {
	case platformcore.ActionUp:
		return core.DirUp
	case platformcore.ActionDown:
		return core.DirDown
	case platformcore.ActionLeft:
		return core.DirLeft
	default:
		return core.DirRight
	}
}

// State returns the current status.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Pack:       g.pack,
		Level:      g.index,
		LevelCount: len(g.levels),
		Skin:       g.cfg.Skins[g.skin].Name,
		Ticks:      g.ticks,
	}
	if g.puzzle != nil {
		st.Steps = g.puzzle.Steps()
		st.Solved = g.puzzle.Solved()
	}
	return st
}

// Level returns the level being played, or nil when the pack is empty.
func (g *Game) Level() *core.Level {
	if g.puzzle == nil {
		return nil
	}
	return g.puzzle.Level()
}
