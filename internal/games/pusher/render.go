package pusher

import (
	"fmt"

	"github.com/vovakirdan/star-pusher/internal/config"
	platformcore "github.com/vovakirdan/star-pusher/internal/core"
	"github.com/vovakirdan/star-pusher/internal/games/pusher/core"
)

// Layout constants
const (
	cellW      = 2 // terminal columns per map cell
	minScreenW = 24
	minScreenH = 6
)

const controlsHint = "arrows move  r reset  n/b level  c skin  esc menu"

// glyphSet holds the resolved runes for every tile.
type glyphSet struct {
	wall, corner, floor, exterior rune
	goal, box, boxOnGoal          rune
	decor                         map[core.Decoration]rune
	skins                         []rune
}

func newGlyphSet(cfg config.PusherConfig) glyphSet {
	g := cfg.Glyphs
	gs := glyphSet{
		wall:      config.Rune(g.Wall, '#'),
		corner:    config.Rune(g.Corner, '#'),
		floor:     config.Rune(g.Floor, ' '),
		exterior:  config.Rune(g.Exterior, ' '),
		goal:      config.Rune(g.Goal, '.'),
		box:       config.Rune(g.Box, '$'),
		boxOnGoal: config.Rune(g.BoxOnGoal, '*'),
		decor: map[core.Decoration]rune{
			core.DecorRock:      config.Rune(g.Rock, 'o'),
			core.DecorShortTree: config.Rune(g.ShortTree, 't'),
			core.DecorTallTree:  config.Rune(g.TallTree, 'T'),
			core.DecorUglyTree:  config.Rune(g.UglyTree, 'Y'),
		},
	}
	for _, s := range cfg.Skins {
		gs.skins = append(gs.skins, config.Rune(s.Glyph, '@'))
	}
	return gs
}

// Render draws the HUD, the visible part of the map and any overlay.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.puzzle == nil {
		g.renderOverlay(dst, "No levels found", "Pick another pack")
		return
	}

	g.renderHUD(dst)
	g.renderMap(dst, g.mapArea(dst))

	if g.puzzle.Solved() {
		line2 := fmt.Sprintf("%d steps - press any key", g.puzzle.Steps())
		if _, ok := g.neighbour(1); !ok {
			line2 = fmt.Sprintf("%d steps - all levels done, R to replay", g.puzzle.Steps())
		}
		g.renderOverlay(dst, "Solved!", line2)
	}
}

// mapArea is the screen region left for the map once the HUD is placed.
func (g *Game) mapArea(dst *platformcore.Screen) platformcore.Rect {
	bottom := dst.Height()
	if g.cfg.Play.ShowControls {
		bottom--
	}
	return platformcore.NewRect(0, 1, dst.Width(), bottom-1)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	lvl := g.puzzle.Level()
	left := fmt.Sprintf("Level %d of %d", g.index+1, len(g.levels))
	if lvl.Title != "" {
		left += "  " + lvl.Title
	}
	dst.DrawTextWithColor(0, 0, left, platformcore.ColorHUD)
	dst.DrawTextRight(0, fmt.Sprintf("Steps: %d", g.puzzle.Steps()), platformcore.ColorHUD)

	if g.cfg.Play.ShowControls {
		dst.DrawTextCentered(dst.Height()-1, controlsHint, platformcore.ColorDim)
	}
}

// renderMap draws the map so that the actor stays in view.
func (g *Game) renderMap(dst *platformcore.Screen, area platformcore.Rect) {
	lvl := g.puzzle.Level()
	actor := g.puzzle.Actor()

	cols := area.W / cellW
	vp := platformcore.Follow(platformcore.NewRect(0, 0, cols, area.H), lvl.Width, lvl.Height, actor.X, actor.Y)

	for sy := 0; sy < area.H; sy++ {
		for sx := 0; sx < cols; sx++ {
			wx, wy := vp.ToWorld(sx, sy)
			c := core.C(wx, wy)
			if !g.terrain.InBounds(c) {
				continue
			}
			r, fill, color := g.cellGlyph(c, actor)
			x := area.X + sx*cellW
			dst.SetWithColor(x, area.Y+sy, r, color)
			dst.SetWithColor(x+1, area.Y+sy, fill, color)
		}
	}
}

// cellGlyph resolves what to draw at c. fill is the rune for the second
// column of the cell.
func (g *Game) cellGlyph(c, actor core.Coord) (r, fill rune, color platformcore.Color) {
	lvl := g.puzzle.Level()
	goal := lvl.IsGoal(c)

	switch {
	case c == actor:
		return g.glyphs.skins[g.skin], ' ', platformcore.ColorActor
	case g.puzzle.HasBox(c) && goal:
		return g.glyphs.boxOnGoal, ' ', platformcore.ColorBoxOnGoal
	case g.puzzle.HasBox(c):
		return g.glyphs.box, ' ', platformcore.ColorBox
	case goal:
		return g.glyphs.goal, ' ', platformcore.ColorGoal
	}

	t := g.terrain.Tile(c)
	switch t.Kind {
	case core.TileWall:
		return g.glyphs.wall, g.glyphs.wall, platformcore.ColorWall
	case core.TileCorner:
		return g.glyphs.corner, g.glyphs.corner, platformcore.ColorCorner
	case core.TileInterior:
		return g.glyphs.floor, g.glyphs.floor, platformcore.ColorFloor
	case core.TileDecorated:
		color = platformcore.ColorTree
		if t.Decor == core.DecorRock {
			color = platformcore.ColorRock
		}
		return g.glyphs.decor[t.Decor], ' ', color
	default:
		return g.glyphs.exterior, g.glyphs.exterior, platformcore.ColorExterior
	}
}

// renderOverlay draws a framed two-line message in the middle of the screen.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	h := 4
	box := platformcore.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.FillRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorBanner)
	dst.DrawTextCentered(box.Y+1, line1, platformcore.ColorBanner)
	dst.DrawTextCentered(box.Y+2, line2, platformcore.ColorDim)
}
