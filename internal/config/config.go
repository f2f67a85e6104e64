// Package config provides YAML-based tuning for Star Pusher: map
// decoration, glyphs, character skins and pacing.
package config

import (
	"unicode/utf8"

	"github.com/vovakirdan/star-pusher/internal/games/pusher/core"
)

// PusherConfig contains all tunable settings for the game.
type PusherConfig struct {
	Decoration DecorationConfig `yaml:"decoration"`
	Glyphs     GlyphConfig      `yaml:"glyphs"`
	Skins      []SkinConfig     `yaml:"skins"`
	Play       PlayConfig       `yaml:"play"`
}

// DecorationConfig controls the scenery placed outside the playable area.
type DecorationConfig struct {
	Percent int      `yaml:"percent"` // chance per eligible cell, 0-100
	Kinds   []string `yaml:"kinds"`   // rock, short_tree, tall_tree, ugly_tree
}

// GlyphConfig maps map tiles to terminal characters. Only the first rune of
// each value is used.
type GlyphConfig struct {
	Wall      string `yaml:"wall"`
	Corner    string `yaml:"corner"`
	Floor     string `yaml:"floor"`
	Exterior  string `yaml:"exterior"`
	Goal      string `yaml:"goal"`
	Box       string `yaml:"box"`
	BoxOnGoal string `yaml:"box_on_goal"`
	Rock      string `yaml:"rock"`
	ShortTree string `yaml:"short_tree"`
	TallTree  string `yaml:"tall_tree"`
	UglyTree  string `yaml:"ugly_tree"`
}

// SkinConfig is one selectable player character.
type SkinConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
}

// PlayConfig holds pacing and navigation settings.
type PlayConfig struct {
	TickRate     int    `yaml:"tick_rate"`     // UI ticks per second
	WrapLevels   bool   `yaml:"wrap_levels"`   // next on the last level goes to the first
	ShowControls bool   `yaml:"show_controls"` // key hints in the HUD
	Theme        string `yaml:"theme"`         // default, night or monochrome
}

// Validate clamps out-of-range values and drops unknown decoration kinds,
// filling anything left empty from the defaults.
func (c *PusherConfig) Validate() {
	def := DefaultPusherConfig()

	c.Decoration.Percent = min(max(c.Decoration.Percent, 0), 100)
	kinds := c.Decoration.Kinds[:0]
	for _, k := range c.Decoration.Kinds {
		if _, ok := core.ParseDecoration(k); ok {
			kinds = append(kinds, k)
		}
	}
	c.Decoration.Kinds = kinds

	g, d := &c.Glyphs, def.Glyphs
	for _, p := range []struct {
		dst *string
		def string
	}{
		{&g.Wall, d.Wall},
		{&g.Corner, d.Corner},
		{&g.Floor, d.Floor},
		{&g.Exterior, d.Exterior},
		{&g.Goal, d.Goal},
		{&g.Box, d.Box},
		{&g.BoxOnGoal, d.BoxOnGoal},
		{&g.Rock, d.Rock},
		{&g.ShortTree, d.ShortTree},
		{&g.TallTree, d.TallTree},
		{&g.UglyTree, d.UglyTree},
	} {
		if *p.dst == "" {
			*p.dst = p.def
		}
	}

	skins := c.Skins[:0]
	for _, s := range c.Skins {
		if s.Name != "" && s.Glyph != "" {
			skins = append(skins, s)
		}
	}
	c.Skins = skins
	if len(c.Skins) == 0 {
		c.Skins = def.Skins
	}

	if c.Play.TickRate <= 0 {
		c.Play.TickRate = def.Play.TickRate
	}
	c.Play.TickRate = min(c.Play.TickRate, 120)
	if c.Play.Theme == "" {
		c.Play.Theme = def.Play.Theme
	}
}

// DecorOptions converts the decoration settings for core.Decorate.
// An empty kind list disables decoration.
func (c PusherConfig) DecorOptions() core.DecorOptions {
	opts := core.DecorOptions{Percent: c.Decoration.Percent}
	for _, k := range c.Decoration.Kinds {
		if d, ok := core.ParseDecoration(k); ok {
			opts.Kinds = append(opts.Kinds, d)
		}
	}
	if len(opts.Kinds) == 0 {
		opts.Percent = 0
	}
	return opts
}

// Rune returns the first rune of a glyph, or fallback if it is empty.
func Rune(glyph string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(glyph)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
