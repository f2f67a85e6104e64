package config

import (
	_ "embed"
)

//go:embed defaults/pusher.yaml
var defaultPusherYAML []byte

// DefaultPusherConfig returns the hardcoded defaults, used when no YAML
// source can be read.
func DefaultPusherConfig() PusherConfig {
	return PusherConfig{
		Decoration: DecorationConfig{
			Percent: 20,
			Kinds:   []string{"rock", "short_tree", "tall_tree", "ugly_tree"},
		},
		Glyphs: GlyphConfig{
			Wall:      "#",
			Corner:    "#",
			Floor:     " ",
			Exterior:  " ",
			Goal:      ".",
			Box:       "$",
			BoxOnGoal: "*",
			Rock:      "o",
			ShortTree: "t",
			TallTree:  "T",
			UglyTree:  "Y",
		},
		Skins: []SkinConfig{
			{Name: "princess", Glyph: "@"},
			{Name: "boy", Glyph: "&"},
			{Name: "catgirl", Glyph: "%"},
			{Name: "horngirl", Glyph: "^"},
			{Name: "pinkgirl", Glyph: "P"},
		},
		Play: PlayConfig{
			TickRate:     30,
			WrapLevels:   true,
			ShowControls: true,
			Theme:        "default",
		},
	}
}
