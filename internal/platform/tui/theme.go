package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-pusher/internal/core"
)

// Theme contains the visual styles for the board and the menus.
type Theme struct {
	// Cells maps the game's semantic colours to styles.
	Cells map[core.Color]lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuControls    lipgloss.Style
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:   lipgloss.NewStyle(),
			core.ColorWall:      fg("130"), // brick
			core.ColorCorner:    fg("94"),
			core.ColorFloor:     fg("250"),
			core.ColorExterior:  fg("22"),
			core.ColorGoal:      fg("226").Bold(true),
			core.ColorBox:       fg("214").Bold(true),
			core.ColorBoxOnGoal: fg("46").Bold(true),
			core.ColorActor:     fg("205").Bold(true),
			core.ColorRock:      fg("245"),
			core.ColorTree:      fg("34"),
			core.ColorHUD:       fg("255"),
			core.ColorTitle:     fg("51").Bold(true),
			core.ColorBanner:    fg("226").Bold(true),
			core.ColorDim:       fg("245"),
		},

		MenuTitle:       fg("226").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("205").Bold(true),
		MenuDescription: fg("245"),
		MenuControls:    fg("241"),
	}
}

// NightTheme is a darker palette with cool colours.
func NightTheme() Theme {
	t := DefaultTheme()
	t.Cells[core.ColorWall] = fg("60")
	t.Cells[core.ColorCorner] = fg("61")
	t.Cells[core.ColorExterior] = fg("17")
	t.Cells[core.ColorTree] = fg("29")
	t.Cells[core.ColorGoal] = fg("117").Bold(true)
	t.MenuTitle = fg("117").Bold(true)
	t.MenuItemActive = fg("159").Bold(true)
	return t
}

// MonochromeTheme is a grayscale palette for limited terminals.
func MonochromeTheme() Theme {
	t := DefaultTheme()
	for c := range t.Cells {
		t.Cells[c] = lipgloss.NewStyle()
	}
	t.Cells[core.ColorActor] = lipgloss.NewStyle().Bold(true)
	t.Cells[core.ColorBoxOnGoal] = lipgloss.NewStyle().Reverse(true)
	t.Cells[core.ColorDim] = fg("245")
	t.MenuTitle = lipgloss.NewStyle().Bold(true)
	t.MenuItemActive = lipgloss.NewStyle().Bold(true).Underline(true)
	return t
}

var themes = map[string]func() Theme{
	"default":    DefaultTheme,
	"night":      NightTheme,
	"monochrome": MonochromeTheme,
}

// ThemeByName returns the named theme. ok is false for unknown names, in
// which case the default theme is returned.
func ThemeByName(name string) (Theme, bool) {
	if f, ok := themes[name]; ok {
		return f(), true
	}
	return DefaultTheme(), false
}

// ThemeNames lists the available themes, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
