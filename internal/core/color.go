package core

// Color is a semantic foreground colour for a screen cell.
// The terminal layer maps each value to an ANSI 256-colour code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWall
	ColorCorner
	ColorFloor
	ColorExterior
	ColorGoal
	ColorBox
	ColorBoxOnGoal
	ColorActor
	ColorRock
	ColorTree
	ColorHUD
	ColorTitle
	ColorBanner
	ColorDim
)

// String returns the colour's name, used in screenshots and tests.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWall:
		return "wall"
	case ColorCorner:
		return "corner"
	case ColorFloor:
		return "floor"
	case ColorExterior:
		return "exterior"
	case ColorGoal:
		return "goal"
	case ColorBox:
		return "box"
	case ColorBoxOnGoal:
		return "box_on_goal"
	case ColorActor:
		return "actor"
	case ColorRock:
		return "rock"
	case ColorTree:
		return "tree"
	case ColorHUD:
		return "hud"
	case ColorTitle:
		return "title"
	case ColorBanner:
		return "banner"
	case ColorDim:
		return "dim"
	default:
		return "unknown"
	}
}
