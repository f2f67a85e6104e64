// Package core provides the platform types shared by the game and the
// terminal layer. It has no external dependencies (especially no Bubble Tea)
// so game logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle in screen or map cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp restricts a value to be within [lo, hi].
// If hi < lo, lo wins.
func Clamp(val, lo, hi int) int {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}

// Viewport maps a world of worldW x worldH cells onto a window of view.W x
// view.H cells. When the world fits it is centred; otherwise the window
// scrolls so the focus cell stays visible and roughly centred.
type Viewport struct {
	View Rect // window on screen
	OffX int  // world x shown at View.X
	OffY int  // world y shown at View.Y
}

// Follow computes the viewport for a world and a focus cell.
func Follow(view Rect, worldW, worldH, focusX, focusY int) Viewport {
	return Viewport{
		View: view,
		OffX: axisOffset(view.W, worldW, focusX),
		OffY: axisOffset(view.H, worldH, focusY),
	}
}

// axisOffset returns the world coordinate drawn at the window's origin.
// Negative values mean the world is centred with a margin.
func axisOffset(window, world, focus int) int {
	if world <= window {
		return -(window - world) / 2
	}
	return Clamp(focus-window/2, 0, world-window)
}

// ToScreen converts a world cell to screen coordinates.
// ok is false when the cell falls outside the window.
func (v Viewport) ToScreen(wx, wy int) (sx, sy int, ok bool) {
	sx = v.View.X + wx - v.OffX
	sy = v.View.Y + wy - v.OffY
	return sx, sy, v.View.Contains(sx, sy)
}

// ToWorld converts a screen cell inside the window to world coordinates.
func (v Viewport) ToWorld(sx, sy int) (wx, wy int) {
	return sx - v.View.X + v.OffX, sy - v.View.Y + v.OffY
}
