package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second (default 30)
	Seed     int64 // RNG seed for map decoration, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Pack       string // pack ID
	Level      int    // 0-based index of the current level
	LevelCount int
	Steps      int
	Solved     bool
	Skin       string
	Ticks      int // ticks spent on the current level
}

// EventKind classifies a game event.
type EventKind int

const (
	// EventSolved fires once when the current level becomes solved.
	EventSolved EventKind = iota + 1
	// EventLevelChanged fires whenever a different level is loaded.
	EventLevelChanged
)

// Event is something that happened during a step that the platform may want
// to act on, for example recording a solve.
type Event struct {
	Kind  EventKind
	Level int
	Steps int
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Game is the contract between a game and the platform loop.
type Game interface {
	// ID returns the identifier used for persistence, usually the pack ID.
	ID() string
	// Reset (re)initializes the game for the given screen and seed.
	Reset(cfg RuntimeConfig)
	// Step applies the frame's input and advances one tick.
	Step(in InputFrame) StepResult
	// Resize adapts to a new screen size without losing progress.
	Resize(w, h int)
	// Render draws the current state into the screen.
	Render(dst *Screen)
	// State returns the current status without advancing.
	State() GameState
}
