package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-pusher/internal/core"
	"github.com/vovakirdan/star-pusher/internal/storage"
)

// GameOptions carries the per-session settings of a GameModel.
type GameOptions struct {
	Player string      // recorded with every solve
	Theme  Theme       // zero value means DefaultTheme
	Logger *log.Logger // optional, for failed saves
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       GameOptions
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. store may be nil.
func NewGameModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Theme.Cells == nil {
		opts.Theme = DefaultTheme()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleTick steps the game and records solves.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range result.Events {
		if e.Kind == core.EventSolved {
			m.recordSolve(e)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// recordSolve saves a solve. Failures are logged and otherwise ignored so
// play continues without a database.
func (m GameModel) recordSolve(e core.Event) {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveSolve(m.game.ID(), e.Level, e.Steps, m.opts.Player); err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not save solve", "pack", m.game.ID(), "level", e.Level+1, "error", err)
	}
}

// saveScreenshot writes the current screen as plain text to
// ~/.starpusher/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".starpusher", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	st := m.game.State()
	path := filepath.Join(dir, fmt.Sprintf("%s_%02d_%s.txt", m.game.ID(), st.Level+1, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.opts.Theme)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the runtime config, including any resize.
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// Run plays a game in its own Bubble Tea program. It returns when the
// player quits or presses Esc, reporting which one happened.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu() && !m.IsQuitting(), nil
}
