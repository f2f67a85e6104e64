// Package tui provides terminal UI components including SSH server support via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/star-pusher/internal/config"
	"github.com/vovakirdan/star-pusher/internal/core"
	"github.com/vovakirdan/star-pusher/internal/games/pusher"
	"github.com/vovakirdan/star-pusher/internal/registry"
	"github.com/vovakirdan/star-pusher/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.starpusher/host_key.
	HostKeyPath string

	// DBPath is the path to the solves database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game is the validated game configuration shared by all sessions.
	Game config.PusherConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.starpusher/scores.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultPusherConfig(),
	}
}

// SSHServer wraps a Wish SSH server that serves the game.
type SSHServer struct {
	config SSHServerConfig
	theme  Theme
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "starpusher-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
	}

	theme, ok := ThemeByName(cfg.Game.Play.Theme)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Game.Play.Theme)
	}

	srv := &SSHServer{
		config: cfg,
		theme:  theme,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".starpusher", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.Game.Play.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.store, cfg, s.config.Game, SessionOptions{
		Player: sshSession.User(),
		Theme:  s.theme,
		Logger: s.logger.With("user", sshSession.User()),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionOptions carries per-connection settings.
type SessionOptions = GameOptions

type sessionState int

const (
	stateMenu sessionState = iota
	statePicker
	stateGame
	stateScoreboard
)

// SessionModel manages the full session flow inside one Bubble Tea
// program: menu -> level picker -> game -> menu, with the scoreboard
// reachable from the menu. It is the top-level model for SSH sessions.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	gameConfig config.PusherConfig
	opts       SessionOptions
	state      sessionState

	menu       MenuModel
	picker     LevelPickerModel
	scoreboard ScoreboardModel
	gameModel  GameModel

	packID   string
	packErr  string
	quitting bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, gameCfg config.PusherConfig, opts SessionOptions) SessionModel {
	if opts.Theme.Cells == nil {
		opts.Theme = DefaultTheme()
	}
	return SessionModel{
		store:      store,
		config:     cfg,
		gameConfig: gameCfg,
		opts:       opts,
		menu:       NewMenuModel(store, cfg, opts.Theme),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes the message to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case statePicker:
		return m.updatePicker(msg)
	case stateGame:
		return m.updateGame(msg)
	case stateScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// toMenu rebuilds the menu so solved counts are current.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.menu = NewMenuModel(m.store, m.config, m.opts.Theme)
	return m, m.menu.Init()
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.state = stateScoreboard
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, m.opts.Theme)
		return m, m.scoreboard.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		levels, err := registry.Create(selected.PackID)
		if err != nil {
			if m.opts.Logger != nil {
				m.opts.Logger.Warn("could not load pack", "pack", selected.PackID, "error", err)
			}
			m.packErr = fmt.Sprintf("Could not load %s: %v", selected.Title, err)
			return m.toMenu()
		}
		m.packErr = ""
		m.packID = selected.PackID
		m.state = statePicker
		m.picker = NewLevelPickerModel(selected.PackID, selected.Title, levels, m.store, m.config, m.opts.Theme)
		return m, m.picker.Init()
	}

	return m, cmd
}

func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if picker, ok := newPicker.(LevelPickerModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.picker.WantsBack() {
		return m.toMenu()
	}

	if sel := m.picker.Selected(); sel != nil {
		levels, err := registry.Create(m.packID)
		if err != nil {
			return m.toMenu()
		}
		game := pusher.New(m.packID, levels, m.gameConfig)
		game.StartAt(sel.Level)

		m.state = stateGame
		m.gameModel = NewGameModel(game, m.store, m.config, m.opts)
		return m, m.gameModel.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameModel.BackToMenu() {
		// The pending tick of the finished game is dropped by the menu.
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	// The scoreboard returns tea.Quit for both exits; only a real quit
	// may end the session.
	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case statePicker:
		return m.picker.View()
	case stateGame:
		return m.gameModel.View()
	case stateScoreboard:
		return m.scoreboard.View()
	}

	if m.packErr != "" {
		return m.menu.View() + "\n" + centerText(m.opts.Theme.MenuDescription.Render(m.packErr), m.config.ScreenW)
	}
	return m.menu.View()
}
