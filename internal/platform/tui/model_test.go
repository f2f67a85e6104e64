package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/star-pusher/internal/config"
	"github.com/vovakirdan/star-pusher/internal/core"
	"github.com/vovakirdan/star-pusher/internal/games/pusher"
	"github.com/vovakirdan/star-pusher/internal/games/pusher/levels"
	"github.com/vovakirdan/star-pusher/internal/storage"
)

const oneMove = "#####\n#@$.#\n#####\n"

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7}
}

func newTestGame(t *testing.T) *pusher.Game {
	t.Helper()
	lvls, err := levels.Parse([]byte(oneMove))
	require.NoError(t, err)
	return pusher.New("test", lvls, config.DefaultPusherConfig())
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// send feeds msg to the model and returns the updated GameModel.
func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm, cmd
}

func TestGameModelSolveIsRecorded(t *testing.T) {
	store := openTestStore(t)
	m := NewGameModel(newTestGame(t), store, testConfig(), GameOptions{Player: "ann"})
	m.Init()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := send(t, m, TickMsg{})
	assert.NotNil(t, cmd, "tick loop continues")

	st := m.State()
	assert.True(t, st.Solved)
	assert.Equal(t, 1, st.Steps)

	best, ok, err := store.BestSteps("test", 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, best)

	top, err := store.TopSolves("test", 0, 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "ann", top[0].Player)
}

func TestGameModelWithoutStore(t *testing.T) {
	m := NewGameModel(newTestGame(t), nil, testConfig(), GameOptions{})
	m.Init()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, TickMsg{})
	assert.True(t, m.State().Solved)
}

func TestGameModelInputWaitsForTick(t *testing.T) {
	m := NewGameModel(newTestGame(t), nil, testConfig(), GameOptions{})
	m.Init()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.State().Steps)
}

func TestGameModelBackAndQuit(t *testing.T) {
	m := NewGameModel(newTestGame(t), nil, testConfig(), GameOptions{})
	m.Init()

	back, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.BackToMenu())
	assert.False(t, back.IsQuitting())
	assert.Nil(t, cmd, "embedded model leaves quitting to its parent")

	quit, cmd := send(t, m, runeKey('q'))
	assert.True(t, quit.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, quit.View())
}

func TestGameModelResizeKeepsProgress(t *testing.T) {
	m := NewGameModel(newTestGame(t), nil, testConfig(), GameOptions{})
	m.Init()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 100, m.Config().ScreenW)
	assert.Equal(t, 1, m.game.State().Steps)
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(newTestGame(t), nil, testConfig(), GameOptions{Theme: MonochromeTheme()})
	m.Init()

	view := m.View()
	assert.Contains(t, view, "Level 1 of 1")
	assert.Len(t, strings.Split(view, "\n"), 24)
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextWithColor(0, 0, "ab", core.ColorWall)
	s.SetWithColor(2, 0, 'c', core.ColorGoal)

	out := RenderScreen(s, MonochromeTheme())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[0], "c")
}

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		th, ok := ThemeByName(name)
		assert.True(t, ok, name)
		assert.NotEmpty(t, th.Cells, name)
	}

	th, ok := ThemeByName("neon")
	assert.False(t, ok)
	assert.NotEmpty(t, th.Cells)
}
