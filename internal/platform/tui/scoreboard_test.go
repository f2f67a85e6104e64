package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/star-pusher/internal/registry"
)

func TestScoreboardListsBestSolves(t *testing.T) {
	store := openTestStore(t)
	packs := registry.List()
	require.NotEmpty(t, packs)
	first := packs[0].ID

	_, err := store.SaveSolve(first, 0, 40, "ann")
	require.NoError(t, err)
	_, err = store.SaveSolve(first, 0, 31, "bob")
	require.NoError(t, err)

	m := NewScoreboardModel(store, 120, 30, DefaultTheme())
	rows := m.table.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "31", rows[0][2])
	assert.Equal(t, "2", rows[0][3])
	assert.Equal(t, "bob", rows[0][4])
	assert.Contains(t, m.summary(), "1 of ")
}

func TestScoreboardCyclesPacks(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 24, DefaultTheme())
	n := len(m.packs)
	require.NotZero(t, n)
	assert.False(t, m.showSidebar)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, 1%n, m.packCursor)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, 0, m.packCursor)
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30, DefaultTheme())
	assert.True(t, m.showSidebar)

	back, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.(ScoreboardModel).IsGoingBack())

	quit, _ := m.Update(runeKey('q'))
	assert.True(t, quit.(ScoreboardModel).IsQuitting())
}
