package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lightemall/internal/games/lightemall/levels"
)

func builtinLevels(t *testing.T) []levels.Level {
	t.Helper()
	lvls, err := levels.NewBuiltinLoader().LoadAll()
	require.NoError(t, err)
	require.NotEmpty(t, lvls)
	return lvls
}

func menuUpdate(t *testing.T, m LevelMenuModel, msg tea.Msg) (LevelMenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(LevelMenuModel)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

func TestLevelMenuRows(t *testing.T) {
	lvls := builtinLevels(t)
	m := NewLevelMenuModel(lvls, DefaultTheme(), 80, 24)

	rows := m.table.Rows()
	require.Len(t, rows, len(lvls)+1)
	assert.Equal(t, "Start from beginning", rows[0][2])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, lvls[0].ID, rows[1][1])
}

func TestLevelMenuStartFromBeginning(t *testing.T) {
	m := NewLevelMenuModel(builtinLevels(t), DefaultTheme(), 80, 24)
	assert.Nil(t, m.Selected())

	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.NotNil(t, m.Selected())
	assert.Equal(t, 0, m.Selected().Level)
}

func TestLevelMenuPickLevel(t *testing.T) {
	m := NewLevelMenuModel(builtinLevels(t), DefaultTheme(), 80, 24)

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuUpdate(t, m, runeKey('s'))
	m, _ = menuUpdate(t, m, runeKey('s'))
	m, _ = menuUpdate(t, m, runeKey('w'))
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Selected())
	assert.Equal(t, 2, m.Selected().Level)
}

func TestLevelMenuBackAndQuit(t *testing.T) {
	m := NewLevelMenuModel(builtinLevels(t), DefaultTheme(), 80, 24)
	back, _ := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.WantsBack())
	assert.Nil(t, back.Selected())

	quit, _ := menuUpdate(t, m, runeKey('q'))
	assert.True(t, quit.IsQuitting())
	assert.Empty(t, quit.View())
}

func TestLevelMenuResizeKeepsCursor(t *testing.T) {
	m := NewLevelMenuModel(builtinLevels(t), DefaultTheme(), 80, 24)
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, _ = menuUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 1, m.table.Cursor())
	assert.Contains(t, m.View(), "Select a level")
}

func TestLevelMenuEmpty(t *testing.T) {
	m := NewLevelMenuModel(nil, DefaultTheme(), 80, 24)
	assert.Contains(t, m.View(), "No levels found")
}
