package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/storage"
	"github.com/thenoetrevino/quadro/internal/testutil"
)

// ============================================================================
// HELPERS
// ============================================================================

func setupTestModel(t *testing.T, snap models.Snapshot) (*Model, string) {
	t.Helper()

	a, f := testutil.NewLoadedApp(t, snap)
	m := New(context.Background(), a, config.Default())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, f.Path()
}

func runeKey(r rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
}

func specialKey(code rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

func sendKeys(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeText(m *Model, text string) {
	for _, r := range text {
		sendKeys(m, runeKey(r))
	}
}

// ============================================================================
// NAVIGATION
// ============================================================================

func TestNavigation_ColumnsStopAtEdges(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	sendKeys(m, runeKey('h'))
	assert.Equal(t, models.Added, m.Column())

	sendKeys(m, runeKey('l'), specialKey(tea.KeyRight), runeKey('l'))
	assert.Equal(t, models.Done, m.Column())

	sendKeys(m, runeKey('l'))
	assert.Equal(t, models.Done, m.Column())

	sendKeys(m, specialKey(tea.KeyLeft))
	assert.Equal(t, models.Sometime, m.Column())
}

func TestNavigation_TaskCursorStaysInList(t *testing.T) {
	m, _ := setupTestModel(t, testutil.Board([]string{"a", "b", "c"}, nil, nil, nil))

	sendKeys(m, runeKey('k'))
	assert.Equal(t, 0, m.SelectedTask())

	sendKeys(m, runeKey('j'), specialKey(tea.KeyDown), runeKey('j'), runeKey('j'))
	assert.Equal(t, 2, m.SelectedTask())

	sendKeys(m, specialKey(tea.KeyUp))
	assert.Equal(t, 1, m.SelectedTask())
}

// ============================================================================
// ADD TASK
// ============================================================================

func TestAddTask_SubmitAppendsToAdded(t *testing.T) {
	m, _ := setupTestModel(t, testutil.Board([]string{"first"}, nil, nil, nil))

	sendKeys(m, runeKey('a'))
	require.Equal(t, InputMode, m.Mode())

	typeText(m, "buy milk")
	sendKeys(m, specialKey(tea.KeyEnter))

	assert.Equal(t, NormalMode, m.Mode())
	assert.Equal(t, []string{"first", "buy milk"}, m.app.Board().Tasks(models.Added))
	assert.Equal(t, 1, m.SelectedTask())
	assert.Empty(t, m.input.Value())
}

func TestAddTask_BlankInputIgnored(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	sendKeys(m, runeKey('a'))
	typeText(m, "   ")
	sendKeys(m, specialKey(tea.KeyEnter))

	assert.Equal(t, NormalMode, m.Mode())
	assert.Equal(t, 0, m.app.Board().Total())
	assert.Nil(t, m.notice, "blank input is rejected silently")
}

func TestAddTask_EscapeCancels(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	sendKeys(m, runeKey('a'))
	typeText(m, "never mind")
	sendKeys(m, specialKey(tea.KeyEscape))

	assert.Equal(t, NormalMode, m.Mode())
	assert.Equal(t, 0, m.app.Board().Total())
	assert.Empty(t, m.input.Value())
}

func TestAddTask_NormalKeysAreTextInInputMode(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	sendKeys(m, runeKey('a'))
	typeText(m, "qlx")
	assert.Equal(t, InputMode, m.Mode())
	assert.Equal(t, models.Added, m.Column())
	assert.Equal(t, "qlx", m.input.Value())
}

// ============================================================================
// MOVE TASK
// ============================================================================

func TestGrabAndDrop_MovesToSelectedList(t *testing.T) {
	m, _ := setupTestModel(t, testutil.Board([]string{"a", "b"}, nil, nil, []string{"x"}))

	sendKeys(m, runeKey('j'), specialKey(tea.KeySpace))
	require.NotNil(t, m.grabbed)

	sendKeys(m, runeKey('l'), runeKey('l'), runeKey('l'), specialKey(tea.KeySpace))

	assert.Nil(t, m.grabbed)
	assert.Equal(t, []string{"a"}, m.app.Board().Tasks(models.Added))
	assert.Equal(t, []string{"x", "b"}, m.app.Board().Tasks(models.Done))
	assert.Equal(t, 1, m.SelectedTask())
	assert.Equal(t, 0, m.cursor[models.Added])
}

func TestGrabAndDrop_SameListRelocatesToEnd(t *testing.T) {
	m, _ := setupTestModel(t, testutil.Board([]string{"a", "b", "c"}, nil, nil, nil))

	sendKeys(m, specialKey(tea.KeySpace), specialKey(tea.KeySpace))

	assert.Equal(t, []string{"b", "c", "a"}, m.app.Board().Tasks(models.Added))
	assert.Equal(t, 2, m.SelectedTask())
}

func TestGrabAndDrop_EscapeCancels(t *testing.T) {
	m, _ := setupTestModel(t, testutil.Board([]string{"a"}, nil, nil, nil))

	sendKeys(m, specialKey(tea.KeySpace), runeKey('l'), specialKey(tea.KeyEscape))

	assert.Nil(t, m.grabbed)
	assert.Equal(t, []string{"a"}, m.app.Board().Tasks(models.Added))
	assert.Empty(t, m.app.Board().Tasks(models.DoNow))
}

func TestGrab_EmptyListDoesNothing(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	sendKeys(m, specialKey(tea.KeySpace))
	assert.Nil(t, m.grabbed)
}

func TestMoveAdjacent_SelectionFollowsTask(t *testing.T) {
	m, _ := setupTestModel(t, testutil.Board([]string{"a", "b"}, []string{"n"}, nil, nil))

	sendKeys(m, runeKey('j'), runeKey('L'))

	assert.Equal(t, []string{"a"}, m.app.Board().Tasks(models.Added))
	assert.Equal(t, []string{"n", "b"}, m.app.Board().Tasks(models.DoNow))
	assert.Equal(t, models.DoNow, m.Column())
	assert.Equal(t, 1, m.SelectedTask())

	sendKeys(m, runeKey('H'))
	assert.Equal(t, []string{"a", "b"}, m.app.Board().Tasks(models.Added))
	assert.Equal(t, models.Added, m.Column())
}

func TestMoveAdjacent_NoListBeyondEdge(t *testing.T) {
	m, _ := setupTestModel(t, testutil.Board([]string{"a"}, nil, nil, nil))

	sendKeys(m, runeKey('H'))

	assert.Equal(t, []string{"a"}, m.app.Board().Tasks(models.Added))
	require.NotNil(t, m.notice)
	assert.Equal(t, levelInfo, m.notice.level)
}

// ============================================================================
// DELETE TASK
// ============================================================================

func TestDelete_RemovesSelectedTask(t *testing.T) {
	m, _ := setupTestModel(t, testutil.Board([]string{"a", "b", "c"}, nil, nil, nil))

	sendKeys(m, runeKey('j'), runeKey('j'), specialKey(tea.KeyDelete))

	assert.Equal(t, []string{"a", "b"}, m.app.Board().Tasks(models.Added))
	assert.Equal(t, 1, m.SelectedTask(), "cursor clamps to the new last task")

	sendKeys(m, runeKey('x'), runeKey('x'))
	assert.Empty(t, m.app.Board().Tasks(models.Added))
	assert.Equal(t, 0, m.SelectedTask())
}

func TestDelete_EmptyListIsNoop(t *testing.T) {
	m, _ := setupTestModel(t, testutil.Board(nil, []string{"keep"}, nil, nil))

	sendKeys(m, runeKey('x'))
	assert.Equal(t, 1, m.app.Board().Total())
	assert.Nil(t, m.notice)
}

func TestDelete_RefusedWhileHolding(t *testing.T) {
	m, _ := setupTestModel(t, testutil.Board([]string{"a"}, nil, nil, nil))

	sendKeys(m, specialKey(tea.KeySpace), runeKey('x'))

	assert.Equal(t, []string{"a"}, m.app.Board().Tasks(models.Added))
	assert.NotNil(t, m.grabbed)
}

// ============================================================================
// SAVE, HELP AND QUIT
// ============================================================================

func TestSave_WritesBoardFile(t *testing.T) {
	m, path := setupTestModel(t, nil)

	sendKeys(m, runeKey('a'))
	typeText(m, "persist me")
	sendKeys(m, specialKey(tea.KeyEnter))
	sendKeys(m, tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl}))

	require.NotNil(t, m.notice)
	assert.Equal(t, levelInfo, m.notice.level)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "persist me")
}

func TestSave_FailureShowsError(t *testing.T) {
	dir := t.TempDir()
	// a directory where the file should be makes the rename fail
	path := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.Mkdir(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "child"), []byte("x"), 0o644))

	a := app.New(storage.NewJSONFile(path))
	m := New(context.Background(), a, config.Default())

	sendKeys(m, tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl}))

	require.NotNil(t, m.notice)
	assert.Equal(t, levelError, m.notice.level)
}

func TestHelp_OpensAndCloses(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	sendKeys(m, runeKey('?'))
	assert.Equal(t, HelpMode, m.Mode())

	sendKeys(m, runeKey('?'))
	assert.Equal(t, NormalMode, m.Mode())

	sendKeys(m, runeKey('?'), specialKey(tea.KeyEscape))
	assert.Equal(t, NormalMode, m.Mode())
}

func TestQuit_ReturnsQuitCmd(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	cmd := sendKeys(m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuit_InHelpModeOnlyClosesHelp(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	sendKeys(m, runeKey('?'))
	cmd := sendKeys(m, runeKey('q'))

	assert.Nil(t, cmd)
	assert.Equal(t, NormalMode, m.Mode())
}

// ============================================================================
// VIEW
// ============================================================================

func TestView_LoadingBeforeWindowSize(t *testing.T) {
	a := app.New(storage.NewJSONFile(filepath.Join(t.TempDir(), "tasks.json")))
	m := New(context.Background(), a, config.Default())

	view := m.View()
	assert.Equal(t, "Loading...", view.Content)
	assert.True(t, view.AltScreen)
}

func TestView_ShowsListsAndTasks(t *testing.T) {
	m, _ := setupTestModel(t, testutil.Board([]string{"buy milk"}, nil, nil, []string{"done task"}))

	content := m.View().Content
	for _, c := range models.Categories() {
		assert.Contains(t, content, c.DisplayName())
	}
	assert.Contains(t, content, "buy milk")
	assert.Contains(t, content, "done task")
}

func TestHelpMarkdown_ListsConfiguredKeys(t *testing.T) {
	km := config.DefaultKeyMappings()
	km.AddTask = "n"

	md := helpMarkdown(NewKeyMap(km))
	assert.Contains(t, md, "`n`")
	assert.Contains(t, md, "add task")
}

func TestView_StatusBarShowsHeldTask(t *testing.T) {
	m, _ := setupTestModel(t, testutil.Board([]string{"carry me"}, nil, nil, nil))

	sendKeys(m, specialKey(tea.KeySpace), runeKey('l'))

	assert.Nil(t, m.notice)
	assert.Contains(t, m.View().Content, "Holding")
}

func TestAutosave_FailureKeepsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.Mkdir(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "child"), []byte("x"), 0o644))

	a := app.New(storage.NewJSONFile(path), app.WithAutosave(true))
	m := New(context.Background(), a, config.Default())

	sendKeys(m, runeKey('a'))
	typeText(m, "still here")
	sendKeys(m, specialKey(tea.KeyEnter))

	assert.Equal(t, []string{"still here"}, a.Board().Tasks(models.Added))
	require.NotNil(t, m.notice)
	assert.Equal(t, levelError, m.notice.level)
	assert.Equal(t, 0, m.SelectedTask())
}
