package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/models"
)

// Mode is the current input mode of the board
type Mode int

const (
	NormalMode Mode = iota
	InputMode
	HelpMode
)

// grab is a task that has been picked up and not yet dropped
type grab struct {
	from  models.Category
	index int
	text  string
}

type noticeLevel int

const (
	levelInfo noticeLevel = iota
	levelError
)

type notice struct {
	level noticeLevel
	text  string
}

// Model represents the application state for the TUI.
// All board mutations go through app.Apply as board commands.
type Model struct {
	ctx    context.Context
	app    *app.App
	keys   KeyMap
	styles Styles

	mode    Mode
	column  models.Category
	cursor  [models.NumCategories]int
	grabbed *grab
	input   textinput.Model
	notice  *notice

	width  int
	height int
}

// New creates the TUI model for an already loaded app
func New(ctx context.Context, a *app.App, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a new task"
	ti.Prompt = "> "
	ti.CharLimit = 500

	return &Model{
		ctx:    ctx,
		app:    a,
		keys:   NewKeyMap(cfg.KeyMappings),
		styles: NewStyles(cfg.ColorScheme),
		column: models.Added,
		input:  ti,
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m *Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current input mode
func (m *Model) Mode() Mode {
	return m.mode
}

// Column returns the selected list
func (m *Model) Column() models.Category {
	return m.column
}

// SelectedTask returns the cursor index in the selected list
func (m *Model) SelectedTask() int {
	return m.cursor[m.column]
}

// Notify shows a one-line message in the status bar
func (m *Model) Notify(text string) {
	m.notice = &notice{level: levelInfo, text: text}
}

// NotifyError shows an error in the status bar
func (m *Model) NotifyError(text string) {
	m.notice = &notice{level: levelError, text: text}
}

// clampCursor keeps the cursor of c inside its list
func (m *Model) clampCursor(c models.Category) {
	n := m.app.Board().Len(c)
	if m.cursor[c] >= n {
		m.cursor[c] = n - 1
	}
	if m.cursor[c] < 0 {
		m.cursor[c] = 0
	}
}
