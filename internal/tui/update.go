package tui

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/board"
	"github.com/thenoetrevino/quadro/internal/models"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch m.mode {
		case InputMode:
			return m, m.handleInputMode(msg)
		case HelpMode:
			return m, m.handleHelpMode(msg)
		default:
			return m, m.handleNormalMode(msg)
		}
	}

	if m.mode == InputMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

func (m *Model) handleNormalMode(msg tea.KeyPressMsg) tea.Cmd {
	m.notice = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.mode = HelpMode
	case key.Matches(msg, m.keys.Cancel):
		if m.grabbed != nil {
			m.grabbed = nil
			m.Notify("Drop cancelled")
		}
	case key.Matches(msg, m.keys.AddTask):
		m.mode = InputMode
		return m.input.Focus()
	case key.Matches(msg, m.keys.PrevColumn):
		if prev, ok := m.column.Prev(); ok {
			m.column = prev
		}
	case key.Matches(msg, m.keys.NextColumn):
		if next, ok := m.column.Next(); ok {
			m.column = next
		}
	case key.Matches(msg, m.keys.PrevTask):
		if m.cursor[m.column] > 0 {
			m.cursor[m.column]--
		}
	case key.Matches(msg, m.keys.NextTask):
		if m.cursor[m.column] < m.app.Board().Len(m.column)-1 {
			m.cursor[m.column]++
		}
	case key.Matches(msg, m.keys.GrabTask):
		m.handleGrabOrDrop()
	case key.Matches(msg, m.keys.MoveTaskLeft):
		if prev, ok := m.column.Prev(); ok {
			m.moveSelected(prev)
		} else {
			m.Notify("There are no more lists to move to.")
		}
	case key.Matches(msg, m.keys.MoveTaskRight):
		if next, ok := m.column.Next(); ok {
			m.moveSelected(next)
		} else {
			m.Notify("There are no more lists to move to.")
		}
	case key.Matches(msg, m.keys.DeleteTask):
		m.deleteSelected()
	case key.Matches(msg, m.keys.Save):
		if err := m.app.Save(m.ctx); err != nil {
			m.NotifyError(fmt.Sprintf("Save failed: %v", err))
		} else {
			m.Notify("Board saved")
		}
	}

	return nil
}

// handleGrabOrDrop picks up the selected task, or drops the held one onto
// the selected list.
func (m *Model) handleGrabOrDrop() {
	if m.grabbed == nil {
		text, err := m.app.Board().Task(m.column, m.cursor[m.column])
		if err != nil {
			return
		}
		m.grabbed = &grab{from: m.column, index: m.cursor[m.column], text: text}
		m.Notify(fmt.Sprintf("Picked up %q: choose a list and press %s to drop", text, m.keys.GrabTask.Help().Key))
		return
	}

	g := m.grabbed
	m.grabbed = nil
	if m.apply(board.MoveTask{From: g.from, Index: g.index, To: m.column}) {
		m.cursor[m.column] = m.app.Board().Len(m.column) - 1
		m.clampCursor(g.from)
	}
}

// moveSelected sends the selected task to dst; the selection follows it
func (m *Model) moveSelected(dst models.Category) {
	if m.grabbed != nil {
		m.Notify("Drop or cancel the held task first")
		return
	}
	if m.app.Board().Len(m.column) == 0 {
		return
	}

	src := m.column
	if m.apply(board.MoveTask{From: src, Index: m.cursor[src], To: dst}) {
		m.clampCursor(src)
		m.column = dst
		m.cursor[dst] = m.app.Board().Len(dst) - 1
	}
}

func (m *Model) deleteSelected() {
	if m.grabbed != nil {
		m.Notify("Drop or cancel the held task first")
		return
	}
	if m.app.Board().Len(m.column) == 0 {
		return
	}

	if m.apply(board.DeleteTask{Category: m.column, Index: m.cursor[m.column]}) {
		m.clampCursor(m.column)
	}
}

// apply runs cmd and reports failures in the status bar. It returns true
// when the board changed, even if the autosave that followed failed.
func (m *Model) apply(cmd board.Command) bool {
	err := m.app.Apply(m.ctx, cmd)
	switch {
	case err == nil:
		return true
	case errors.Is(err, models.ErrInvalidInput):
		// rejected silently
		return false
	case errors.Is(err, models.ErrIndexOutOfRange):
		m.NotifyError("That task is no longer there")
		return false
	case errors.Is(err, models.ErrUnknownCategory):
		m.NotifyError(err.Error())
		return false
	default:
		// the command applied; only the autosave failed
		m.NotifyError(fmt.Sprintf("Autosave failed: %v", err))
		return true
	}
}

// ============================================================================
// INPUT MODE HANDLERS
// ============================================================================

func (m *Model) handleInputMode(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		text := m.input.Value()
		m.closeInput()
		if m.apply(board.AddTask{Category: models.Added, Text: text}) && m.column == models.Added {
			m.cursor[models.Added] = m.app.Board().Len(models.Added) - 1
		}
		return nil
	case "esc":
		m.closeInput()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) closeInput() {
	m.input.Reset()
	m.input.Blur()
	m.mode = NormalMode
}

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

func (m *Model) handleHelpMode(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Help, m.keys.Cancel, m.keys.Quit):
		m.mode = NormalMode
	case msg.String() == "enter":
		m.mode = NormalMode
	}
	return nil
}
