package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quadro/internal/models"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBoard()),
	}
	if m.mode == HelpMode {
		if help := m.helpLayer(); help != nil {
			layers = append(layers, help)
		}
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

func (m *Model) viewBoard() string {
	header := m.styles.Header.Render(fmt.Sprintf("quadro  ·  %d tasks", m.app.Board().Total()))

	columnWidth := max(m.width/int(models.NumCategories), 16)
	columns := make([]string, 0, models.NumCategories)
	for _, c := range models.Categories() {
		columns = append(columns, m.viewColumn(c, columnWidth))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	parts := []string{header}
	if m.mode == InputMode {
		parts = append(parts, m.styles.Input.Width(min(m.width, 80)).Render(m.input.View()))
	}
	parts = append(parts, board, m.viewStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) viewColumn(c models.Category, width int) string {
	tasks := m.app.Board().Tasks(c)
	selected := c == m.column
	inner := max(width-4, 1) // border and padding

	lines := []string{
		m.styles.ColumnTitle.Width(inner).Render(fmt.Sprintf("%s (%d)", c.DisplayName(), len(tasks))),
		"",
	}
	if len(tasks) == 0 {
		lines = append(lines, m.styles.Empty.Render("no tasks"))
	}
	for i, text := range tasks {
		style := m.styles.Task
		switch {
		case m.grabbed != nil && m.grabbed.from == c && m.grabbed.index == i:
			style = m.styles.GrabbedTask
		case selected && i == m.cursor[c]:
			style = m.styles.SelectedTask
		}
		lines = append(lines, style.Width(inner).Render(text))
	}

	style := m.styles.Column
	if selected {
		style = m.styles.SelectedColumn
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) viewStatusBar() string {
	if m.notice != nil {
		if m.notice.level == levelError {
			return m.styles.Error.Render(m.notice.text)
		}
		return m.styles.Info.Render(m.notice.text)
	}

	switch {
	case m.mode == InputMode:
		return m.styles.Hint.Render("enter: add  ·  esc: cancel")
	case m.grabbed != nil:
		return m.styles.Info.Render(fmt.Sprintf("Holding %q  ·  %s: drop here  ·  esc: cancel",
			m.grabbed.text, m.keys.GrabTask.Help().Key))
	default:
		return m.styles.Hint.Render(fmt.Sprintf("%s: help  ·  %s: quit",
			m.keys.Help.Help().Key, m.keys.Quit.Help().Key))
	}
}

// helpLayer centers the rendered help text over the board
func (m *Model) helpLayer() *lipgloss.Layer {
	width := min(m.width-4, 60)
	box := m.styles.HelpBox.Width(width).Render(renderHelp(m.keys, width-4))

	x := max((m.width-lipgloss.Width(box))/2, 0)
	y := max((m.height-lipgloss.Height(box))/2, 0)
	return lipgloss.NewLayer(box).X(x).Y(y)
}
