package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/quadro/internal/config"
)

// KeyMap holds the bindings for normal mode
type KeyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding

	AddTask       key.Binding
	DeleteTask    key.Binding
	GrabTask      key.Binding
	MoveTaskLeft  key.Binding
	MoveTaskRight key.Binding

	Cancel key.Binding
	Save   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// NewKeyMap builds bindings from the configured mappings. Arrow keys, the
// delete key and ctrl+c are always bound.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		PrevColumn: key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "previous list")),
		NextColumn: key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "next list")),
		PrevTask:   key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "previous task")),
		NextTask:   key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "next task")),

		AddTask:       key.NewBinding(key.WithKeys(km.AddTask), key.WithHelp(km.AddTask, "add task")),
		DeleteTask:    key.NewBinding(key.WithKeys(km.DeleteTask, "delete"), key.WithHelp(km.DeleteTask+"/del", "delete task")),
		GrabTask:      key.NewBinding(key.WithKeys(km.GrabTask), key.WithHelp(km.GrabTask, "pick up / drop")),
		MoveTaskLeft:  key.NewBinding(key.WithKeys(km.MoveTaskLeft), key.WithHelp(km.MoveTaskLeft, "move to previous list")),
		MoveTaskRight: key.NewBinding(key.WithKeys(km.MoveTaskRight), key.WithHelp(km.MoveTaskRight, "move to next list")),

		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Save:   key.NewBinding(key.WithKeys(km.Save), key.WithHelp(km.Save, "save")),
		Help:   key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:   key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "save and quit")),
	}
}

// helpBindings lists bindings in the order they appear in the help overlay
func (k KeyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask,
		k.AddTask, k.GrabTask, k.MoveTaskLeft, k.MoveTaskRight, k.DeleteTask,
		k.Cancel, k.Save, k.Help, k.Quit,
	}
}
