package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// helpMarkdown builds the help text from the active key bindings
func helpMarkdown(keys KeyMap) string {
	var b strings.Builder
	b.WriteString("# Keyboard Shortcuts\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, binding := range keys.helpBindings() {
		h := binding.Help()
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	b.WriteString("\nTasks picked up with the grab key are dropped at the end of the selected list.\n")
	return b.String()
}

// renderHelp renders the help markdown, falling back to the raw text when
// glamour cannot render it
func renderHelp(keys KeyMap, width int) string {
	md := helpMarkdown(keys)
	renderer, err := getRenderer(max(width, 20))
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
