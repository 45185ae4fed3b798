package cli

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/models"
)

// OutputFormatter writes human-readable results and errors.
// Colors are downsampled to what each writer supports, so redirected
// output stays plain text.
type OutputFormatter struct {
	Out io.Writer
	Err io.Writer
}

// Success prints a one-line confirmation
func (f *OutputFormatter) Success(message string) {
	lipgloss.Fprintln(f.Out, styles.SuccessStyle.Render("✓ "+message))
}

// Error outputs error information
func (f *OutputFormatter) Error(message string) {
	f.ErrorWithSuggestion(message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(message string, suggestion string) {
	lipgloss.Fprintln(f.Err, styles.ErrorStyle.Render("❌ Error: "+message))
	if suggestion != "" {
		lipgloss.Fprintln(f.Err, styles.SubtitleStyle.Render("💡 Suggestion: "+suggestion))
	}
}

// Board prints every list with 1-based task numbers
func (f *OutputFormatter) Board(snap models.Snapshot) {
	for i, c := range models.Categories() {
		if i > 0 {
			lipgloss.Fprintln(f.Out)
		}
		tasks := snap.Tasks(c)
		lipgloss.Fprintf(f.Out, "%s %s\n",
			styles.TitleStyle.Render(c.DisplayName()),
			styles.SubtitleStyle.Render(fmt.Sprintf("(%s, %d)", c.String(), len(tasks))))

		if len(tasks) == 0 {
			lipgloss.Fprintln(f.Out, "  "+styles.SubtitleStyle.Render("no tasks"))
			continue
		}
		for n, text := range tasks {
			lipgloss.Fprintf(f.Out, "  %s %s\n",
				styles.LabelStyle.Render(fmt.Sprintf("%d.", n+1)),
				styles.ValueStyle.Render(text))
		}
	}
}
