package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/board"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/models"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task to the Added list",
		Long: `Add a task to the end of the Added list.

All arguments are joined with spaces, so quoting is optional.

Examples:
  quadro add buy milk
  quadro add "call the bank"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	return withCLI(cmd, func(c *cli.CLI) error {
		if err := applyAndSave(cmd.Context(), c, board.AddTask{Category: models.Added, Text: text}); err != nil {
			return err
		}
		c.Out.Success(fmt.Sprintf("Added %q to %s", strings.TrimSpace(text), models.Added.DisplayName()))
		return nil
	})
}
