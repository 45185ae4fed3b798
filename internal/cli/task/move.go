package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/board"
	"github.com/thenoetrevino/quadro/internal/cli"
)

// MoveCmd returns the move subcommand
func MoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <number> <to>",
		Short: "Move a task to another list",
		Long: `Move a task to the end of another list.

Lists are named added, donow, sometime or done. Task numbers are the ones
printed by "quadro list".

Examples:
  quadro move added 2 donow
  quadro move donow 1 done
`,
		Args: cobra.ExactArgs(3),
		RunE: runMove,
	}
}

func runMove(cmd *cobra.Command, args []string) error {
	from, err := cli.ParseCategory(args[0])
	if err != nil {
		return usageError(cmd, err)
	}
	index, err := cli.ParseIndex(args[1])
	if err != nil {
		return usageError(cmd, err)
	}
	to, err := cli.ParseCategory(args[2])
	if err != nil {
		return usageError(cmd, err)
	}

	return withCLI(cmd, func(c *cli.CLI) error {
		text, err := c.App.Board().Task(from, index)
		if err != nil {
			c.Out.ErrorWithSuggestion(err.Error(), `run "quadro list" to see task numbers`)
			return cli.Reported(err)
		}
		if err := applyAndSave(cmd.Context(), c, board.MoveTask{From: from, Index: index, To: to}); err != nil {
			return err
		}
		c.Out.Success(fmt.Sprintf("Moved %q to %s", text, to.DisplayName()))
		return nil
	})
}

func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "❌ Error: %v\n", err)
	return cli.Reported(err)
}
