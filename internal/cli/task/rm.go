package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/board"
	"github.com/thenoetrevino/quadro/internal/cli"
)

// RmCmd returns the rm subcommand
func RmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <list> <number>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long: `Delete a task from a list.

Examples:
  quadro rm done 1
`,
		Args: cobra.ExactArgs(2),
		RunE: runRm,
	}
}

func runRm(cmd *cobra.Command, args []string) error {
	category, err := cli.ParseCategory(args[0])
	if err != nil {
		return usageError(cmd, err)
	}
	index, err := cli.ParseIndex(args[1])
	if err != nil {
		return usageError(cmd, err)
	}

	return withCLI(cmd, func(c *cli.CLI) error {
		text, err := c.App.Board().Task(category, index)
		if err != nil {
			c.Out.ErrorWithSuggestion(err.Error(), `run "quadro list" to see task numbers`)
			return cli.Reported(err)
		}
		if err := applyAndSave(cmd.Context(), c, board.DeleteTask{Category: category, Index: index}); err != nil {
			return err
		}
		c.Out.Success(fmt.Sprintf("Deleted %q from %s", text, category.DisplayName()))
		return nil
	})
}
