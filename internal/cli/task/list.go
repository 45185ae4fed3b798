package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the board",
		Long: `Print all four lists with their task numbers.

Task numbers start at 1 and are the ones move and rm expect.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	return withCLI(cmd, func(c *cli.CLI) error {
		c.Out.Board(c.App.Snapshot())
		return nil
	})
}
