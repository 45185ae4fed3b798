package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli/task"
	"github.com/thenoetrevino/quadro/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "quadro",
	Short: "quadro - a four-list task board",
	Long: `quadro keeps tasks in four lists: Added, Do Now, Sometime and Done.

Run without arguments to open the board in the terminal. The subcommands
change the same board from scripts.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.AddCommand(task.Commands()...)
}

func Execute() error {
	return rootCmd.Execute()
}
