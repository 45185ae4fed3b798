// Package task holds the board subcommands: list, add, move and rm.
package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/board"
	"github.com/thenoetrevino/quadro/internal/cli"
)

// Commands returns every board subcommand
func Commands() []*cobra.Command {
	return []*cobra.Command{
		ListCmd(),
		AddCmd(),
		MoveCmd(),
		RmCmd(),
	}
}

// withCLI resolves the CLI for a command and closes it afterwards when
// the command built it
func withCLI(cmd *cobra.Command, fn func(*cli.CLI) error) error {
	cliInstance, owned, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "❌ Error: %v\n", err)
		return cli.Reported(err)
	}
	if owned {
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("Error closing CLI", "error", err)
			}
		}()
	}
	return fn(cliInstance)
}

// applyAndSave runs a board command and persists the result
func applyAndSave(ctx context.Context, c *cli.CLI, command board.Command) error {
	if err := c.App.Apply(ctx, command); err != nil {
		c.Out.Error(err.Error())
		return cli.Reported(err)
	}
	if err := c.App.Save(ctx); err != nil {
		c.Out.ErrorWithSuggestion(err.Error(), "check that the board file's directory is writable")
		return cli.Reported(err)
	}
	return nil
}
