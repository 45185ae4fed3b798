package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/logging"
	"github.com/thenoetrevino/quadro/internal/storage"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container holding the loaded board
	Config *config.Config
	Out    *OutputFormatter
}

// New wraps an already loaded app, writing output to out and errOut
func New(a *app.App, cfg *config.Config, out, errOut io.Writer) *CLI {
	styles.Init(cfg.ColorScheme)
	return &CLI{
		App:    a,
		Config: cfg,
		Out:    &OutputFormatter{Out: out, Err: errOut},
	}
}

// NewCLI opens the configured storage and loads the board.
// Unlike the TUI, a board that fails to load is an error here: saving after
// a fallback to an empty board would overwrite the user's file.
func NewCLI(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*CLI, error) {
	adapter, err := storage.Open(ctx, cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	application := app.New(adapter, app.WithLogger(logger))
	if err := application.Load(ctx); err != nil {
		if closeErr := application.Close(); closeErr != nil {
			slog.Error("error closing storage", "error", closeErr)
		}
		return nil, err
	}

	return New(application, cfg, os.Stdout, os.Stderr), nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

type cliKey struct{}

// WithCLI stores a prepared CLI in ctx. Commands use it instead of building
// their own.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the CLI stored in ctx, or builds one from the
// user's configuration. owned reports whether the caller must close it.
// Logs go to the log file so stderr only carries command errors.
func GetCLIFromContext(ctx context.Context) (c *CLI, owned bool, err error) {
	if c, ok := ctx.Value(cliKey{}).(*CLI); ok && c != nil {
		return c, false, nil
	}

	if err := logging.Init(); err != nil {
		logging.Discard()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, false, fmt.Errorf("failed to load configuration: %w", err)
	}

	c, err = NewCLI(ctx, cfg, logging.Logger)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}
