package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/hooks"
	"github.com/thenoetrevino/quadro/internal/logging"
	"github.com/thenoetrevino/quadro/internal/storage"
	"github.com/thenoetrevino/quadro/internal/tui"
)

// programRunner runs the TUI until the user quits or ctx is cancelled
type programRunner func(ctx context.Context, m *tui.Model) error

func runProgram(ctx context.Context, m *tui.Model) error {
	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()
	// a signal cancels ctx; the board is still saved on the way out
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Launch starts the TUI application
func Launch() error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	return run(ctx, cfg, os.Stderr, runProgram)
}

// run wires storage, the auto-commit hook and the TUI. Load and hook
// failures are reported on stderr and never stop the board from opening.
func run(ctx context.Context, cfg *config.Config, stderr io.Writer, runner programRunner) error {
	if cfg.AutoCommit.Enabled {
		runAutoCommit(ctx, cfg, stderr)
	}

	adapter, err := storage.Open(ctx, cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	application := app.New(adapter,
		app.WithAutosave(cfg.Autosave),
		app.WithLogger(logging.Logger),
	)
	defer func() {
		if closeErr := application.Close(); closeErr != nil {
			slog.Error("error closing storage", "error", closeErr)
		}
	}()

	loadErr := application.Load(ctx)
	if loadErr != nil {
		fmt.Fprintf(stderr, "warning: %v; starting with an empty board\n", loadErr)
	}

	model := tui.New(ctx, application, cfg)
	if loadErr != nil {
		model.NotifyError(fmt.Sprintf("Could not load board, starting empty: %v", loadErr))
	}

	runErr := runner(ctx, model)

	// an unreadable board with nothing new to write is left as it was
	if application.LoadFailed() && !application.Dirty() {
		fmt.Fprintf(stderr, "board left untouched at %s\n", cfg.Storage.Path)
		if runErr != nil {
			return fmt.Errorf("error running program: %w", runErr)
		}
		return nil
	}

	// Save with a fresh context so a cancelled root context still persists
	if saveErr := application.Save(context.WithoutCancel(ctx)); saveErr != nil {
		fmt.Fprintf(stderr, "error: %v\n", saveErr)
		return errors.Join(runErr, saveErr)
	}

	if backup := application.Backup(); backup != "" {
		fmt.Fprintf(stderr, "the unreadable board was kept as %s\n", backup)
	}

	if runErr != nil {
		return fmt.Errorf("error running program: %w", runErr)
	}
	return nil
}

func runAutoCommit(ctx context.Context, cfg *config.Config, stderr io.Writer) {
	dir := "."
	if abs, err := filepath.Abs(cfg.Storage.Path); err == nil {
		dir = filepath.Dir(abs)
	}

	hook := &hooks.AutoCommit{
		Dir:     dir,
		Push:    cfg.AutoCommit.ShouldPush(),
		Timeout: cfg.AutoCommit.Timeout,
	}
	result, err := hook.Run(ctx)
	if err != nil {
		slog.Warn("auto-commit failed", "dir", dir, "completed", result.Steps, "error", err)
		fmt.Fprintf(stderr, "warning: auto-commit failed: %v\n", err)
		return
	}
	slog.Info("auto-commit complete", "dir", dir, "steps", result.Steps)
}
