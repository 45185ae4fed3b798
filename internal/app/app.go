package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/quadro/internal/board"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/storage"
)

// App owns the board and the adapter that persists it.
// This is the container handed to the TUI and CLI; there is no global board.
type App struct {
	board   *board.Store
	adapter storage.Adapter

	autosave bool
	logger   *slog.Logger

	// loadFailed is set while the stored board could not be read; the next
	// save must not replace it blindly
	loadFailed bool
	dirty      bool
	backup     string
}

// New creates an App with an empty board. Call Load to populate it.
func New(adapter storage.Adapter, opts ...Option) *App {
	cfg := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &App{
		board:    board.New(),
		adapter:  adapter,
		autosave: cfg.autosave,
		logger:   cfg.logger,
	}
}

// Board returns the live board for read access
func (a *App) Board() *board.Store {
	return a.board
}

// Load replaces the board with the persisted one. On failure the board is
// reset to empty and the error is returned for the caller to report.
func (a *App) Load(ctx context.Context) error {
	snap, err := a.adapter.Load(ctx)
	a.dirty = false
	if err != nil {
		a.logger.Error("failed to load board, starting empty", "error", err)
		a.board = board.New()
		a.loadFailed = true
		return fmt.Errorf("load board: %w", err)
	}

	a.board = board.FromSnapshot(snap)
	a.loadFailed = false
	a.logger.Info("board loaded", "tasks", a.board.Total())
	return nil
}

// Apply runs cmd against the board. With autosave on, a successful mutation
// is persisted immediately; a failed save is returned but the mutation stays.
func (a *App) Apply(ctx context.Context, cmd board.Command) error {
	if err := cmd.Apply(a.board); err != nil {
		a.logger.Debug("command rejected", "command", cmd.String(), "error", err)
		return err
	}
	a.logger.Debug("command applied", "command", cmd.String())
	a.dirty = true

	if a.autosave {
		return a.Save(ctx)
	}
	return nil
}

// Save writes the current board through the adapter. After a failed Load
// the unreadable board is first moved aside; adapters that cannot do that
// refuse to save.
func (a *App) Save(ctx context.Context) error {
	if a.loadFailed {
		if err := a.preserveUnreadable(ctx); err != nil {
			a.logger.Error("refusing to overwrite unreadable board", "error", err)
			return fmt.Errorf("save board: %w", err)
		}
	}

	if err := a.adapter.Save(ctx, a.board.Snapshot()); err != nil {
		a.logger.Error("failed to save board", "error", err)
		return fmt.Errorf("save board: %w", err)
	}
	a.dirty = false
	a.logger.Info("board saved", "tasks", a.board.Total())
	return nil
}

func (a *App) preserveUnreadable(ctx context.Context) error {
	p, ok := a.adapter.(storage.Preserver)
	if !ok {
		return fmt.Errorf("%w: the stored board could not be loaded and this backend cannot keep a copy", models.ErrIOFailure)
	}

	backup, err := p.Preserve(ctx)
	if err != nil {
		return err
	}
	a.loadFailed = false
	a.backup = backup
	if backup != "" {
		a.logger.Warn("unreadable board moved aside", "backup", backup)
	}
	return nil
}

// LoadFailed reports whether the last Load failed and the stored board has
// not been replaced since
func (a *App) LoadFailed() bool {
	return a.loadFailed
}

// Dirty reports whether the board changed since it was last loaded or saved
func (a *App) Dirty() bool {
	return a.dirty
}

// Backup returns where an unreadable board was moved, if that happened
func (a *App) Backup() string {
	return a.backup
}

// Snapshot returns a detached copy of the board
func (a *App) Snapshot() models.Snapshot {
	return a.board.Snapshot()
}

// Close releases the adapter
func (a *App) Close() error {
	return a.adapter.Close()
}
