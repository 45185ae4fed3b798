// Package testutil holds fixtures shared by the board's package tests.
package testutil

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/storage"
)

// Board builds a snapshot from the four lists in category order
func Board(added, doNow, sometime, done []string) models.Snapshot {
	snap := models.NewSnapshot()
	snap[models.Added] = append(snap[models.Added], added...)
	snap[models.DoNow] = append(snap[models.DoNow], doNow...)
	snap[models.Sometime] = append(snap[models.Sometime], sometime...)
	snap[models.Done] = append(snap[models.Done], done...)
	return snap
}

// NewBoardFile returns a JSON board file in a temp dir, pre-populated with
// snap unless it is nil
func NewBoardFile(t *testing.T, snap models.Snapshot) *storage.JSONFile {
	t.Helper()

	f := storage.NewJSONFile(filepath.Join(t.TempDir(), "tasks.json"))
	if snap != nil {
		if err := f.Save(context.Background(), snap); err != nil {
			t.Fatalf("Failed to write test board: %v", err)
		}
	}
	return f
}

// NewLoadedApp returns an App whose board has been loaded from a fresh file
func NewLoadedApp(t *testing.T, snap models.Snapshot, opts ...app.Option) (*app.App, *storage.JSONFile) {
	t.Helper()

	f := NewBoardFile(t, snap)
	a := app.New(f, opts...)
	if err := a.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load test board: %v", err)
	}
	return a, f
}

// ReadBoard loads what is currently persisted in adapter
func ReadBoard(t *testing.T, adapter storage.Adapter) models.Snapshot {
	t.Helper()

	snap, err := adapter.Load(context.Background())
	if err != nil {
		t.Fatalf("Failed to read board: %v", err)
	}
	return snap
}

// CaptureStderr captures stderr, including the standard logger, during
// function execution
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()

	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stderr = w
	log.SetOutput(w)

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stderr = oldStderr
	log.SetOutput(oldStderr)

	return <-outC
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
