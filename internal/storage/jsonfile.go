package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thenoetrevino/quadro/internal/models"
)

// JSONFile stores the board as a single JSON object keyed by category
// display name, e.g.
//
//	{"TODO – Added": ["buy milk"], "TODO – Do Now": [], "TODO – Sometime": [], "DONE": []}
type JSONFile struct {
	path string

	// rename is os.Rename outside of tests
	rename func(oldpath, newpath string) error
}

// NewJSONFile returns an adapter for the file at path. Nothing is touched
// until Load or Save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{
		path:   path,
		rename: os.Rename,
	}
}

// Path returns the backing file path
func (f *JSONFile) Path() string {
	return f.path
}

// Load reads the board file. A missing file is an empty board, not an error.
func (f *JSONFile) Load(ctx context.Context) (models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return models.NewSnapshot(), err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.NewSnapshot(), nil
	}
	if err != nil {
		return models.NewSnapshot(), fmt.Errorf("%w: reading %s: %w", models.ErrIOFailure, f.path, err)
	}

	snap, skipped, err := decodeSnapshot(data)
	if err != nil {
		return models.NewSnapshot(), fmt.Errorf("%w: %s: %w", models.ErrCorruptData, f.path, err)
	}
	if skipped > 0 {
		slog.Warn("skipped blank tasks in board file", "path", f.path, "count", skipped)
	}

	return snap, nil
}

// Save writes the board to a temp file next to the target and renames it
// into place, so a failed write never clobbers the previous file.
func (f *JSONFile) Save(ctx context.Context, snap models.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("encoding board: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %w", models.ErrIOFailure, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %w", models.ErrIOFailure, err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			if rmErr := os.Remove(tmpPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				slog.Error("error removing temp board file", "path", tmpPath, "error", rmErr)
			}
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: writing %s: %w", models.ErrIOFailure, tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: syncing %s: %w", models.ErrIOFailure, tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", models.ErrIOFailure, tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("%w: chmod %s: %w", models.ErrIOFailure, tmpPath, err)
	}
	if err := f.rename(tmpPath, f.path); err != nil {
		return fmt.Errorf("%w: replacing %s: %w", models.ErrIOFailure, f.path, err)
	}

	committed = true
	return nil
}

// Preserve renames the board file to a timestamped .bak next to it
func (f *JSONFile) Preserve(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	backup := fmt.Sprintf("%s.%s.bak", f.path, time.Now().Format("20060102-150405"))
	if err := f.rename(f.path, backup); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("%w: keeping a copy of %s: %w", models.ErrIOFailure, f.path, err)
	}
	return backup, nil
}

// Close is a no-op; the file is only open during Load and Save
func (f *JSONFile) Close() error {
	return nil
}

// encodeSnapshot writes the categories in board order. encoding/json sorts
// map keys, so the object is assembled by hand.
func encodeSnapshot(snap models.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range models.Categories() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(c.DisplayName())
		if err != nil {
			return nil, err
		}
		tasks, err := json.Marshal(snap.Tasks(c))
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(tasks)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// decodeSnapshot parses and validates a board document. It returns the
// number of blank entries that were dropped.
func decodeSnapshot(data []byte) (models.Snapshot, int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, 0, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, 0, errors.New("invalid JSON: trailing data after board object")
	}

	if err := validateDocument(doc); err != nil {
		return nil, 0, err
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, 0, errors.New("board file is not a JSON object")
	}

	snap := models.NewSnapshot()
	skipped := 0
	for key, value := range obj {
		c, known := models.CategoryFromDisplayName(key)
		if !known {
			continue
		}

		items, ok := value.([]any)
		if !ok {
			return nil, 0, fmt.Errorf("%q is not a list", key)
		}
		for _, item := range items {
			text, ok := item.(string)
			if !ok {
				return nil, 0, fmt.Errorf("%q contains a non-string task", key)
			}
			if strings.TrimSpace(text) == "" {
				skipped++
				continue
			}
			snap[c] = append(snap[c], text)
		}
	}

	return snap, skipped, nil
}
