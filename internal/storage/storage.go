// Package storage persists board snapshots between sessions.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/thenoetrevino/quadro/internal/models"
)

// Backend names accepted in configuration
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Adapter loads and saves whole-board snapshots.
//
// Load returns an empty snapshot together with any error so callers can
// always fall back to a usable board. Errors wrap models.ErrCorruptData or
// models.ErrIOFailure.
type Adapter interface {
	Load(ctx context.Context) (models.Snapshot, error)
	Save(ctx context.Context, snap models.Snapshot) error
	Close() error
}

// Preserver is implemented by adapters that can move an unreadable stored
// board aside before it is overwritten. Preserve returns the backup location,
// or "" when there was nothing to keep.
type Preserver interface {
	Preserve(ctx context.Context) (string, error)
}

// Open returns the adapter for the named backend
func Open(ctx context.Context, backend, path string) (Adapter, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendJSON:
		return NewJSONFile(path), nil
	case BackendSQLite:
		return OpenSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (expected %q or %q)", backend, BackendJSON, BackendSQLite)
	}
}
