package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/quadro/internal/models"
	_ "modernc.org/sqlite"
)

// SQLite stores the board as one row per task. Category is stored by
// display name so the data reads the same as the JSON file.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the database at path and ensures
// the schema exists.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: failed to create directory: %w", models.ErrIOFailure, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", models.ErrIOFailure, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			closeDB(db)
			return nil, fmt.Errorf("%w: %s: %w", models.ErrIOFailure, pragma, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("%w: database ping failed: %w", models.ErrIOFailure, err)
	}

	// SQLite benefits from a single writer connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := migrate(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("%w: failed to run migrations: %w", models.ErrIOFailure, err)
	}

	return &SQLite{db: db, path: path}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			category TEXT NOT NULL,
			position INTEGER NOT NULL,
			text TEXT NOT NULL,
			PRIMARY KEY (category, position)
		)
	`)
	return err
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}

// Load reads every task row. Rows for unknown categories are ignored.
func (s *SQLite) Load(ctx context.Context) (models.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT category, text FROM tasks ORDER BY category, position`)
	if err != nil {
		return models.NewSnapshot(), fmt.Errorf("%w: querying tasks: %w", models.ErrIOFailure, err)
	}
	defer rows.Close()

	snap := models.NewSnapshot()
	skipped := 0
	for rows.Next() {
		var name, text string
		if err := rows.Scan(&name, &text); err != nil {
			return models.NewSnapshot(), fmt.Errorf("%w: scanning task row: %w", models.ErrCorruptData, err)
		}

		c, ok := models.CategoryFromDisplayName(name)
		if !ok {
			continue
		}
		if strings.TrimSpace(text) == "" {
			skipped++
			continue
		}
		snap[c] = append(snap[c], text)
	}
	if err := rows.Err(); err != nil {
		return models.NewSnapshot(), fmt.Errorf("%w: iterating task rows: %w", models.ErrIOFailure, err)
	}

	if skipped > 0 {
		slog.Warn("skipped blank tasks in board database", "path", s.path, "count", skipped)
	}
	return snap, nil
}

// Save replaces the stored board in a single transaction
func (s *SQLite) Save(ctx context.Context, snap models.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", models.ErrIOFailure, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("%w: clearing tasks: %w", models.ErrIOFailure, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tasks (category, position, text) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: preparing insert: %w", models.ErrIOFailure, err)
	}
	defer stmt.Close()

	for _, c := range models.Categories() {
		for pos, text := range snap.Tasks(c) {
			if _, err := stmt.ExecContext(ctx, c.DisplayName(), pos, text); err != nil {
				return fmt.Errorf("%w: inserting task: %w", models.ErrIOFailure, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", models.ErrIOFailure, err)
	}
	return nil
}

// Close closes the database handle
func (s *SQLite) Close() error {
	return s.db.Close()
}
