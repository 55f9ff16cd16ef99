// Package sqlite provides the SQLite-backed scan journal.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driven"
)

// Ensure Journal implements the interface.
var _ driven.ScanJournal = (*Journal)(nil)

// schema is applied on open. The journal is append-only.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	operation   TEXT NOT NULL,
	identifier  TEXT NOT NULL,
	pages       INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
`

// Journal records completed scan and hydrate runs in a SQLite database.
type Journal struct {
	db   *sql.DB
	path string
}

// NewJournal opens (or creates) the journal database under dataDir.
// If dataDir is empty, defaults to ~/.kartka/data/journal.db.
func NewJournal(dataDir string) (*Journal, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".kartka", "data")
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "journal.db")

	// WAL mode so a long-running serve process and CLI runs coexist.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying journal schema: %w", err)
	}

	return &Journal{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Path returns the database file path.
func (j *Journal) Path() string {
	return j.path
}

// Record appends one run entry.
func (j *Journal) Record(ctx context.Context, entry domain.JournalEntry) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO runs (id, operation, identifier, pages, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Operation, entry.Identifier, entry.Pages,
		entry.Duration.Milliseconds(), entry.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
// A limit <= 0 returns all entries.
func (j *Journal) List(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	query := `
		SELECT id, operation, identifier, pages, duration_ms, created_at
		FROM runs ORDER BY created_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var entry domain.JournalEntry
		var durationMS int64
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.Operation, &entry.Identifier,
			&entry.Pages, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		entry.Duration = time.Duration(durationMS) * time.Millisecond
		entry.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing journal timestamp: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}

	return entries, nil
}
