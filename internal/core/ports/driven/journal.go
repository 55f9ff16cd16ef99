package driven

import (
	"context"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
)

// ScanJournal durably records completed scan and hydrate runs.
// Backed by SQLite. The journal is an audit trail, not pipeline state:
// services treat a nil journal as "do not record".
type ScanJournal interface {
	// Record appends one run entry.
	Record(ctx context.Context, entry domain.JournalEntry) error

	// List returns the most recent entries, newest first.
	// A limit <= 0 returns all entries.
	List(ctx context.Context, limit int) ([]domain.JournalEntry, error)

	// Close releases the underlying database handle.
	Close() error
}
