package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	journal, err := NewJournal(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { journal.Close() })
	return journal
}

func TestJournal_Record(t *testing.T) {
	t.Run("round-trips an entry", func(t *testing.T) {
		journal := newTestJournal(t)
		ctx := context.Background()
		entry := domain.JournalEntry{
			ID:         "run-1",
			Operation:  domain.OperationScan,
			Identifier: "2024_01_01_10_00_00.pdf",
			Pages:      3,
			Duration:   4200 * time.Millisecond,
			CreatedAt:  time.Date(2024, 1, 1, 10, 0, 5, 0, time.UTC),
		}

		require.NoError(t, journal.Record(ctx, entry))

		entries, err := journal.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, entry.ID, entries[0].ID)
		assert.Equal(t, entry.Operation, entries[0].Operation)
		assert.Equal(t, entry.Identifier, entries[0].Identifier)
		assert.Equal(t, entry.Pages, entries[0].Pages)
		assert.Equal(t, entry.Duration, entries[0].Duration)
		assert.True(t, entry.CreatedAt.Equal(entries[0].CreatedAt))
	})

	t.Run("rejects duplicate run IDs", func(t *testing.T) {
		journal := newTestJournal(t)
		ctx := context.Background()
		entry := domain.JournalEntry{ID: "run-1", Operation: domain.OperationScan, CreatedAt: time.Now()}

		require.NoError(t, journal.Record(ctx, entry))
		assert.Error(t, journal.Record(ctx, entry))
	})
}

func TestJournal_List(t *testing.T) {
	t.Run("newest first with limit", func(t *testing.T) {
		journal := newTestJournal(t)
		ctx := context.Background()
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		for i, id := range []string{"run-1", "run-2", "run-3"} {
			require.NoError(t, journal.Record(ctx, domain.JournalEntry{
				ID:        id,
				Operation: domain.OperationHydrate,
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			}))
		}

		entries, err := journal.List(ctx, 2)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "run-3", entries[0].ID)
		assert.Equal(t, "run-2", entries[1].ID)
	})

	t.Run("empty journal lists nothing", func(t *testing.T) {
		journal := newTestJournal(t)

		entries, err := journal.List(context.Background(), 10)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
