package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartka-labs/kartka-cli/internal/adapters/driven/storage/memory"
	"github.com/kartka-labs/kartka-cli/internal/core/domain"
)

// newReconcileFixture wires a reconcile service over in-memory fakes.
// Each remote archive rasterizes into a single canned page.
func newReconcileFixture(remoteNames []string) (*ReconcileService, *memory.ContentStore, *mockRemote) {
	store := memory.NewContentStore()
	pages := make(map[string][]string, len(remoteNames))
	for _, name := range remoteNames {
		pages[name] = []string{"page-0.png"}
	}
	remote := &mockRemote{names: remoteNames}
	rasterizer := &mockRasterizer{pages: pages}
	archive := NewArchiveService(store, &mockExtractor{}, rasterizer, remote, nil, "")
	svc := NewReconcileService(store, remote, rasterizer, archive, nil)
	return svc, store, remote
}

func TestReconcileService_Hydrate(t *testing.T) {
	t.Run("nothing missing performs zero fetches", func(t *testing.T) {
		svc, store, remote := newReconcileFixture([]string{"a.pdf"})
		ctx := context.Background()
		require.NoError(t, store.Put(ctx, "a.pdf", "already here"))

		report, err := svc.Hydrate(ctx)

		require.NoError(t, err)
		assert.Zero(t, report.Pulled)
		assert.Empty(t, remote.downloads)
	})

	t.Run("pulls exactly the missing set and converges", func(t *testing.T) {
		svc, store, remote := newReconcileFixture([]string{"a.pdf", "b.pdf", "c.pdf"})
		ctx := context.Background()
		require.NoError(t, store.Put(ctx, "a.pdf", "local"))

		report, err := svc.Hydrate(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, report.Pulled)
		assert.Equal(t, []string{"b.pdf", "c.pdf"}, report.Identifiers)
		assert.ElementsMatch(t, []string{"b.pdf", "c.pdf"}, remote.downloads)

		ids, err := store.ListIdentifiers(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a.pdf", "b.pdf", "c.pdf"}, ids)
	})

	t.Run("re-indexes under the original remote identifier", func(t *testing.T) {
		svc, store, _ := newReconcileFixture([]string{"2020_01_01_00_00_00.pdf"})

		_, err := svc.Hydrate(context.Background())

		require.NoError(t, err)
		body, ok := store.Get("2020_01_01_00_00_00.pdf")
		require.True(t, ok)
		assert.Equal(t, "text of page-0.png\n", body)
	})

	t.Run("repeat hydrate is idempotent", func(t *testing.T) {
		svc, _, remote := newReconcileFixture([]string{"a.pdf"})
		ctx := context.Background()

		first, err := svc.Hydrate(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, first.Pulled)

		second, err := svc.Hydrate(ctx)
		require.NoError(t, err)
		assert.Zero(t, second.Pulled)
		assert.Len(t, remote.downloads, 1)
	})

	t.Run("remote listing failure aborts the run", func(t *testing.T) {
		svc, _, remote := newReconcileFixture(nil)
		remote.listErr = errors.New("rclone unreachable")

		_, err := svc.Hydrate(context.Background())

		assert.Error(t, err)
	})

	t.Run("first item failure aborts the whole run", func(t *testing.T) {
		store := memory.NewContentStore()
		remote := &mockRemote{names: []string{"a.pdf", "b.pdf"}}
		// Rasterizer with no canned pages: every item ingests an empty
		// batch and fails.
		rasterizer := &mockRasterizer{}
		archive := NewArchiveService(store, &mockExtractor{}, rasterizer, remote, nil, "")
		svc := NewReconcileService(store, remote, rasterizer, archive, nil)

		_, err := svc.Hydrate(context.Background())

		assert.ErrorIs(t, err, domain.ErrEmptyBatch)
		assert.Equal(t, []string{"a.pdf"}, remote.downloads, "abort on first failure")
	})

	t.Run("progress callback fires per missing item", func(t *testing.T) {
		svc, _, _ := newReconcileFixture([]string{"a.pdf", "b.pdf"})
		var seen []string
		svc.SetProgress(func(i, total int, name string) {
			assert.Equal(t, 2, total)
			seen = append(seen, name)
		})

		_, err := svc.Hydrate(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"a.pdf", "b.pdf"}, seen)
	})
}
