package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driven"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driving"
	"github.com/kartka-labs/kartka-cli/internal/logger"
)

// Ensure ReconcileService implements the interface.
var _ driving.ReconcileService = (*ReconcileService)(nil)

// ReconcileService pulls down every remote archive absent from the local
// content store and re-extracts its text, so the local index stays
// complete. The pull is one-way: a remote identifier already present
// locally is never re-fetched, even if its remote content changed.
type ReconcileService struct {
	store      driven.ContentStore
	remote     driven.RemoteStore
	rasterizer driven.Rasterizer
	archive    driving.ArchiveService
	journal    driven.ScanJournal

	now      func() time.Time
	progress func(i, total int, name string)
}

// NewReconcileService creates a new reconciliation service.
// The journal parameter is optional (can be nil).
func NewReconcileService(
	store driven.ContentStore,
	remote driven.RemoteStore,
	rasterizer driven.Rasterizer,
	archive driving.ArchiveService,
	journal driven.ScanJournal,
) *ReconcileService {
	return &ReconcileService{
		store:      store,
		remote:     remote,
		rasterizer: rasterizer,
		archive:    archive,
		journal:    journal,
		now:        time.Now,
	}
}

// SetProgress installs a per-item progress callback, invoked before each
// missing archive is pulled. The CLI uses it to echo "(i/n) pulling ...".
func (s *ReconcileService) SetProgress(fn func(i, total int, name string)) {
	s.progress = fn
}

// Hydrate computes the missing set (remote minus local) and pulls each
// missing archive. The first failing item aborts the whole run; every
// item's temporary working area is cleaned up on all exit paths.
func (s *ReconcileService) Hydrate(ctx context.Context) (*driving.HydrateReport, error) {
	logger.Section("Hydrate")

	missing, err := s.missingSet(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("%d archives missing locally", len(missing))

	report := &driving.HydrateReport{}
	for i, name := range missing {
		logger.Info("(%d/%d) pulling %s", i+1, len(missing), name)
		if s.progress != nil {
			s.progress(i+1, len(missing), name)
		}
		if err := s.pullOne(ctx, name); err != nil {
			return nil, err
		}
		report.Pulled++
		report.Identifiers = append(report.Identifiers, name)
	}

	return report, nil
}

// missingSet is the strict set difference of remote minus local
// identifiers, sorted so progress reporting is deterministic.
func (s *ReconcileService) missingSet(ctx context.Context) ([]string, error) {
	remote, err := s.remote.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing remote archives: %w", err)
	}

	local, err := s.store.ListIdentifiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing local identifiers: %w", err)
	}

	have := make(map[string]struct{}, len(local))
	for _, id := range local {
		have[id] = struct{}{}
	}

	var missing []string
	for _, name := range remote {
		if _, ok := have[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)

	return missing, nil
}

// pullOne downloads one remote archive, rasterizes it back into page
// images and re-indexes them under the original remote identifier.
func (s *ReconcileService) pullOne(ctx context.Context, name string) error {
	started := s.now()

	workDir, err := os.MkdirTemp("", "kartka-hydrate-*")
	if err != nil {
		return fmt.Errorf("creating working area: %w", err)
	}
	defer os.RemoveAll(workDir)

	pdfPath := filepath.Join(workDir, name)
	if err := s.remote.Download(ctx, name, pdfPath); err != nil {
		return fmt.Errorf("downloading %s: %w", name, err)
	}

	if err := s.rasterizer.PDFToImages(ctx, pdfPath, workDir); err != nil {
		return fmt.Errorf("rasterizing %s: %w", name, err)
	}

	// Drop the PDF before collecting the batch so only page images
	// remain in the working area.
	if err := os.Remove(pdfPath); err != nil {
		return fmt.Errorf("removing fetched archive %s: %w", name, err)
	}

	// The remote identifier is reused verbatim; minting a fresh one
	// here would collide on every subsequent hydrate run.
	pages, err := s.archive.IngestDir(ctx, workDir, name)
	if err != nil {
		return err
	}

	s.record(ctx, name, pages, s.now().Sub(started))
	return nil
}

// record appends a journal entry; journal failures are logged, not fatal.
func (s *ReconcileService) record(ctx context.Context, identifier string, pages int, took time.Duration) {
	if s.journal == nil {
		return
	}
	entry := domain.JournalEntry{
		ID:         uuid.NewString(),
		Operation:  domain.OperationHydrate,
		Identifier: identifier,
		Pages:      pages,
		Duration:   took,
		CreatedAt:  s.now(),
	}
	if err := s.journal.Record(ctx, entry); err != nil {
		logger.Warn("Journal write failed: %v", err)
	}
}
