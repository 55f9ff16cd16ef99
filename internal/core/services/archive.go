package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driven"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driving"
	"github.com/kartka-labs/kartka-cli/internal/logger"
)

// Ensure ArchiveService implements the interface.
var _ driving.ArchiveService = (*ArchiveService)(nil)

// ArchiveService runs the scan pipeline: collect a batch of page images,
// extract text per page in order, assemble one content record, store it
// under a minted identifier, rasterize the pages into a PDF and hand
// the PDF to the remote store.
type ArchiveService struct {
	store      driven.ContentStore
	extractor  driven.TextExtractor
	rasterizer driven.Rasterizer
	remote     driven.RemoteStore
	journal    driven.ScanJournal

	scanDir string
	now     func() time.Time
}

// NewArchiveService creates a new archive service.
// The journal parameter is optional (can be nil).
func NewArchiveService(
	store driven.ContentStore,
	extractor driven.TextExtractor,
	rasterizer driven.Rasterizer,
	remote driven.RemoteStore,
	journal driven.ScanJournal,
	scanDir string,
) *ArchiveService {
	return &ArchiveService{
		store:      store,
		extractor:  extractor,
		rasterizer: rasterizer,
		remote:     remote,
		journal:    journal,
		scanDir:    scanDir,
		now:        time.Now,
	}
}

// SetClock overrides the time source used to mint identifiers.
// Useful for testing.
func (s *ArchiveService) SetClock(now func() time.Time) {
	s.now = now
}

// Scan archives the current contents of the scan directory.
// Steps run sequentially and fail fast; a failure aborts the run
// without rolling back steps that already succeeded.
func (s *ArchiveService) Scan(ctx context.Context, opts driving.ScanOptions) (*driving.ScanReport, error) {
	logger.Section("Scan")
	started := s.now()

	identifier := domain.MintIdentifier(started)
	logger.Debug("Minted identifier %s", identifier)

	pages, err := s.IngestDir(ctx, s.scanDir, identifier)
	if err != nil {
		return nil, err
	}

	// The PDF is built in a scoped working area so a failed upload
	// never leaves a stray archive next to the scans.
	workDir, err := os.MkdirTemp("", "kartka-scan-*")
	if err != nil {
		return nil, fmt.Errorf("creating working area: %w", err)
	}
	defer os.RemoveAll(workDir)

	pdfPath := filepath.Join(workDir, identifier)
	logger.Info("Rasterizing %d pages into %s", pages, identifier)
	if err := s.rasterizer.ImagesToPDF(ctx, s.scanDir, pdfPath); err != nil {
		return nil, fmt.Errorf("rasterizing %s: %w", identifier, err)
	}

	logger.Info("Uploading %s", identifier)
	if err := s.remote.Upload(ctx, workDir, identifier); err != nil {
		return nil, fmt.Errorf("uploading %s: %w", identifier, err)
	}

	if opts.Purge {
		if err := s.purgeScanDir(); err != nil {
			return nil, err
		}
	}

	s.record(ctx, domain.OperationScan, identifier, pages, s.now().Sub(started))

	return &driving.ScanReport{Identifier: identifier, Pages: pages}, nil
}

// IngestDir extracts and stores the text of every page image in dir
// under the given identifier. It is the shared indexing path: Scan uses
// it with a minted identifier, reconciliation with the identifier the
// remote store already knows.
func (s *ArchiveService) IngestDir(ctx context.Context, dir, identifier string) (int, error) {
	batch, err := CollectBatch(dir)
	if err != nil {
		return 0, err
	}
	if len(batch) == 0 {
		return 0, fmt.Errorf("%w in %s", domain.ErrEmptyBatch, dir)
	}

	texts := make([]string, 0, len(batch))
	for _, page := range batch {
		logger.Debug("Extracting text from %s", page.Path)
		text, err := s.extractor.Extract(ctx, page.Path)
		if err != nil {
			// One unreadable page poisons the whole batch; a record
			// with a silently missing page is worse than no record.
			return 0, fmt.Errorf("%w: page %s: %w", domain.ErrExtraction, page.Name, err)
		}
		texts = append(texts, text)
	}

	body := AssembleContent(texts)
	if err := s.store.Put(ctx, identifier, body); err != nil {
		return 0, fmt.Errorf("storing %s: %w", identifier, err)
	}

	return len(batch), nil
}

// purgeScanDir removes the source images once the pipeline succeeded.
func (s *ArchiveService) purgeScanDir() error {
	entries, err := os.ReadDir(s.scanDir)
	if err != nil {
		return fmt.Errorf("listing scan directory for purge: %w", err)
	}
	for _, entry := range entries {
		path := filepath.Join(s.scanDir, entry.Name())
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("purging %s: %w", path, err)
		}
	}
	logger.Info("Purged %d entries from %s", len(entries), s.scanDir)
	return nil
}

// record appends a journal entry; journal failures are logged, not fatal.
func (s *ArchiveService) record(ctx context.Context, op, identifier string, pages int, took time.Duration) {
	if s.journal == nil {
		return
	}
	entry := domain.JournalEntry{
		ID:         uuid.NewString(),
		Operation:  op,
		Identifier: identifier,
		Pages:      pages,
		Duration:   took,
		CreatedAt:  s.now(),
	}
	if err := s.journal.Record(ctx, entry); err != nil {
		logger.Warn("Journal write failed: %v", err)
	}
}
