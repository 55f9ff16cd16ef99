package cli

import (
	"context"
	"time"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driving"
)

// setupTestServices installs mock services and returns a cleanup that
// restores whatever was there before.
func setupTestServices() func() {
	oldArchive := archiveService
	oldSearch := searchService
	oldReconcile := reconcileService
	oldDocument := documentService
	oldJournal := scanJournal

	archiveService = &stubArchiveService{}
	searchService = &stubSearchService{}
	reconcileService = &stubReconcileService{}
	documentService = &stubDocumentService{}
	scanJournal = &stubJournal{}

	return func() {
		archiveService = oldArchive
		searchService = oldSearch
		reconcileService = oldReconcile
		documentService = oldDocument
		scanJournal = oldJournal
	}
}

type stubArchiveService struct {
	lastOpts driving.ScanOptions
}

func (s *stubArchiveService) Scan(_ context.Context, opts driving.ScanOptions) (*driving.ScanReport, error) {
	s.lastOpts = opts
	return &driving.ScanReport{Identifier: "2024_03_07_09_15_42.pdf", Pages: 3}, nil
}

func (s *stubArchiveService) IngestDir(_ context.Context, _ string, _ string) (int, error) {
	return 3, nil
}

type stubSearchService struct{}

func (s *stubSearchService) Search(_ context.Context, query string) ([]domain.SearchResult, error) {
	if query == "" {
		return nil, nil
	}
	return []domain.SearchResult{
		{
			Identifier: "2024_03_07_09_15_42.pdf",
			Link:       "https://www.dropbox.com/home/Apps/kartka?preview=2024_03_07_09_15_42.pdf",
		},
	}, nil
}

type stubReconcileService struct {
	progress func(i, total int, name string)
}

func (s *stubReconcileService) SetProgress(fn func(i, total int, name string)) {
	s.progress = fn
}

func (s *stubReconcileService) Hydrate(_ context.Context) (*driving.HydrateReport, error) {
	if s.progress != nil {
		s.progress(1, 1, "2024_01_01_00_00_00.pdf")
	}
	return &driving.HydrateReport{
		Pulled:      1,
		Identifiers: []string{"2024_01_01_00_00_00.pdf"},
	}, nil
}

type stubDocumentService struct{}

func (s *stubDocumentService) Upload(_ context.Context, _ string, _ string) error {
	return nil
}

type stubJournal struct{}

func (s *stubJournal) Record(_ context.Context, _ domain.JournalEntry) error {
	return nil
}

func (s *stubJournal) List(_ context.Context, _ int) ([]domain.JournalEntry, error) {
	return []domain.JournalEntry{
		{
			ID:         "run-1",
			Operation:  domain.OperationScan,
			Identifier: "2024_03_07_09_15_42.pdf",
			Pages:      3,
			Duration:   1200 * time.Millisecond,
			CreatedAt:  time.Date(2024, 3, 7, 9, 15, 43, 0, time.UTC),
		},
	}, nil
}
