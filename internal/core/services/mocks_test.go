package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
)

// --- Mock implementations of the driven ports ---

// mockExtractor implements driven.TextExtractor. It returns canned text
// keyed by the page's file name.
type mockExtractor struct {
	texts      map[string]string
	failOn     string
	extracted  []string
	extractErr error
}

func (m *mockExtractor) Extract(_ context.Context, path string) (string, error) {
	name := filepath.Base(path)
	m.extracted = append(m.extracted, name)
	if m.extractErr != nil {
		return "", m.extractErr
	}
	if m.failOn != "" && name == m.failOn {
		return "", fmt.Errorf("unreadable page %s", name)
	}
	if text, ok := m.texts[name]; ok {
		return text, nil
	}
	return "text of " + name, nil
}

// mockRasterizer implements driven.Rasterizer. PDFToImages materialises
// canned page files so the ingest path has something to collect.
type mockRasterizer struct {
	imagesToPDFCalls []string // destination PDFs
	pdfToImagesCalls []string // source PDFs
	pages            map[string][]string // PDF name -> page file names
	err              error
}

func (m *mockRasterizer) ImagesToPDF(_ context.Context, _, destPDF string) error {
	if m.err != nil {
		return m.err
	}
	m.imagesToPDFCalls = append(m.imagesToPDFCalls, destPDF)
	return os.WriteFile(destPDF, []byte("%PDF"), 0o600)
}

func (m *mockRasterizer) PDFToImages(_ context.Context, path, destDir string) error {
	if m.err != nil {
		return m.err
	}
	m.pdfToImagesCalls = append(m.pdfToImagesCalls, filepath.Base(path))
	for _, name := range m.pages[filepath.Base(path)] {
		if err := os.WriteFile(filepath.Join(destDir, name), []byte("img"), 0o600); err != nil {
			return err
		}
	}
	return nil
}

// mockRemote implements driven.RemoteStore over an in-memory file set.
type mockRemote struct {
	mu        sync.Mutex
	names     []string
	uploads   []string // uploaded archive names
	downloads []string
	listErr   error
	copyErr   error
}

func (m *mockRemote) List(_ context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]string(nil), m.names...), nil
}

func (m *mockRemote) Upload(_ context.Context, localDir, name string) error {
	if m.copyErr != nil {
		return m.copyErr
	}
	if _, err := os.Stat(filepath.Join(localDir, name)); err != nil {
		return fmt.Errorf("archive missing from upload dir: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads = append(m.uploads, name)
	return nil
}

func (m *mockRemote) Download(_ context.Context, name, destPath string) error {
	if m.copyErr != nil {
		return m.copyErr
	}
	m.mu.Lock()
	m.downloads = append(m.downloads, name)
	m.mu.Unlock()
	return os.WriteFile(destPath, []byte("%PDF"), 0o600)
}

// mockEngine implements driven.SearchEngine.
type mockEngine struct {
	paths   []string
	queries []string
	err     error
}

func (m *mockEngine) Search(_ context.Context, query string) ([]string, error) {
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.paths, nil
}

// mockJournal implements driven.ScanJournal.
type mockJournal struct {
	entries   []domain.JournalEntry
	recordErr error
}

func (m *mockJournal) Record(_ context.Context, entry domain.JournalEntry) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockJournal) List(_ context.Context, _ int) ([]domain.JournalEntry, error) {
	return m.entries, nil
}

func (m *mockJournal) Close() error { return nil }
