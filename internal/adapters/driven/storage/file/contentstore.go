// Package file provides the directory-backed content store.
// One text file per archive identifier, in a single flat directory the
// external search tool can scan.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driven"
)

// Ensure ContentStore implements the interface.
var _ driven.ContentStore = (*ContentStore)(nil)

// ContentStore stores one immutable text record per identifier as a
// file named after the identifier.
type ContentStore struct {
	dir string
}

// NewContentStore creates a content store backed by dir, creating the
// directory if needed.
func NewContentStore(dir string) (*ContentStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty index directory", domain.ErrInvalidInput)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}
	return &ContentStore{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *ContentStore) Dir() string {
	return s.dir
}

// Put creates the record file with O_EXCL so an existing record is
// never overwritten, even under racing writers.
func (s *ContentStore) Put(_ context.Context, identifier, body string) error {
	path := filepath.Join(s.dir, identifier)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("record %s: %w", identifier, domain.ErrDuplicateIdentifier)
		}
		return fmt.Errorf("creating record %s: %w", identifier, err)
	}

	if _, err := f.WriteString(body); err != nil {
		f.Close()
		return fmt.Errorf("writing record %s: %w", identifier, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing record %s: %w", identifier, err)
	}
	return nil
}

// ListIdentifiers enumerates the record file names, skipping hidden
// filesystem artifacts and subdirectories.
func (s *ContentStore) ListIdentifiers(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing index directory %s: %w", s.dir, err)
	}

	identifiers := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		identifiers = append(identifiers, entry.Name())
	}
	return identifiers, nil
}
