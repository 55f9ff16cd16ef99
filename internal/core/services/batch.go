package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
	"github.com/kartka-labs/kartka-cli/internal/logger"
)

// CollectBatch lists dir and returns its page images in batch order:
// ascending byte-wise file name order. The ordering is load-bearing,
// because per-page OCR output is concatenated in batch order to
// reconstruct multi-page reading order.
//
// Entries are excluded when they are directories, when their name begins
// with the hidden-file marker, or when their name is not valid text.
// A listing failure aborts the whole batch.
func CollectBatch(dir string) ([]domain.Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing scan directory %s: %w", dir, err)
	}

	// os.ReadDir returns entries sorted by file name.
	pages := make([]domain.Page, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !utf8.ValidString(name) {
			logger.Debug("skipping %s", name)
			continue
		}
		pages = append(pages, domain.Page{
			Name: name,
			Path: filepath.Join(dir, name),
		})
	}

	return pages, nil
}

// AssembleContent concatenates per-page texts in batch order into one
// document body. Each page's text is followed by a single record
// separator. Pure function: no I/O, no failure path.
func AssembleContent(texts []string) string {
	var body strings.Builder
	for _, text := range texts {
		body.WriteString(text)
		body.WriteByte('\n')
	}
	return body.String()
}
