package services

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driven"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driving"
	"github.com/kartka-labs/kartka-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService reduces raw line-level matches from the search engine to
// a deduplicated set of archive identifiers with preview links.
type SearchService struct {
	engine      driven.SearchEngine
	previewBase string
}

// NewSearchService creates a new search service.
// previewBase is the remote preview URL prefix; the identifier is
// appended as a ?preview= query parameter.
func NewSearchService(engine driven.SearchEngine, previewBase string) *SearchService {
	return &SearchService{
		engine:      engine,
		previewBase: previewBase,
	}
}

// Search runs a case-insensitive full-text query over the archive.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	logger.Section("Search")
	logger.Debug("Query: %q", query)

	// Empty queries stop at the boundary, never reaching the tool.
	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	paths, err := s.engine.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching for %q: %w", query, err)
	}
	logger.Debug("%d matching lines", len(paths))

	// A document matching on many lines contributes one identifier.
	seen := make(map[string]struct{}, len(paths))
	identifiers := make([]string, 0, len(paths))
	for _, path := range paths {
		id := filepath.Base(path)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		identifiers = append(identifiers, id)
	}
	sort.Strings(identifiers)

	results := make([]domain.SearchResult, 0, len(identifiers))
	for _, id := range identifiers {
		results = append(results, domain.SearchResult{
			Identifier: id,
			Link:       s.previewLink(id),
		})
	}

	logger.Info("%d documents match %q", len(results), query)
	return results, nil
}

// previewLink builds the remote preview URL for an identifier.
func (s *SearchService) previewLink(identifier string) string {
	return fmt.Sprintf("%s?preview=%s", s.previewBase, url.QueryEscape(identifier))
}
