package driving

import (
	"context"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
)

// SearchService answers full-text queries over the archive.
type SearchService interface {
	// Search returns one result per matching document, deduplicated
	// and sorted by identifier. An empty or blank query returns no
	// results without consulting the search tool.
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}
