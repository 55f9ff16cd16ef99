package driven

import "context"

// SearchEngine runs a case-insensitive full-text query over the content
// store's backing directory and reports the path of every matching file,
// one entry per matching line. Reduction to a deduplicated identifier
// set is the search service's job.
type SearchEngine interface {
	// Search returns the file path of each line-level match for query.
	// A line of tool output that cannot be decoded is a hard error for
	// the whole query, not a silent skip.
	Search(ctx context.Context, query string) ([]string, error)
}
