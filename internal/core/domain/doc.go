// Package domain defines the core business entities for Kartka.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Page: One scanned page image awaiting text extraction
//   - Identifier: The unique key naming one archived document
//   - SearchResult: A deduplicated search hit with its preview link
//   - JournalEntry: One recorded scan or hydrate run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
