package domain

import "time"

// ArchiveExt is the file extension carried by every archive identifier.
// The identifier names both the stored text record and the remote PDF,
// so the extension is part of the key itself.
const ArchiveExt = ".pdf"

// identifierLayout formats a timestamp to second precision.
// Two scans within the same second collide; the content store
// rejects the second one rather than overwriting the first.
const identifierLayout = "2006_01_02_15_04_05"

// Page is a reference to one scanned page image within a batch.
// Pages are ephemeral: created by listing a directory, consumed once.
type Page struct {
	// Name is the bare file name. Batch order is ascending byte-wise
	// order of Name, which reconstructs multi-page reading order.
	Name string

	// Path is the absolute or directory-relative location of the image.
	Path string
}

// MintIdentifier derives a fresh archive identifier from a timestamp.
// Identifiers minted this way are monotonically increasing as long as
// scans do not occur within the same second.
func MintIdentifier(t time.Time) string {
	return t.Format(identifierLayout) + ArchiveExt
}

// SearchResult is a single deduplicated search hit.
// A document matching on many lines contributes exactly one result.
type SearchResult struct {
	// Identifier is the archive identifier derived from the matched
	// file's name.
	Identifier string

	// Link is the remote preview URL for the archived PDF.
	Link string
}

// JournalEntry records one completed scan or hydrate-item run.
type JournalEntry struct {
	// ID is the unique run identifier.
	ID string

	// Operation is "scan" or "hydrate".
	Operation string

	// Identifier is the archive identifier the run produced.
	Identifier string

	// Pages is the number of page images processed.
	Pages int

	// Duration is how long the run took.
	Duration time.Duration

	// CreatedAt is when the run completed.
	CreatedAt time.Time
}

// Journal operations.
const (
	OperationScan    = "scan"
	OperationHydrate = "hydrate"
)
