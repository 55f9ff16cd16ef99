package driving

import "context"

// ScanOptions configures one scan run.
type ScanOptions struct {
	// Purge deletes the source images from the scan directory after
	// the whole pipeline has succeeded. Off by default; the CLI only
	// sets it on an explicit user request.
	Purge bool
}

// ScanReport summarises a completed scan run.
type ScanReport struct {
	// Identifier is the freshly minted archive identifier.
	Identifier string

	// Pages is the number of page images processed.
	Pages int
}

// ArchiveService ingests batches of scanned pages into the archive.
type ArchiveService interface {
	// Scan runs the full pipeline against the configured scan
	// directory: collect pages, extract text, assemble and store the
	// content record under a newly minted identifier, rasterize the
	// pages into a PDF and hand it to the remote store. Every step is
	// fail-fast; a failure aborts the run with no rollback of steps
	// that already succeeded.
	Scan(ctx context.Context, opts ScanOptions) (*ScanReport, error)

	// IngestDir runs only the indexing half of the pipeline (collect,
	// extract, assemble, store) against an arbitrary directory, storing
	// the record under the given identifier. Reconciliation uses this
	// to re-index a remote archive under its original name; no fresh
	// identifier is minted.
	IngestDir(ctx context.Context, dir, identifier string) (int, error)
}
