package driven

import "context"

// ContentStore persists one immutable text record per archive identifier.
// The backing location is a single directory; identifiers map 1:1 to
// file names within it, which is what lets the search tool scan it.
type ContentStore interface {
	// Put creates a new record. It fails with domain.ErrDuplicateIdentifier
	// if a record already exists for the identifier; it never overwrites.
	// This is the sole concurrency guard for racing writers: the first
	// writer wins, the second observes the error, not corruption.
	Put(ctx context.Context, identifier, body string) error

	// ListIdentifiers enumerates all stored identifiers.
	// Used to compute the local side of the reconciliation diff.
	ListIdentifiers(ctx context.Context) ([]string, error)
}
