package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateIdentifier indicates a record already exists for an
	// identifier. The content store never overwrites: once written, a
	// record is immutable.
	ErrDuplicateIdentifier = errors.New("identifier already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyBatch indicates a scan directory held no processable pages.
	ErrEmptyBatch = errors.New("no pages to process")

	// ErrExtraction indicates OCR failed for a page. A single failed
	// page aborts its whole batch; a document with a silently dropped
	// page is worse than no document.
	ErrExtraction = errors.New("text extraction failed")

	// ErrExternalTool indicates a collaborator process or library
	// (rasterizer, remote copy, search) failed.
	ErrExternalTool = errors.New("external tool failed")

	// ErrMalformedOutput indicates the search tool emitted a line that
	// could not be decoded into the expected record shape.
	ErrMalformedOutput = errors.New("malformed search output")
)
