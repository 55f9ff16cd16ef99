package driven

import "context"

// TextExtractor converts one page image into text.
// Extraction is synchronous, one call per page. Any single-page failure
// aborts the enclosing batch; callers never skip a page silently.
type TextExtractor interface {
	// Extract runs OCR over the image at path and returns its text.
	Extract(ctx context.Context, path string) (string, error)
}
