package driven

import "context"

// Rasterizer converts between page images and PDF archives.
// It is used in both directions: images to PDF when a scan is archived,
// PDF back to images when a remote archive is re-indexed.
type Rasterizer interface {
	// ImagesToPDF merges every page image in dir, in ascending file
	// name order, into a single PDF written to destPDF.
	ImagesToPDF(ctx context.Context, dir, destPDF string) error

	// PDFToImages rasterizes each page of the PDF at path into an
	// image file inside destDir.
	PDFToImages(ctx context.Context, path, destDir string) error
}
