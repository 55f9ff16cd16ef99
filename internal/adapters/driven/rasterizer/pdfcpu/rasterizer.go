// Package pdfcpu provides the pdfcpu-backed rasterizer.
// Scan pages are merged into a one-image-per-page PDF; hydrated PDFs
// are split back into their embedded page images.
package pdfcpu

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driven"
)

// Ensure Rasterizer implements the interface.
var _ driven.Rasterizer = (*Rasterizer)(nil)

// Rasterizer converts between page images and PDF archives via pdfcpu.
type Rasterizer struct {
	conf *model.Configuration
}

// NewRasterizer creates a pdfcpu-backed rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{conf: model.NewDefaultConfiguration()}
}

// ImagesToPDF merges the page images in dir, in ascending file name
// order, into a single PDF at destPDF. Hidden entries are excluded,
// mirroring the batch collection rules.
func (r *Rasterizer) ImagesToPDF(ctx context.Context, dir, destPDF string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir, err)
	}

	// os.ReadDir returns entries sorted by file name.
	images := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		images = append(images, filepath.Join(dir, entry.Name()))
	}
	if len(images) == 0 {
		return fmt.Errorf("%w in %s", domain.ErrEmptyBatch, dir)
	}

	if err := api.ImportImagesFile(images, destPDF, nil, r.conf); err != nil {
		return fmt.Errorf("%w: importing %d images into %s: %w",
			domain.ErrExternalTool, len(images), destPDF, err)
	}
	return nil
}

// PDFToImages extracts every embedded page image of the PDF at path
// into destDir, one file per page for the single-image-per-page
// archives that scans produce.
func (r *Rasterizer) PDFToImages(ctx context.Context, path, destDir string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := api.ExtractImagesFile(path, destDir, nil, r.conf); err != nil {
		return fmt.Errorf("%w: extracting images from %s: %w",
			domain.ErrExternalTool, path, err)
	}
	return nil
}
