// Package tesseract provides the Tesseract-backed text extractor.
// It binds to the system Tesseract installation through gosseract;
// the tesseract shared library and language data must be installed.
package tesseract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/kartka-labs/kartka-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor performs OCR on page images via Tesseract.
type Extractor struct {
	languages     []string
	clientFactory func() *gosseract.Client
}

// NewExtractor creates a Tesseract-backed extractor.
// With no languages, Tesseract's default (eng) applies.
func NewExtractor(languages ...string) *Extractor {
	return &Extractor{
		languages:     languages,
		clientFactory: gosseract.NewClient,
	}
}

// Extract runs OCR over the image at path and returns its text.
// A fresh client per call keeps extractions independent; batches are
// small enough that setup cost does not matter.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	client := e.clientFactory()
	defer client.Close()

	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("opening %s for OCR: %w", path, err)
	}
	if len(e.languages) > 0 {
		if err := client.SetLanguage(e.languages...); err != nil {
			return "", fmt.Errorf("setting OCR languages: %w", err)
		}
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("running OCR on %s: %w", path, err)
	}
	return text, nil
}
