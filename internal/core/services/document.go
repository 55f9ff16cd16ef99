package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driven"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService accepts content records submitted directly over the
// HTTP boundary, bypassing the scan pipeline.
type DocumentService struct {
	store driven.ContentStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(store driven.ContentStore) *DocumentService {
	return &DocumentService{store: store}
}

// Upload stores body under identifier, enforcing the same
// create-only-if-absent rule as the content store.
func (s *DocumentService) Upload(ctx context.Context, identifier, body string) error {
	if err := validateIdentifier(identifier); err != nil {
		return err
	}
	return s.store.Put(ctx, identifier, body)
}

// validateIdentifier rejects names that would escape the store directory.
// Identifiers map 1:1 to file names, so only a bare name is acceptable.
func validateIdentifier(identifier string) error {
	if identifier == "" {
		return fmt.Errorf("%w: empty identifier", domain.ErrInvalidInput)
	}
	if strings.ContainsAny(identifier, `/\`) || identifier != filepath.Base(identifier) {
		return fmt.Errorf("%w: identifier %q is not a bare file name", domain.ErrInvalidInput, identifier)
	}
	if strings.HasPrefix(identifier, ".") {
		return fmt.Errorf("%w: identifier %q is hidden", domain.ErrInvalidInput, identifier)
	}
	return nil
}
