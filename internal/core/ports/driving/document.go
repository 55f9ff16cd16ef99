package driving

import "context"

// DocumentService accepts content records submitted directly, bypassing
// the scan pipeline. This is the HTTP upload surface; it enforces the
// same create-only-if-absent rule as the content store itself.
type DocumentService interface {
	// Upload stores body under the given identifier. It fails with
	// domain.ErrDuplicateIdentifier if the identifier is taken and
	// domain.ErrInvalidInput if the name is empty or not a bare
	// file name.
	Upload(ctx context.Context, identifier, body string) error
}
