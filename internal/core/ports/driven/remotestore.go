package driven

import "context"

// RemoteStore is the cloud-synced folder holding archived PDFs.
// Identifiers are file names; no other metadata is exchanged.
type RemoteStore interface {
	// List returns every archive name known to the remote store.
	// Recomputed on every reconciliation run; never cached.
	List(ctx context.Context) ([]string, error)

	// Upload copies the file called name from localDir into the
	// remote store, excluding hidden filesystem artifacts.
	Upload(ctx context.Context, localDir, name string) error

	// Download copies the named remote archive to destPath.
	Download(ctx context.Context, name, destPath string) error
}
