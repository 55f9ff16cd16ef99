package driving

import "context"

// HydrateReport summarises a completed reconciliation run.
type HydrateReport struct {
	// Pulled is the number of remote archives fetched and re-indexed.
	Pulled int

	// Identifiers lists the pulled archives in processing order.
	Identifiers []string
}

// ReconcileService performs the one-way pull that keeps the local text
// index complete relative to remote storage.
type ReconcileService interface {
	// Hydrate lists remote and local identifiers, computes the missing
	// set (remote minus local), and for each missing archive downloads
	// it, rasterizes it back into page images and re-indexes it under
	// its original remote identifier. The first per-item failure aborts
	// the whole run.
	Hydrate(ctx context.Context) (*HydrateReport, error)
}
