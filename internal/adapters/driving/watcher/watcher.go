// Package watcher triggers scan runs when new pages land in the scan
// directory. Scanners drop pages one file at a time, so a scan only
// fires once the directory has been quiet for a settle period.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kartka-labs/kartka-cli/internal/core/ports/driving"
	"github.com/kartka-labs/kartka-cli/internal/logger"
)

// DefaultSettle is how long the scan directory must stay quiet before
// a scan fires.
const DefaultSettle = 5 * time.Second

// Watcher observes the scan directory and runs the archive pipeline
// after activity settles.
type Watcher struct {
	dir     string
	settle  time.Duration
	archive driving.ArchiveService
	opts    driving.ScanOptions

	// onScan receives each scan outcome; the CLI uses it to report
	// results without the watcher writing to stdout itself.
	onScan func(report *driving.ScanReport, err error)
}

// New creates a watcher over dir. A settle of 0 means DefaultSettle.
func New(dir string, settle time.Duration, archive driving.ArchiveService, opts driving.ScanOptions) *Watcher {
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Watcher{
		dir:     dir,
		settle:  settle,
		archive: archive,
		opts:    opts,
	}
}

// SetOnScan installs a callback invoked after every triggered scan.
func (w *Watcher) SetOnScan(fn func(report *driving.ScanReport, err error)) {
	w.onScan = fn
}

// Run watches until ctx is cancelled. Scan failures are reported via
// the callback and logged; they do not stop the watch loop, so a bad
// batch can be fixed in place and re-dropped.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	logger.Info("Watching %s (settle %s)", w.dir, w.settle)

	// The timer stays parked until the first relevant event.
	timer := time.NewTimer(w.settle)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("Event %s, resetting settle timer", event)
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.settle)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", w.dir, err)

		case <-timer.C:
			report, err := w.archive.Scan(ctx, w.opts)
			if err != nil {
				logger.Warn("Triggered scan failed: %v", err)
			} else {
				logger.Info("Archived %s (%d pages)", report.Identifier, report.Pages)
			}
			if w.onScan != nil {
				w.onScan(report, err)
			}
		}
	}
}

// relevant keeps page arrivals and edits, ignoring hidden artifacts
// and removals (a purge must not retrigger a scan).
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return false
	}
	return !strings.HasPrefix(filepath.Base(event.Name), ".")
}
