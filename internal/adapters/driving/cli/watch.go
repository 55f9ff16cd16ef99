package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kartka-labs/kartka-cli/internal/adapters/driving/watcher"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driving"
)

var (
	watchSettle time.Duration
	watchPurge  bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Scan automatically when new pages arrive",
	Long: `Watches the scan directory and runs the scan pipeline whenever page
images stop arriving for the settle period. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchSettle, "settle", watcher.DefaultSettle, "quiet period before a scan fires")
	watchCmd.Flags().BoolVar(&watchPurge, "purge", false, "delete the page images after each successful run")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if archiveService == nil {
		return errors.New("archive service not configured")
	}
	if cfg == nil {
		return errors.New("config not loaded")
	}

	w := watcher.New(cfg.ScanDir, watchSettle, archiveService, driving.ScanOptions{Purge: watchPurge})
	w.SetOnScan(func(report *driving.ScanReport, err error) {
		if err != nil {
			cmd.PrintErrf("scan failed: %v\n", err)
			return
		}
		cmd.Printf("Archived %s (%d pages)\n", report.Identifier, report.Pages)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
