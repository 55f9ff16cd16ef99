package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driving"
)

var scanPurge bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Archive the scan directory as a searchable PDF",
	Long: `Collects the page images currently in the scan directory, extracts
their text with OCR, stores the combined text in the local index under a
timestamped identifier, rasterizes the pages into a PDF and uploads it
to the remote.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanPurge, "purge", false, "delete the page images after a successful run")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if archiveService == nil {
		return errors.New("archive service not configured")
	}

	report, err := archiveService.Scan(context.Background(), driving.ScanOptions{Purge: scanPurge})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyBatch) {
			return fmt.Errorf("nothing to scan: %w", err)
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	cmd.Printf("Archived %s (%d pages)\n", report.Identifier, report.Pages)
	return nil
}
