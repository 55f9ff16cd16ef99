package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var hydrateCmd = &cobra.Command{
	Use:   "hydrate",
	Short: "Pull remote archives missing from the local index",
	Long: `Compares the remote archive listing against the local index and, for
every archive present remotely but absent locally, downloads the PDF,
rasterizes it back into page images and re-extracts its text under the
original identifier.`,
	Args: cobra.NoArgs,
	RunE: runHydrate,
}

func init() {
	rootCmd.AddCommand(hydrateCmd)
}

func runHydrate(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if reconcileService == nil {
		return errors.New("reconcile service not configured")
	}

	if p, ok := reconcileService.(interface {
		SetProgress(func(i, total int, name string))
	}); ok {
		p.SetProgress(func(i, total int, name string) {
			cmd.Printf("(%d/%d) pulling %s\n", i, total, name)
		})
	}

	report, err := reconcileService.Hydrate(context.Background())
	if err != nil {
		return fmt.Errorf("hydrate failed: %w", err)
	}

	if report.Pulled == 0 {
		cmd.Println("Local index is up to date.")
		return nil
	}
	cmd.Printf("Hydrated %d archive(s)\n", report.Pulled)
	return nil
}
