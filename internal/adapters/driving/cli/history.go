package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent scan and hydrate runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if scanJournal == nil {
		return errors.New("journal not configured")
	}

	entries, err := scanJournal.List(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}
	for _, entry := range entries {
		cmd.Printf("%s  %-7s  %s  %d page(s)  %s\n",
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
			entry.Operation,
			entry.Identifier,
			entry.Pages,
			entry.Duration.Round(10*time.Millisecond),
		)
	}
	return nil
}
