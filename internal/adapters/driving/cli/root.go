// Package cli wires the cobra command tree to the core services.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/kartka-labs/kartka-cli/internal/adapters/driven/config/file"
	"github.com/kartka-labs/kartka-cli/internal/adapters/driven/ocr/tesseract"
	"github.com/kartka-labs/kartka-cli/internal/adapters/driven/rasterizer/pdfcpu"
	"github.com/kartka-labs/kartka-cli/internal/adapters/driven/remote/rclone"
	"github.com/kartka-labs/kartka-cli/internal/adapters/driven/search/ripgrep"
	storagefile "github.com/kartka-labs/kartka-cli/internal/adapters/driven/storage/file"
	"github.com/kartka-labs/kartka-cli/internal/adapters/driven/storage/sqlite"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driven"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driving"
	"github.com/kartka-labs/kartka-cli/internal/core/services"
	"github.com/kartka-labs/kartka-cli/internal/logger"
)

var version = "dev"

var (
	verbose    bool
	configPath string
)

// Services the commands run against. Populated by ensureServices on
// first use, or injected directly by tests via SetServices.
var (
	archiveService   driving.ArchiveService
	searchService    driving.SearchService
	reconcileService driving.ReconcileService
	documentService  driving.DocumentService
	scanJournal      driven.ScanJournal
)

// cfg holds the loaded configuration for commands that need settings
// beyond the services themselves (serve address, watch directory).
var cfg *configfile.Config

var rootCmd = &cobra.Command{
	Use:   "kartka",
	Short: "Archive scanned documents as searchable PDFs",
	Long: `kartka turns batches of scanned page images into OCR-indexed PDF
archives, uploads them to a remote, and finds them again by full-text
search over the extracted content.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects service implementations, replacing lazy
// bootstrap. Used by tests.
func SetServices(archive driving.ArchiveService, search driving.SearchService, reconcile driving.ReconcileService, documents driving.DocumentService, journal driven.ScanJournal) {
	archiveService = archive
	searchService = search
	reconcileService = reconcile
	documentService = documents
	scanJournal = journal
}

// ensureServices loads configuration and builds the production
// adapter stack the first time a command needs it.
func ensureServices() error {
	if archiveService != nil && searchService != nil && reconcileService != nil && documentService != nil {
		return nil
	}

	path := configPath
	if path == "" {
		var err error
		path, err = configfile.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
	}
	loaded, err := configfile.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = loaded
	logger.Debug("Config loaded from %s", path)

	store, err := storagefile.NewContentStore(cfg.IndexDir)
	if err != nil {
		return fmt.Errorf("opening content store: %w", err)
	}
	journal, err := sqlite.NewJournal(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}

	extractor := tesseract.NewExtractor(cfg.OCR.Languages...)
	raster := pdfcpu.NewRasterizer()
	remote := rclone.NewStore(cfg.Remote.Name)
	engine := ripgrep.NewEngine(store.Dir())

	archive := services.NewArchiveService(store, extractor, raster, remote, journal, cfg.ScanDir)
	archiveService = archive
	scanJournal = journal
	searchService = services.NewSearchService(engine, cfg.Remote.PreviewBase)
	reconcileService = services.NewReconcileService(store, remote, raster, archive, journal)
	documentService = services.NewDocumentService(store)

	return nil
}
