package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kartka-labs/kartka-cli/internal/adapters/driving/httpapi"
	"github.com/kartka-labs/kartka-cli/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP search and upload API",
	Long: `Starts an HTTP server exposing GET /search for full-text queries and
PUT /upload for submitting content records directly. Runs until
interrupted.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if searchService == nil || documentService == nil {
		return errors.New("services not configured")
	}

	addr := serveAddr
	uploadsPerSecond := 5.0
	uploadBurst := 10
	if cfg != nil {
		if addr == "" {
			addr = cfg.Serve.Addr
		}
		uploadsPerSecond = cfg.Serve.UploadsPerSecond
		uploadBurst = cfg.Serve.UploadBurst
	}
	if addr == "" {
		addr = "127.0.0.1:8462"
	}

	server := httpapi.NewServer(addr, searchService, documentService, uploadsPerSecond, uploadBurst)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()
	cmd.Printf("Listening on %s\n", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpapi.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
