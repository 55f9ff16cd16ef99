// Package rclone provides the rclone-backed remote store.
// Archives live in a cloud folder (Dropbox by default) addressed by an
// rclone remote name; rclone is invoked as an external process, one
// blocking call per operation.
package rclone

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driven"
	"github.com/kartka-labs/kartka-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.RemoteStore = (*Store)(nil)

// runner executes one rclone invocation and returns its stdout.
// Swapped out in tests so no rclone installation is required.
type runner func(ctx context.Context, args ...string) ([]byte, error)

// Store copies archives to and from an rclone remote.
type Store struct {
	remote string
	run    runner
}

// NewStore creates a remote store for the given rclone remote,
// e.g. "dropbox:".
func NewStore(remote string) *Store {
	return &Store{
		remote: remote,
		run:    runRclone,
	}
}

// runRclone shells out to rclone and folds a non-zero exit into the
// external-tool error, keeping stderr for diagnosis.
func runRclone(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "rclone", args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	logger.Debug("rclone %s", strings.Join(args, " "))
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: rclone %s: %v: %s",
			domain.ErrExternalTool, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// List returns every archive name in the remote folder.
func (s *Store) List(ctx context.Context) ([]string, error) {
	out, err := s.run(ctx, "lsf", s.remote)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// Upload copies the file called name from localDir into the remote
// folder. Hidden filesystem artifacts are excluded so a stray
// .DS_Store never reaches the archive.
func (s *Store) Upload(ctx context.Context, localDir, name string) error {
	_, err := s.run(ctx, "copy",
		"--exclude", ".DS_Store",
		"--include", name,
		localDir, s.remote)
	return err
}

// Download copies the named remote archive to destPath.
func (s *Store) Download(ctx context.Context, name, destPath string) error {
	_, err := s.run(ctx, "copyto", s.remote+name, destPath)
	return err
}
