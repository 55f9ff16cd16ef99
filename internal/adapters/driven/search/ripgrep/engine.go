// Package ripgrep provides the ripgrep-backed search engine.
// Queries run rg in line-delimited JSON mode over the content store's
// backing directory; only the exact fields this adapter consumes are
// decoded, and a line that does not decode is a hard error.
package ripgrep

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driven"
	"github.com/kartka-labs/kartka-cli/internal/logger"
)

// Ensure Engine implements the interface.
var _ driven.SearchEngine = (*Engine)(nil)

// outputLine is the subset of rg's --json event stream this adapter
// consumes. Besides "match", rg emits "begin", "end", "summary" and
// "context" events; those carry no path worth extracting here.
type outputLine struct {
	Type string `json:"type"`
	Data struct {
		Path struct {
			Text string `json:"text"`
		} `json:"path"`
	} `json:"data"`
}

// Engine runs full-text queries over a directory with ripgrep.
type Engine struct {
	dir string
	run func(ctx context.Context, query string) ([]byte, error)
}

// NewEngine creates a ripgrep engine over dir, the content store's
// backing directory.
func NewEngine(dir string) *Engine {
	e := &Engine{dir: dir}
	e.run = e.runRipgrep
	return e
}

// runRipgrep invokes rg in case-insensitive JSON mode.
// rg exits 1 when nothing matched; that is a valid empty result,
// not a failure.
func (e *Engine) runRipgrep(ctx context.Context, query string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "rg", "--json", "-i", query)
	cmd.Dir = e.dir
	var stderr strings.Builder
	cmd.Stderr = &stderr

	logger.Debug("rg --json -i %q in %s", query, e.dir)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: rg: %v: %s",
			domain.ErrExternalTool, err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// Search returns the file path of every line-level match for query.
func (e *Engine) Search(ctx context.Context, query string) ([]string, error) {
	out, err := e.run(ctx, query)
	if err != nil {
		return nil, err
	}
	return parseMatches(out)
}

// parseMatches decodes rg's event stream and keeps the path of each
// "match" event. Any line that fails to decode, or a match without a
// path, fails the whole query rather than being skipped silently.
func parseMatches(out []byte) ([]string, error) {
	var paths []string

	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var record outputLine
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", domain.ErrMalformedOutput, line, err)
		}
		if record.Type != "match" {
			continue
		}
		if record.Data.Path.Text == "" {
			return nil, fmt.Errorf("%w: match event without a path: %q",
				domain.ErrMalformedOutput, line)
		}
		paths = append(paths, record.Data.Path.Text)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading rg output: %v", domain.ErrMalformedOutput, err)
	}

	return paths, nil
}
