// Package scraper runs the ordered version-extraction pass over the
// configured tool table. Every tool starts at the placeholder and is
// overwritten at most once when its snapshot yields a version.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/indaco/verscrape/internal/config"
	"github.com/indaco/verscrape/internal/core"
	"github.com/indaco/verscrape/internal/parser"
	"github.com/indaco/verscrape/internal/semver"
)

// ErrMissingSnapshot is returned in strict mode when a tool's snapshot file
// does not exist.
var ErrMissingSnapshot = errors.New("missing snapshot file")

// Options configures a Scraper.
type Options struct {
	// Dir is the directory snapshots are resolved against.
	// Empty means the current working directory.
	Dir string

	// Strict makes a missing snapshot file fail the whole run instead of
	// falling back to the placeholder.
	Strict bool
}

// Scraper extracts versions for every configured tool.
type Scraper struct {
	extractor *parser.Extractor
	opts      Options
}

// New creates a Scraper backed by the given filesystem.
func New(fsys core.FileSystem, opts Options) *Scraper {
	return &Scraper{
		extractor: parser.NewExtractor(fsys),
		opts:      opts,
	}
}

// Run performs a single scrape pass over the configured tools, in
// declaration order. Each entry starts at the placeholder; a successful
// extraction overwrites it with the normalized version. In lenient mode a
// missing file or failed match leaves the placeholder and records the
// reason on the entry.
func (s *Scraper) Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	result := &Result{Entries: make([]Entry, 0, len(cfg.Tools))}

	for _, tool := range cfg.Tools {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry, err := s.scrapeTool(ctx, tool)
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

// scrapeTool extracts one tool's version. The returned error is non-nil
// only for failures that must abort the run (strict mode, cancellation).
func (s *Scraper) scrapeTool(ctx context.Context, tool config.ToolConfig) (Entry, error) {
	entry := Entry{
		Tool:  tool.Name,
		File:  tool.File,
		Value: Placeholder,
	}

	src := parser.Source{
		Path:    s.resolve(tool.File),
		Format:  parser.FormatFor(tool.Format, tool.Pattern),
		Pattern: tool.Pattern,
		Field:   tool.Field,
	}

	extraction, err := s.extractor.Extract(ctx, src)
	switch {
	case err == nil:
		entry.Value = semver.Normalize(extraction.Version)
		entry.Found = true
	case errors.Is(err, fs.ErrNotExist):
		if s.opts.Strict {
			return Entry{}, fmt.Errorf("%w: %q for tool %q", ErrMissingSnapshot, tool.File, tool.Name)
		}
		entry.Err = err
	case errors.Is(err, parser.ErrBadSource):
		// A pattern that does not compile is a config bug, not missing
		// input; silently reporting N/A would hide it.
		return Entry{}, fmt.Errorf("failed to scrape %q: %w", tool.Name, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Entry{}, err
	default:
		// No match, unparsable content: the placeholder survives.
		entry.Err = err
	}

	return entry, nil
}

func (s *Scraper) resolve(file string) string {
	if s.opts.Dir == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(s.opts.Dir, file)
}
