// Package discovery scans a directory for version sources: v_*.txt
// tool-output snapshots and known project manifests. It suggests tool
// entries for the configuration, so new tools can be added without writing
// the regex table by hand.
package discovery

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/indaco/verscrape/internal/config"
	"github.com/indaco/verscrape/internal/core"
	"github.com/indaco/verscrape/internal/parser"
)

// snapshotPrefix and snapshotSuffix identify tool-output snapshot files by
// the naming convention the pipeline uses (v_samtools.txt etc.).
const (
	snapshotPrefix = "v_"
	snapshotSuffix = ".txt"
)

// Service scans directories for version sources.
type Service struct {
	fs        core.FileSystem
	extractor *parser.Extractor
	known     map[string]config.ToolConfig
}

// NewService creates a discovery Service. The built-in tool table seeds the
// set of recognized snapshots so their known patterns are suggested.
func NewService(fs core.FileSystem) *Service {
	known := make(map[string]config.ToolConfig)
	for _, tool := range config.Default().Tools {
		known[tool.File] = tool
	}
	return &Service{
		fs:        fs,
		extractor: parser.NewExtractor(fs),
		known:     known,
	}
}

// Scan inspects the root directory (non-recursively for snapshots,
// root-level only for manifests) and returns candidates in directory order.
func (s *Service) Scan(ctx context.Context, root string) (*Result, error) {
	result := &Result{
		Snapshots: make([]Candidate, 0),
		Manifests: make([]Candidate, 0),
	}

	entries, err := s.fs.ReadDir(ctx, root)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		switch {
		case strings.HasPrefix(name, snapshotPrefix) && strings.HasSuffix(name, snapshotSuffix):
			result.Snapshots = append(result.Snapshots, s.snapshotCandidate(ctx, root, name))
		default:
			if manifest, ok := s.manifestFor(name); ok {
				if c, ok := s.manifestCandidate(ctx, root, name, manifest); ok {
					result.Manifests = append(result.Manifests, c)
				}
			}
		}
	}

	return result, nil
}

// snapshotCandidate builds the suggestion for one v_*.txt file. A file from
// the built-in table keeps its known pattern; an unknown one falls back to
// the generic first-token capture.
func (s *Service) snapshotCandidate(ctx context.Context, root, name string) Candidate {
	c := Candidate{
		Path:        name,
		Format:      parser.FormatRegex,
		Description: "tool output snapshot",
	}

	if tool, ok := s.known[name]; ok {
		c.Tool = tool.Name
		c.Pattern = tool.Pattern
		c.Known = true
	} else {
		c.Tool = toolNameFromSnapshot(name)
		c.Pattern = `(\S+)`
	}

	version, err := s.extractor.ExtractVersion(ctx, parser.Source{
		Path:    filepath.Join(root, name),
		Format:  parser.FormatRegex,
		Pattern: c.Pattern,
	})
	if err == nil {
		c.Version = version
	}

	return c
}

// manifestCandidate builds the suggestion for a recognized manifest,
// dropping it when the version field is absent.
func (s *Service) manifestCandidate(ctx context.Context, root, name string, manifest KnownManifest) (Candidate, bool) {
	version, err := s.extractor.ExtractVersion(ctx, parser.Source{
		Path:   filepath.Join(root, name),
		Format: manifest.Format,
		Field:  manifest.Field,
	})
	if err != nil {
		return Candidate{}, false
	}

	return Candidate{
		Path:        name,
		Tool:        strings.TrimSuffix(name, filepath.Ext(name)),
		Format:      manifest.Format,
		Field:       manifest.Field,
		Version:     version,
		Description: manifest.Description,
	}, true
}

func (s *Service) manifestFor(name string) (KnownManifest, bool) {
	for _, m := range DefaultKnownManifests() {
		if m.Filename == name {
			return m, true
		}
	}
	return KnownManifest{}, false
}

// toolNameFromSnapshot derives a display name from an unknown snapshot
// filename: v_bowtie2.txt becomes "bowtie2".
func toolNameFromSnapshot(name string) string {
	return strings.TrimSuffix(strings.TrimPrefix(name, snapshotPrefix), snapshotSuffix)
}
