package discovery

import (
	"github.com/indaco/verscrape/internal/config"
	"github.com/indaco/verscrape/internal/parser"
)

// Candidate is a file in the scanned directory that looks like a version
// source, together with the tool entry it suggests.
type Candidate struct {
	// Path is the file path relative to the scan root.
	Path string

	// Tool is the suggested display name.
	Tool string

	// Format is the suggested extraction format.
	Format parser.Format

	// Field is the suggested dot-notation field (structured formats).
	Field string

	// Pattern is the suggested regex pattern, when a known tool's output
	// layout is recognized.
	Pattern string

	// Version is the version the suggestion currently extracts, when
	// extraction succeeded during the scan.
	Version string

	// Description is a human-readable description of the source kind.
	Description string

	// Known reports whether the candidate matched the built-in tool table.
	Known bool
}

// ToToolConfig converts a candidate into a config entry.
func (c Candidate) ToToolConfig() config.ToolConfig {
	return config.ToolConfig{
		Name:    c.Tool,
		File:    c.Path,
		Format:  formatField(c),
		Pattern: c.Pattern,
		Field:   c.Field,
	}
}

// formatField leaves the format implicit for regex candidates, matching how
// the default table is written.
func formatField(c Candidate) string {
	if c.Format == parser.FormatRegex {
		return ""
	}
	return c.Format.String()
}

// Result is the outcome of a directory scan.
type Result struct {
	// Snapshots are v_*.txt tool-output files.
	Snapshots []Candidate

	// Manifests are recognized project manifests carrying a version field.
	Manifests []Candidate
}

// IsEmpty reports whether the scan found nothing usable.
func (r *Result) IsEmpty() bool {
	return len(r.Snapshots) == 0 && len(r.Manifests) == 0
}

// Candidates returns all candidates, snapshots first, preserving scan order.
func (r *Result) Candidates() []Candidate {
	out := make([]Candidate, 0, len(r.Snapshots)+len(r.Manifests))
	out = append(out, r.Snapshots...)
	out = append(out, r.Manifests...)
	return out
}

// KnownManifest describes a recognized manifest file type.
type KnownManifest struct {
	Filename    string
	Format      parser.Format
	Field       string
	Description string
}

// DefaultKnownManifests returns the manifest file types the scan recognizes.
func DefaultKnownManifests() []KnownManifest {
	return []KnownManifest{
		{Filename: "package.json", Format: parser.FormatJSON, Field: "version", Description: "Node.js (package.json)"},
		{Filename: "Cargo.toml", Format: parser.FormatTOML, Field: "package.version", Description: "Rust (Cargo.toml)"},
		{Filename: "pyproject.toml", Format: parser.FormatTOML, Field: "project.version", Description: "Python (pyproject.toml)"},
		{Filename: "Chart.yaml", Format: parser.FormatYAML, Field: "version", Description: "Helm (Chart.yaml)"},
		{Filename: "pubspec.yaml", Format: parser.FormatYAML, Field: "version", Description: "Dart (pubspec.yaml)"},
	}
}
