package parser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/indaco/verscrape/internal/core"
)

// ErrNoMatch is returned when the file content does not yield a version:
// the regex did not match, or the structured field is absent. Callers fall
// back to the placeholder on this error.
var ErrNoMatch = errors.New("no version match")

// ErrBadSource is returned when the source definition itself is unusable
// (missing path, unknown format, non-compiling pattern, missing field).
// Unlike ErrNoMatch this indicates a configuration bug, not input content.
var ErrBadSource = errors.New("bad version source")

// Extractor reads version strings from files in multiple formats.
type Extractor struct {
	fs core.FileSystem
}

// NewExtractor creates a new Extractor with the given filesystem.
func NewExtractor(fs core.FileSystem) *Extractor {
	return &Extractor{fs: fs}
}

// Extract reads a version from a file based on the provided source.
// A missing file surfaces as the filesystem's error (fs.ErrNotExist
// wrapped); content that yields no version surfaces as ErrNoMatch.
func (e *Extractor) Extract(ctx context.Context, src Source) (*Extraction, error) {
	if src.Path == "" {
		return nil, fmt.Errorf("%w: source path is required", ErrBadSource)
	}

	if !src.Format.IsValid() {
		return nil, fmt.Errorf("%w: invalid format %q", ErrBadSource, src.Format)
	}

	data, err := e.fs.ReadFile(ctx, src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", src.Path, err)
	}

	var version string
	switch src.Format {
	case FormatRegex:
		version, err = e.extractRegex(data, src.Path, src.Pattern)
	case FormatRaw:
		version, err = e.extractRaw(data)
	case FormatJSON:
		version, err = e.extractJSON(data, src.Path, src.Field)
	case FormatYAML:
		version, err = e.extractYAML(data, src.Path, src.Field)
	case FormatTOML:
		version, err = e.extractTOML(data, src.Path, src.Field)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrBadSource, src.Format)
	}

	if err != nil {
		return nil, err
	}

	return &Extraction{
		Version: version,
		Path:    src.Path,
		Format:  src.Format,
	}, nil
}

// ExtractVersion is a convenience method that returns just the version string.
func (e *Extractor) ExtractVersion(ctx context.Context, src Source) (string, error) {
	result, err := e.Extract(ctx, src)
	if err != nil {
		return "", err
	}
	return result.Version, nil
}

// extractRegex applies a pattern with a capturing group to the file content
// and returns the first capture.
func (e *Extractor) extractRegex(data []byte, path, pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("%w: pattern is required for regex format", ErrBadSource)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("%w: invalid regex pattern %q: %v", ErrBadSource, pattern, err)
	}
	if re.NumSubexp() < 1 {
		return "", fmt.Errorf("%w: pattern %q must have a capturing group", ErrBadSource, pattern)
	}

	matches := re.FindSubmatch(data)
	if len(matches) < 2 {
		return "", fmt.Errorf("%w in %q for pattern %q", ErrNoMatch, path, pattern)
	}

	return string(matches[1]), nil
}

// extractRaw reads the entire file contents as the version (trimmed).
func (e *Extractor) extractRaw(data []byte) (string, error) {
	version := strings.TrimSpace(string(data))
	if version == "" {
		return "", ErrNoMatch
	}
	return version, nil
}

// extractJSON extracts a version from JSON data using dot notation for the field path.
func (e *Extractor) extractJSON(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("%w: field is required for JSON format", ErrBadSource)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse JSON in %q: %w", path, err)
	}

	return nestedString(obj, path, field)
}

// extractYAML extracts a version from YAML data using dot notation for the field path.
func (e *Extractor) extractYAML(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("%w: field is required for YAML format", ErrBadSource)
	}

	var obj map[string]any
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse YAML in %q: %w", path, err)
	}

	return nestedString(obj, path, field)
}

// extractTOML extracts a version from TOML data using dot notation for the field path.
func (e *Extractor) extractTOML(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("%w: field is required for TOML format", ErrBadSource)
	}

	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse TOML in %q: %w", path, err)
	}

	return nestedString(obj, path, field)
}

// nestedString retrieves a string value from a nested map using dot notation.
// Example: "tool.poetry.version" accesses obj["tool"]["poetry"]["version"].
// An absent field reports ErrNoMatch so callers treat it like a failed regex.
func nestedString(obj map[string]any, path, field string) (string, error) {
	parts := strings.Split(field, ".")
	current := any(obj)

	for i, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return "", fmt.Errorf("field %q is not an object at path %q in %q", strings.Join(parts[:i], "."), part, path)
		}

		value, exists := currentMap[part]
		if !exists {
			return "", fmt.Errorf("%w: field %q not found in %q", ErrNoMatch, field, path)
		}

		current = value
	}

	version, ok := current.(string)
	if !ok {
		return "", fmt.Errorf("field %q in %q is not a string", field, path)
	}

	return version, nil
}
