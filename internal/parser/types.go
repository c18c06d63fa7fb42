package parser

// Format represents the supported extraction strategies for version sources.
type Format string

const (
	// FormatRegex extracts the version with a regex capturing group.
	FormatRegex Format = "regex"

	// FormatRaw treats the entire trimmed file content as the version.
	FormatRaw Format = "raw"

	// FormatJSON looks the version up in a JSON document (package.json, etc.).
	FormatJSON Format = "json"

	// FormatYAML looks the version up in a YAML document (Chart.yaml, etc.).
	FormatYAML Format = "yaml"

	// FormatTOML looks the version up in a TOML document (Cargo.toml, etc.).
	FormatTOML Format = "toml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatRegex, FormatRaw, FormatJSON, FormatYAML, FormatTOML:
		return true
	default:
		return false
	}
}

// FormatFor resolves the effective format for a tool entry. An explicit
// valid format wins; otherwise a non-empty pattern implies regex and an
// empty one implies raw.
func FormatFor(explicit, pattern string) Format {
	if f := Format(explicit); f.IsValid() {
		return f
	}
	if pattern != "" {
		return FormatRegex
	}
	return FormatRaw
}

// Source describes where and how to read one version string.
type Source struct {
	// Path is the file path (absolute or relative to the scrape directory).
	Path string

	// Format specifies the extraction strategy.
	Format Format

	// Pattern is the regex pattern for regex format.
	// Must contain a capturing group for the version.
	Pattern string

	// Field is the dot-notation path to the version field
	// (for JSON/YAML/TOML). Example: "version", "tool.poetry.version".
	Field string
}

// Extraction is the outcome of reading a version from a source.
type Extraction struct {
	// Version is the extracted version string.
	Version string

	// Path is the file path that was read.
	Path string

	// Format is the format that was used.
	Format Format
}
