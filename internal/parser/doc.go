// Package parser provides a unified interface for reading version strings
// from tool-output snapshots and manifest files, supporting regex capture,
// raw content, and JSON, YAML and TOML field lookup.
package parser
