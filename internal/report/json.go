package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/tidwall/sjson"

	"github.com/indaco/verscrape/internal/core"
)

// versionsKey is the top-level key the version mapping is stored under in
// the JSON summary document.
const versionsKey = "software_versions"

// versionsJSON builds the version mapping as raw JSON, preserving entry
// order (encoding a Go map would not).
func (r *Report) versionsJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range r.Entries {
		if i > 0 {
			sb.WriteByte(',')
		}
		name, err := json.Marshal(e.Tool)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		sb.Write(name)
		sb.WriteByte(':')
		sb.Write(value)
	}
	sb.WriteByte('}')
	return []byte(sb.String()), nil
}

// MergeJSON writes the version mapping into the JSON summary document at
// path under the "software_versions" key. An existing document is updated
// in place so unrelated keys and their ordering survive; a missing one is
// created fresh.
func (r *Report) MergeJSON(ctx context.Context, fsys core.FileSystem, path string) error {
	existing, err := fsys.ReadFile(ctx, path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		existing = []byte("{}\n")
	default:
		return fmt.Errorf("failed to read summary %q: %w", path, err)
	}

	versions, err := r.versionsJSON()
	if err != nil {
		return fmt.Errorf("failed to encode versions: %w", err)
	}

	updated, err := sjson.SetRawBytes(existing, versionsKey, versions)
	if err != nil {
		return fmt.Errorf("failed to update summary %q: %w", path, err)
	}

	if err := fsys.WriteFile(ctx, path, updated, core.PermSharedRW); err != nil {
		return fmt.Errorf("failed to write summary %q: %w", path, err)
	}

	return nil
}
