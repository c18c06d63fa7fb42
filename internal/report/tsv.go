package report

import (
	"context"
	"strings"

	"github.com/indaco/verscrape/internal/core"
)

// TSV renders the entries as tab-separated "name\tvalue" lines in order,
// no header, no escaping, matching the historical artifact consumed by
// downstream pipeline steps.
func (r *Report) TSV() string {
	var sb strings.Builder
	for _, e := range r.Entries {
		sb.WriteString(e.Tool)
		sb.WriteByte('\t')
		sb.WriteString(e.Value)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTSV writes the tab-separated artifact to the given path, overwriting
// any existing file of that name.
func (r *Report) WriteTSV(ctx context.Context, fs core.FileSystem, path string) error {
	return fs.WriteFile(ctx, path, []byte(r.TSV()), core.PermSharedRW)
}
