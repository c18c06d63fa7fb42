package report

import (
	"context"
	"strings"

	"github.com/indaco/verscrape/internal/core"
)

// mqcIndent is the indentation of the literal block carrying the HTML
// payload. MultiQC reads the section as YAML, so the block must be indented
// consistently under the data key.
const mqcIndent = "    "

// MQCSection renders the MultiQC custom-content section: five single-quoted
// header keys and a literal-block data key holding the definition list.
func (r *Report) MQCSection() string {
	var sb strings.Builder
	sb.WriteString("id: " + yamlQuote(r.ID) + "\n")
	sb.WriteString("section_name: " + yamlQuote(r.SectionName) + "\n")
	sb.WriteString("section_href: " + yamlQuote(r.SectionHref) + "\n")
	sb.WriteString("plot_type: 'html'\n")
	sb.WriteString("description: " + yamlQuote(r.Description) + "\n")
	sb.WriteString("data: |\n")
	for _, line := range strings.Split(r.DefinitionList(), "\n") {
		sb.WriteString(mqcIndent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// WriteMQC writes the MultiQC section to the given path, overwriting any
// existing file.
func (r *Report) WriteMQC(ctx context.Context, fs core.FileSystem, path string) error {
	return fs.WriteFile(ctx, path, []byte(r.MQCSection()), core.PermSharedRW)
}

// yamlQuote wraps a scalar in single quotes, doubling embedded quotes per
// the YAML spec.
func yamlQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
