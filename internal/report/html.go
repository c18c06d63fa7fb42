package report

import (
	"fmt"
	"strings"
)

// dlClass is the default CSS class of the emitted definition list, matching
// what the MultiQC default template styles.
const dlClass = "dl-horizontal"

// DefinitionList renders the entries as an HTML definition list with one
// <dt>/<dd> pair per entry, in order. Values are emitted verbatim: they are
// either the trusted placeholder markup or a scraped version wrapped in
// <samp>.
func (r *Report) DefinitionList() string {
	class := r.HTMLClass
	if class == "" {
		class = dlClass
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<dl class=%q>\n", class))
	for _, e := range r.Entries {
		fmt.Fprintf(&sb, "    <dt>%s</dt><dd><samp>%s</samp></dd>\n", e.Tool, e.Value)
	}
	sb.WriteString("</dl>")
	return sb.String()
}
