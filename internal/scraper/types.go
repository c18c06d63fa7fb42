package scraper

// Placeholder is the markup shown for a tool whose version could not be
// scraped. It survives into both the HTML section and the TSV file.
const Placeholder = `<span style="color:#999999;">N/A</span>`

// Entry is the scrape outcome for a single tool.
type Entry struct {
	// Tool is the display name of the tool.
	Tool string

	// File is the snapshot path that was read.
	File string

	// Value is the display value: the normalized version on success,
	// the placeholder otherwise.
	Value string

	// Found reports whether a version was extracted.
	Found bool

	// Err records why extraction fell back to the placeholder
	// (missing file, failed match). Nil on success.
	Err error
}

// Result is the ordered outcome of one scrape pass. Order equals the tool
// declaration order of the configuration and is preserved in every output.
type Result struct {
	Entries []Entry
}

// Surviving returns the entries that carry a non-empty display value,
// preserving order. With the default placeholder a value is never empty,
// so normally every entry survives.
func (r *Result) Surviving() []Entry {
	entries := make([]Entry, 0, len(r.Entries))
	for _, e := range r.Entries {
		if e.Value != "" {
			entries = append(entries, e)
		}
	}
	return entries
}

// FoundCount returns the number of tools with an extracted version.
func (r *Result) FoundCount() int {
	n := 0
	for _, e := range r.Entries {
		if e.Found {
			n++
		}
	}
	return n
}

// Missing returns the entries that fell back to the placeholder.
func (r *Result) Missing() []Entry {
	var entries []Entry
	for _, e := range r.Entries {
		if !e.Found {
			entries = append(entries, e)
		}
	}
	return entries
}

// IsEmpty reports whether no tool yielded a version.
func (r *Result) IsEmpty() bool {
	return r.FoundCount() == 0
}
