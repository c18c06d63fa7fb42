// Package report renders the scraped version summary in its output
// formats: the MultiQC section YAML (embedded HTML definition list), the
// tab-separated artifact, and the JSON summary merge.
package report

import (
	"github.com/indaco/verscrape/internal/config"
	"github.com/indaco/verscrape/internal/scraper"
)

// Report is the renderable version summary: the section header plus the
// surviving entries in declaration order.
type Report struct {
	ID          string
	SectionName string
	SectionHref string
	Description string
	HTMLClass   string
	Entries     []scraper.Entry
}

// New builds a Report from the report settings and a scrape result.
// Entries with an empty display value are dropped here; with the default
// placeholder that never happens, matching the original contract.
func New(rc config.ReportConfig, result *scraper.Result) *Report {
	return &Report{
		ID:          rc.ID,
		SectionName: rc.SectionName,
		SectionHref: rc.SectionHref,
		Description: rc.Description,
		HTMLClass:   rc.HTMLClass,
		Entries:     result.Surviving(),
	}
}
