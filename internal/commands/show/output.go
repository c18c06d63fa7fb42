package show

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/indaco/verscrape/internal/printer"
	"github.com/indaco/verscrape/internal/scraper"
)

// OutputFormat controls how scrape results are displayed.
type OutputFormat string

const (
	// FormatText outputs human-readable text.
	FormatText OutputFormat = "text"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON OutputFormat = "json"

	// FormatTable outputs tabular data.
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat converts a string to OutputFormat.
func ParseOutputFormat(s string) OutputFormat {
	switch s {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// Formatter handles display of scrape results.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatResult formats the scrape result for display.
func (f *Formatter) FormatResult(result *scraper.Result) string {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(result)
	case FormatTable:
		return f.formatTable(result)
	default:
		return f.formatText(result)
	}
}

// PrintResult prints the formatted result to stdout.
func (f *Formatter) PrintResult(result *scraper.Result) {
	fmt.Println(f.FormatResult(result))
}

// displayValue renders a scraped value for the console: versions verbatim,
// the HTML placeholder as a plain faint N/A.
func displayValue(e scraper.Entry) string {
	if e.Found {
		return e.Value
	}
	return "N/A"
}

// formatText formats the result as human-readable text.
func (f *Formatter) formatText(result *scraper.Result) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(printer.Info("Software Versions"))
	sb.WriteString("\n")
	sb.WriteString(printer.Faint(strings.Repeat("-", 50)))
	sb.WriteString("\n")

	for _, e := range result.Entries {
		if e.Found {
			fmt.Fprintf(&sb, "  %s %-20s %s\n", printer.Success("✓"), e.Tool, printer.Bold(e.Value))
		} else {
			fmt.Fprintf(&sb, "  %s %-20s %s\n", printer.Warning("⚠"), e.Tool, printer.Faint("N/A ("+e.File+")"))
		}
	}

	sb.WriteString(printer.Faint(strings.Repeat("-", 50)))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Found: %d of %d tools", result.FoundCount(), len(result.Entries))

	return sb.String()
}

// formatTable formats the result as a table.
func (f *Formatter) formatTable(result *scraper.Result) string {
	columns := []table.Column{
		{Title: "TOOL", Width: 22},
		{Title: "VERSION", Width: 16},
		{Title: "SOURCE", Width: 20},
	}

	rows := make([]table.Row, len(result.Entries))
	for i, e := range result.Entries {
		rows[i] = table.Row{e.Tool, displayValue(e), e.File}
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	return tbl.View()
}

// formatJSON formats the result as JSON.
func (f *Formatter) formatJSON(result *scraper.Result) string {
	type jsonEntry struct {
		Tool    string `json:"tool"`
		Version string `json:"version"`
		File    string `json:"file"`
		Found   bool   `json:"found"`
	}

	output := struct {
		Tools   []jsonEntry `json:"tools"`
		Summary struct {
			Total int `json:"total"`
			Found int `json:"found"`
		} `json:"summary"`
	}{
		Tools: make([]jsonEntry, len(result.Entries)),
	}

	for i, e := range result.Entries {
		output.Tools[i] = jsonEntry{
			Tool:    e.Tool,
			Version: displayValue(e),
			File:    e.File,
			Found:   e.Found,
		}
	}
	output.Summary.Total = len(result.Entries)
	output.Summary.Found = result.FoundCount()

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
		return ""
	}
	return string(data)
}
