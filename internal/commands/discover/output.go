package discover

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/indaco/verscrape/internal/config"
	"github.com/indaco/verscrape/internal/discovery"
	"github.com/indaco/verscrape/internal/printer"
)

// OutputFormat controls how discovery results are displayed.
type OutputFormat string

const (
	// FormatText outputs human-readable text with a suggested tools block.
	FormatText OutputFormat = "text"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat converts a string to OutputFormat.
func ParseOutputFormat(s string) OutputFormat {
	if s == "json" {
		return FormatJSON
	}
	return FormatText
}

// Formatter handles display of discovery results.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatResult formats the discovery result for display.
func (f *Formatter) FormatResult(result *discovery.Result) string {
	if f.format == FormatJSON {
		return f.formatJSON(result)
	}
	return f.formatText(result)
}

// PrintResult prints the formatted result to stdout.
func (f *Formatter) PrintResult(result *discovery.Result) {
	fmt.Print(f.FormatResult(result))
}

// formatText formats the result as human-readable text plus a suggested
// YAML tools block.
func (f *Formatter) formatText(result *discovery.Result) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(printer.Info("Discovered Version Sources"))
	sb.WriteString("\n")
	sb.WriteString(printer.Faint(strings.Repeat("-", 60)))
	sb.WriteString("\n")

	if result.IsEmpty() {
		sb.WriteString(printer.Faint("No version sources found."))
		sb.WriteString("\n")
		return sb.String()
	}

	if len(result.Snapshots) > 0 {
		sb.WriteString(printer.Info("Tool Output Snapshots:"))
		sb.WriteString("\n")
		for _, c := range result.Snapshots {
			sb.WriteString(formatCandidateLine(c))
		}
		sb.WriteString("\n")
	}

	if len(result.Manifests) > 0 {
		sb.WriteString(printer.Info("Manifest Files:"))
		sb.WriteString("\n")
		for _, c := range result.Manifests {
			sb.WriteString(formatCandidateLine(c))
		}
		sb.WriteString("\n")
	}

	if block, err := suggestedToolsYAML(result); err == nil {
		sb.WriteString(printer.Info("Suggested .verscrape.yaml tools block:"))
		sb.WriteString("\n")
		sb.WriteString(block)
	}

	return sb.String()
}

func formatCandidateLine(c discovery.Candidate) string {
	status := printer.Success("✓")
	detail := c.Description
	if c.Version != "" {
		detail = fmt.Sprintf("%s, %s", c.Description, c.Version)
	} else {
		status = printer.Warning("⚠")
		detail += ", no version extracted"
	}
	return fmt.Sprintf("  %s %s %s\n", status, c.Path, printer.Faint("("+detail+")"))
}

// suggestedToolsYAML renders the candidates as a pasteable tools block.
func suggestedToolsYAML(result *discovery.Result) (string, error) {
	tools := make([]config.ToolConfig, 0)
	for _, c := range result.Candidates() {
		tools = append(tools, c.ToToolConfig())
	}

	data, err := yaml.Marshal(map[string][]config.ToolConfig{"tools": tools})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatJSON formats the result as JSON.
func (f *Formatter) formatJSON(result *discovery.Result) string {
	type jsonCandidate struct {
		Path        string `json:"path"`
		Tool        string `json:"tool"`
		Format      string `json:"format"`
		Pattern     string `json:"pattern,omitempty"`
		Field       string `json:"field,omitempty"`
		Version     string `json:"version,omitempty"`
		Description string `json:"description"`
		Known       bool   `json:"known"`
	}

	convert := func(in []discovery.Candidate) []jsonCandidate {
		out := make([]jsonCandidate, len(in))
		for i, c := range in {
			out[i] = jsonCandidate{
				Path:        c.Path,
				Tool:        c.Tool,
				Format:      c.Format.String(),
				Pattern:     c.Pattern,
				Field:       c.Field,
				Version:     c.Version,
				Description: c.Description,
				Known:       c.Known,
			}
		}
		return out
	}

	output := struct {
		Snapshots []jsonCandidate `json:"snapshots"`
		Manifests []jsonCandidate `json:"manifests"`
	}{
		Snapshots: convert(result.Snapshots),
		Manifests: convert(result.Manifests),
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
		return ""
	}
	return string(data) + "\n"
}
