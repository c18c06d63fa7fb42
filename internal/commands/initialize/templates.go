package initialize

import (
	"fmt"
	"strings"

	"github.com/indaco/verscrape/internal/config"
)

// Template is a pre-configured tool table for common setups.
type Template struct {
	Name        string
	Description string
	Config      func() *config.Config
}

// AllTemplates returns all available templates.
func AllTemplates() []Template {
	return []Template{
		{
			Name:        "hlatyping",
			Description: "The nf-core/hlatyping pipeline tool table",
			Config:      config.Default,
		},
		{
			Name:        "minimal",
			Description: "A single example entry to edit by hand",
			Config: func() *config.Config {
				return &config.Config{
					Tools: []config.ToolConfig{
						{Name: "Samtools", File: "v_samtools.txt", Pattern: `samtools (\S+)`},
					},
					Report: config.Default().Report,
				}
			},
		},
	}
}

// TemplateNames returns the names of all available templates.
func TemplateNames() []string {
	templates := AllTemplates()
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}

// GetTemplate returns the template with the given name, or an error if not found.
func GetTemplate(name string) (*Template, error) {
	for _, t := range AllTemplates() {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unknown template %q (available: %s)", name, strings.Join(TemplateNames(), ", "))
}
