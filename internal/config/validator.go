package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/indaco/verscrape/internal/parser"
	"github.com/indaco/verscrape/internal/semver"
)

// ErrInvalidConfig is the sentinel wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the configuration for problems that would make a scrape
// run meaningless: empty or duplicate tool names, missing files, patterns
// that do not compile or lack a capturing group, and structured formats
// without a field path.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: configuration is nil", ErrInvalidConfig)
	}
	if len(cfg.Tools) == 0 {
		return fmt.Errorf("%w: no tools configured", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(cfg.Tools))
	for i, tool := range cfg.Tools {
		if err := validateTool(i, tool); err != nil {
			return err
		}
		if seen[tool.Name] {
			return fmt.Errorf("%w: duplicate tool name %q", ErrInvalidConfig, tool.Name)
		}
		seen[tool.Name] = true
	}

	return nil
}

func validateTool(index int, tool ToolConfig) error {
	if tool.Name == "" {
		return fmt.Errorf("%w: tool at index %d has no name", ErrInvalidConfig, index)
	}
	if tool.File == "" {
		return fmt.Errorf("%w: tool %q has no file", ErrInvalidConfig, tool.Name)
	}

	if tool.Format != "" && !parser.Format(tool.Format).IsValid() {
		return fmt.Errorf("%w: tool %q has unknown format %q", ErrInvalidConfig, tool.Name, tool.Format)
	}
	format := parser.FormatFor(tool.Format, tool.Pattern)

	switch format {
	case parser.FormatRegex:
		if tool.Pattern == "" {
			return fmt.Errorf("%w: tool %q uses regex format but has no pattern", ErrInvalidConfig, tool.Name)
		}
		re, err := regexp.Compile(tool.Pattern)
		if err != nil {
			return fmt.Errorf("%w: tool %q has invalid pattern: %v", ErrInvalidConfig, tool.Name, err)
		}
		if re.NumSubexp() < 1 {
			return fmt.Errorf("%w: tool %q pattern %q has no capturing group", ErrInvalidConfig, tool.Name, tool.Pattern)
		}
	case parser.FormatJSON, parser.FormatYAML, parser.FormatTOML:
		if tool.Field == "" {
			return fmt.Errorf("%w: tool %q uses %s format but has no field", ErrInvalidConfig, tool.Name, format)
		}
	}

	if tool.Min != "" {
		if _, err := semver.Parse(tool.Min); err != nil {
			return fmt.Errorf("%w: tool %q has invalid min version %q: %v", ErrInvalidConfig, tool.Name, tool.Min, err)
		}
	}

	return nil
}
