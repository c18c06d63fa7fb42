// Package discover implements the "discover" command: scan a directory for
// version sources and suggest configuration entries.
package discover

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/indaco/verscrape/internal/config"
	"github.com/indaco/verscrape/internal/core"
	"github.com/indaco/verscrape/internal/discovery"
	"github.com/indaco/verscrape/internal/printer"
	"github.com/indaco/verscrape/internal/tui"
)

// Run returns the "discover" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:    "discover",
		Aliases: []string{"scan"},
		Usage:   "Scan for version sources and suggest tool entries",
		UsageText: `verscrape discover [options]

Scans the scrape directory for:
  - v_*.txt tool-output snapshots
  - Manifest files (package.json, Cargo.toml, pyproject.toml, ...)

Shows discovered version sources and a ready-to-paste tools block for
.verscrape.yaml.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Append the discovered tools to .verscrape.yaml",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDiscoverCmd(ctx, cmd)
		},
	}
}

func runDiscoverCmd(ctx context.Context, cmd *cli.Command) error {
	rootDir := cmd.String("dir")
	if rootDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		rootDir = cwd
	}

	svc := discovery.NewService(core.NewOSFileSystem())
	result, err := svc.Scan(ctx, rootDir)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	formatter := NewFormatter(ParseOutputFormat(cmd.String("format")))
	formatter.PrintResult(result)

	if cmd.Bool("write") {
		return writeCandidates(result)
	}
	return nil
}

// writeCandidates appends the discovered tools to the configuration file,
// skipping files the config already covers. On interactive terminals the
// user picks which candidates to keep.
func writeCandidates(result *discovery.Result) error {
	if result.IsEmpty() {
		printer.PrintFaint("Nothing to write.")
		return nil
	}

	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = &config.Config{Report: config.Default().Report}
	}

	known := make(map[string]bool, len(cfg.Tools))
	for _, t := range cfg.Tools {
		known[t.File] = true
	}

	var fresh []discovery.Candidate
	for _, c := range result.Candidates() {
		if !known[c.Path] {
			fresh = append(fresh, c)
		}
	}
	if len(fresh) == 0 {
		printer.PrintFaint("All discovered sources are already configured.")
		return nil
	}

	selected, err := pickCandidates(fresh)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		printer.PrintFaint("No tools selected.")
		return nil
	}

	for _, c := range selected {
		cfg.Tools = append(cfg.Tools, c.ToToolConfig())
	}
	if err := config.SaveConfigFn(cfg); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Added %d tool(s) to %s.", len(selected), config.DefaultConfigFile))
	return nil
}

// pickCandidates lets the user choose candidates on a terminal; otherwise
// every candidate is taken.
func pickCandidates(fresh []discovery.Candidate) ([]discovery.Candidate, error) {
	if !tui.IsInteractive() {
		return fresh, nil
	}

	byPath := make(map[string]discovery.Candidate, len(fresh))
	options := make([]huh.Option[string], 0, len(fresh))
	defaults := make([]string, 0, len(fresh))
	for _, c := range fresh {
		byPath[c.Path] = c
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", c.Path, c.Tool), c.Path))
		defaults = append(defaults, c.Path)
	}

	paths, err := tui.MultiSelect("Select tools to add", "", options, defaults)
	if err != nil {
		return nil, err
	}

	selected := make([]discovery.Candidate, 0, len(paths))
	for _, p := range paths {
		selected = append(selected, byPath[p])
	}
	return selected, nil
}
