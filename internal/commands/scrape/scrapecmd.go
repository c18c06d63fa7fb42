// Package scrape implements the "scrape" command: one extraction pass over
// the configured tool table, followed by report emission.
package scrape

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh/spinner"
	"github.com/urfave/cli/v3"

	"github.com/indaco/verscrape/internal/config"
	"github.com/indaco/verscrape/internal/core"
	"github.com/indaco/verscrape/internal/printer"
	"github.com/indaco/verscrape/internal/report"
	"github.com/indaco/verscrape/internal/scraper"
	"github.com/indaco/verscrape/internal/tui"
)

// Run returns the "scrape" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "scrape",
		Usage: "Extract tool versions and emit the version-summary report",
		UsageText: `verscrape scrape [options]

Reads each configured snapshot file, extracts the version, and emits:
  - the MultiQC section YAML on stdout (unless --no-stdout)
  - the tab-separated artifact (software_versions.csv by default)
  - optionally a MultiQC section file and a JSON summary merge`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out-tsv",
				Usage: "Tab-separated output file (overrides config)",
			},
			&cli.StringFlag{
				Name:  "out-mqc",
				Usage: "Write the MultiQC section to this file as well",
			},
			&cli.StringFlag{
				Name:  "out-json",
				Usage: "Merge the version mapping into this JSON summary file",
			},
			&cli.BoolFlag{
				Name:  "no-stdout",
				Usage: "Suppress the MultiQC section on stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runScrapeCmd(ctx, cmd, cfg)
		},
	}
}

func runScrapeCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}

	dir := cmd.String("dir")
	strict := cmd.Bool("strict")

	fs := core.NewOSFileSystem()
	if dir != "" {
		if _, err := fs.Stat(ctx, dir); err != nil {
			return fmt.Errorf("scrape directory %q: %w", dir, err)
		}
	}

	s := scraper.New(fs, scraper.Options{Dir: dir, Strict: strict})

	result, err := runWithSpinner(ctx, s, cfg)
	if err != nil {
		return err
	}

	rep := report.New(cfg.Report, result)

	if !cmd.Bool("no-stdout") {
		fmt.Print(rep.MQCSection())
	}

	tsvPath := cmd.String("out-tsv")
	if tsvPath == "" {
		tsvPath = cfg.Report.TSV
	}
	if err := rep.WriteTSV(ctx, fs, resolve(dir, tsvPath)); err != nil {
		return fmt.Errorf("failed to write TSV: %w", err)
	}

	mqcPath := cmd.String("out-mqc")
	if mqcPath == "" {
		mqcPath = cfg.Report.MQC
	}
	if mqcPath != "" {
		if err := rep.WriteMQC(ctx, fs, resolve(dir, mqcPath)); err != nil {
			return fmt.Errorf("failed to write MultiQC section: %w", err)
		}
	}

	if jsonPath := cmd.String("out-json"); jsonPath != "" {
		if err := rep.MergeJSON(ctx, fs, resolve(dir, jsonPath)); err != nil {
			return err
		}
	}

	printSummary(result)
	return nil
}

// runWithSpinner runs the scrape pass behind a spinner on interactive
// terminals, plainly otherwise.
func runWithSpinner(ctx context.Context, s *scraper.Scraper, cfg *config.Config) (*scraper.Result, error) {
	if !tui.IsInteractive() {
		return s.Run(ctx, cfg)
	}

	var (
		result *scraper.Result
		runErr error
	)
	spinErr := spinner.New().
		Title("Scraping software versions...").
		Action(func() {
			result, runErr = s.Run(ctx, cfg)
		}).
		Run()
	if spinErr != nil {
		return nil, spinErr
	}
	return result, runErr
}

// printSummary reports scrape coverage on stderr, keeping stdout reserved
// for the YAML section.
func printSummary(result *scraper.Result) {
	found := result.FoundCount()
	total := len(result.Entries)

	line := fmt.Sprintf("Scraped %d of %d tool versions", found, total)
	if found == total {
		printer.Fprintln(os.Stderr, printer.Success(line))
		return
	}

	printer.Fprintln(os.Stderr, printer.Warning(line))
	for _, e := range result.Missing() {
		printer.Fprintln(os.Stderr, printer.Faint(fmt.Sprintf("  %s: no version found in %s", e.Tool, e.File)))
	}
}

func resolve(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
