// Package doctor implements the "doctor" command, which validates the
// configuration and checks the scrape directory for problems before a run.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/urfave/cli/v3"

	"github.com/indaco/verscrape/internal/config"
	"github.com/indaco/verscrape/internal/core"
	"github.com/indaco/verscrape/internal/parser"
	"github.com/indaco/verscrape/internal/printer"
	"github.com/indaco/verscrape/internal/scraper"
	"github.com/indaco/verscrape/internal/semver"
)

// Run returns the "doctor" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Validate the configuration and check snapshot files",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDoctorCmd(ctx, cmd, cfg)
		},
	}
}

// runDoctorCmd validates config and inputs. Configuration problems fail the
// command; missing snapshots are warnings unless --strict is set.
func runDoctorCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	if err := config.Validate(cfg); err != nil {
		printer.PrintError("Configuration is invalid:")
		printer.PrintError("  " + err.Error())
		return err
	}
	printer.PrintSuccess(fmt.Sprintf("Configuration valid: %d tool(s)", len(cfg.Tools)))

	dir := cmd.String("dir")
	s := scraper.New(core.NewOSFileSystem(), scraper.Options{Dir: dir})

	// The dry run reads local files only; a bound keeps doctor snappy even
	// on a hung filesystem.
	ctx, cancel := context.WithTimeout(ctx, core.TimeoutShort)
	defer cancel()

	result, err := s.Run(ctx, cfg)
	if err != nil {
		return err
	}

	minByTool := make(map[string]string, len(cfg.Tools))
	for _, tool := range cfg.Tools {
		if tool.Min != "" {
			minByTool[tool.Name] = tool.Min
		}
	}

	missing := 0
	for _, e := range result.Entries {
		switch {
		case e.Found:
			printer.PrintSuccess(fmt.Sprintf("  ✓ %s: %s (%s)", e.Tool, e.Value, e.File))
			checkVersion(e, minByTool[e.Tool])
		case errors.Is(e.Err, fs.ErrNotExist):
			missing++
			printer.PrintWarning(fmt.Sprintf("  ⚠ %s: snapshot %s not found", e.Tool, e.File))
		case errors.Is(e.Err, parser.ErrNoMatch):
			missing++
			printer.PrintWarning(fmt.Sprintf("  ⚠ %s: %s has no matching version", e.Tool, e.File))
		default:
			missing++
			printer.PrintWarning(fmt.Sprintf("  ⚠ %s: %v", e.Tool, e.Err))
		}
	}

	if missing == 0 {
		printer.PrintSuccess("All snapshots yield a version.")
		return nil
	}

	printer.PrintWarning(fmt.Sprintf("%d tool(s) would report the N/A placeholder.", missing))
	if cmd.Bool("strict") {
		return fmt.Errorf("%d of %d tools have no scrapeable version", missing, len(cfg.Tools))
	}
	return nil
}

// checkVersion inspects a scraped version: values that do not parse as a
// dotted version usually point at a sloppy pattern, and values below the
// tool's configured minimum are flagged.
func checkVersion(e scraper.Entry, minVersion string) {
	got, err := semver.Parse(e.Value)
	if err != nil {
		printer.PrintFaint(fmt.Sprintf("    note: %q is not a dotted version, check the pattern", e.Value))
		return
	}
	if minVersion == "" {
		return
	}

	// Validation guarantees the minimum parses.
	minV, err := semver.Parse(minVersion)
	if err != nil {
		return
	}
	if got.Compare(minV) < 0 {
		printer.PrintWarning(fmt.Sprintf("    ⚠ %s %s is below the minimum %s", e.Tool, e.Value, minVersion))
	}
}
