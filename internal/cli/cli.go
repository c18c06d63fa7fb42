package cli

import (
	"context"
	"fmt"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/indaco/verscrape/internal/commands/discover"
	"github.com/indaco/verscrape/internal/commands/doctor"
	"github.com/indaco/verscrape/internal/commands/initialize"
	"github.com/indaco/verscrape/internal/commands/scrape"
	"github.com/indaco/verscrape/internal/commands/show"
	"github.com/indaco/verscrape/internal/config"
	"github.com/indaco/verscrape/internal/console"
	"github.com/indaco/verscrape/internal/tui"
	"github.com/indaco/verscrape/internal/version"
)

var noColorFlag bool

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the verscrape cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "verscrape",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Scrape software versions from tool output and emit pipeline reports",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Directory snapshot files are read from and reports written to",
			},
			&urfavecli.BoolFlag{
				Name:  "strict",
				Usage: "Fail the run when a snapshot file is missing",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			console.SetNoColor(noColorFlag)
			tui.SetTheme(cfg.Theme)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			scrape.Run(cfg),
			show.Run(cfg),
			initialize.Run(),
			discover.Run(),
			doctor.Run(cfg),
		},
	}
}
