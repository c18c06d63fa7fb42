// Package show implements the "show" command: a read-only scrape pass
// displayed on the console without writing report artifacts.
package show

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/indaco/verscrape/internal/config"
	"github.com/indaco/verscrape/internal/core"
	"github.com/indaco/verscrape/internal/scraper"
)

// Run returns the "show" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Scrape and display tool versions without writing files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, table",
				Value:   "text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runShowCmd(ctx, cmd, cfg)
		},
	}
}

func runShowCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}

	fs := core.NewOSFileSystem()
	s := scraper.New(fs, scraper.Options{
		Dir:    cmd.String("dir"),
		Strict: cmd.Bool("strict"),
	})

	result, err := s.Run(ctx, cfg)
	if err != nil {
		return err
	}

	formatter := NewFormatter(ParseOutputFormat(cmd.String("format")))
	formatter.PrintResult(result)
	return nil
}
