// Package initialize implements the "init" command, which writes a
// .verscrape.yaml configuration from a template.
package initialize

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/indaco/verscrape/internal/config"
	"github.com/indaco/verscrape/internal/printer"
	"github.com/indaco/verscrape/internal/tui"
)

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a .verscrape.yaml configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "Configuration template: hlatyping, minimal",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd)
		},
	}
}

func runInitCmd(_ context.Context, cmd *cli.Command) error {
	configFile := config.DefaultConfigFile

	if _, err := os.Stat(configFile); err == nil && !cmd.Bool("force") {
		overwrite, err := confirmOverwrite(configFile)
		if err != nil {
			return err
		}
		if !overwrite {
			printer.PrintFaint("Keeping existing configuration.")
			return nil
		}
	}

	tmpl, err := pickTemplate(cmd.String("template"))
	if err != nil {
		return err
	}

	saver := config.NewConfigSaver(nil, nil, nil)
	if err := saver.SaveTo(tmpl.Config(), configFile); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Created %s from the %q template.", configFile, tmpl.Name))
	printer.PrintFaint("Edit the tools list to match your pipeline, then run 'verscrape scrape'.")
	return nil
}

// confirmOverwrite asks before clobbering an existing config; outside a
// terminal it refuses, pointing at --force.
func confirmOverwrite(configFile string) (bool, error) {
	if !tui.IsInteractive() {
		return false, fmt.Errorf("%s already exists (use --force to overwrite)", configFile)
	}
	return tui.Confirm(
		fmt.Sprintf("%s already exists. Overwrite?", configFile),
		"The existing tool table will be replaced.",
	)
}

// pickTemplate resolves the template from the flag, prompting on a terminal
// when the flag is absent.
func pickTemplate(name string) (*Template, error) {
	if name != "" {
		return GetTemplate(name)
	}

	if !tui.IsInteractive() {
		// Non-interactive default: the full pipeline table.
		return GetTemplate("hlatyping")
	}

	options := make([]huh.Option[string], 0, len(AllTemplates()))
	for _, t := range AllTemplates() {
		options = append(options, huh.NewOption(fmt.Sprintf("%s - %s", t.Name, t.Description), t.Name))
	}

	selected, err := tui.Select("Choose a configuration template", "", options)
	if err != nil {
		return nil, err
	}
	return GetTemplate(selected)
}
