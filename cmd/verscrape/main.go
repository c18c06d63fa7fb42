package main

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/verscrape/internal/cli"
	"github.com/indaco/verscrape/internal/config"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runCLI loads the configuration and executes the root command.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = config.Default()
	}

	app := cli.New(cfg)
	return app.Run(context.Background(), args)
}
