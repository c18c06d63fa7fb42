// Package testutils provides shared helpers for command-level tests:
// stdout capture, temp fixtures, and CLI runners that execute commands
// from a given working directory.
package testutils

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"
)

// CaptureStdout runs fn while capturing everything written to stdout.
func CaptureStdout(fn func()) (string, error) {
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stdout = w

	fn()

	if err := w.Close(); err != nil {
		os.Stdout = orig
		return "", err
	}
	os.Stdout = orig

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// BuildCLIForTests assembles a minimal root command hosting the given
// subcommands, mirroring the production root without prompts or styling.
func BuildCLIForTests(cmds []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:  "verscrape",
		Usage: "test harness",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}},
			&cli.BoolFlag{Name: "strict"},
		},
		Commands: cmds,
	}
}

// RunCLITest executes the CLI with args from the given working directory
// and fails the test on error.
func RunCLITest(t *testing.T, app *cli.Command, args []string, dir string) {
	t.Helper()
	if err := RunCLITestAllowError(t, app, args, dir); err != nil {
		t.Fatalf("CLI run %v failed: %v", args, err)
	}
}

// RunCLITestAllowError executes the CLI with args from the given working
// directory and returns the error, restoring the original directory after.
func RunCLITestAllowError(t *testing.T, app *cli.Command, args []string, dir string) error {
	t.Helper()

	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})

	return app.Run(context.Background(), args)
}

// WriteTempConfig writes raw config YAML into dir as .verscrape.yaml and
// returns its path.
func WriteTempConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".verscrape.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// WriteSnapshot writes a tool-output snapshot file into dir and returns
// its path.
func WriteSnapshot(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
