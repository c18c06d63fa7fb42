package scrape

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/indaco/verscrape/internal/config"
	"github.com/indaco/verscrape/internal/scraper"
	"github.com/indaco/verscrape/internal/testutils"
)

func TestScrapeCmd_EmitsSectionAndTSV(t *testing.T) {
	tmp := t.TempDir()
	testutils.WriteSnapshot(t, tmp, "v_samtools.txt", "samtools 1.9\nUsing htslib 1.9\n")

	cfg := config.Default()
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, []string{"verscrape", "--dir", tmp, "scrape"}, tmp)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	// Stdout carries the MultiQC section.
	for _, want := range []string{
		"id: 'software_versions'",
		"section_name: 'nf-core/hlatyping Software Versions'",
		"plot_type: 'html'",
		"data: |",
		"<dt>Samtools</dt><dd><samp>v1.9</samp></dd>",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("stdout missing %q:\n%s", want, output)
		}
	}

	// The other five tools keep the placeholder markup.
	if got := strings.Count(output, scraper.Placeholder); got != 5 {
		t.Errorf("stdout has %d placeholders, want 5", got)
	}

	// The TSV artifact exists next to the snapshots.
	data, err := os.ReadFile(filepath.Join(tmp, "software_versions.csv"))
	if err != nil {
		t.Fatalf("TSV not written: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("TSV has %d lines, want 6", len(lines))
	}
	if lines[2] != "Samtools\tv1.9" {
		t.Errorf("TSV line 3 = %q, want Samtools\\tv1.9", lines[2])
	}
	for _, line := range lines {
		if !strings.Contains(line, "\t") {
			t.Errorf("TSV line %q has no tab separator", line)
		}
	}
}

func TestScrapeCmd_NoStdout(t *testing.T) {
	tmp := t.TempDir()
	cfg := config.Default()
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, []string{"verscrape", "--dir", tmp, "scrape", "--no-stdout"}, tmp)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}
	if strings.Contains(output, "id: 'software_versions'") {
		t.Errorf("section emitted despite --no-stdout:\n%s", output)
	}
}

func TestScrapeCmd_OutMQC(t *testing.T) {
	tmp := t.TempDir()
	testutils.WriteSnapshot(t, tmp, "v_nextflow.txt", "19.10.0\n")

	cfg := config.Default()
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	args := []string{"verscrape", "--dir", tmp, "scrape", "--no-stdout", "--out-mqc", "software_versions_mqc.yaml"}
	if _, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, args, tmp)
	}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(tmp, "software_versions_mqc.yaml"))
	if err != nil {
		t.Fatalf("MQC file not written: %v", err)
	}
	if !strings.Contains(string(data), "<dt>Nextflow</dt><dd><samp>v19.10.0</samp></dd>") {
		t.Errorf("MQC file missing Nextflow entry:\n%s", data)
	}
}

func TestScrapeCmd_OutJSON(t *testing.T) {
	tmp := t.TempDir()
	testutils.WriteSnapshot(t, tmp, "v_samtools.txt", "samtools 1.9\n")
	if err := os.WriteFile(filepath.Join(tmp, "summary.json"), []byte(`{"run_id":7}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	args := []string{"verscrape", "--dir", tmp, "scrape", "--no-stdout", "--out-json", "summary.json"}
	if _, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, args, tmp)
	}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(tmp, "summary.json"))
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, `"run_id":7`) {
		t.Errorf("existing key lost: %s", got)
	}
	if !strings.Contains(got, `"Samtools":"v1.9"`) {
		t.Errorf("versions not merged: %s", got)
	}
}

func TestScrapeCmd_StrictFailsOnMissingSnapshot(t *testing.T) {
	tmp := t.TempDir()
	cfg := config.Default()
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	err := testutils.RunCLITestAllowError(t, appCli, []string{"verscrape", "--dir", tmp, "--strict", "scrape"}, tmp)
	if err == nil {
		t.Fatal("expected strict mode to fail on missing snapshots")
	}
	if !strings.Contains(err.Error(), "missing snapshot") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestScrapeCmd_MissingDirFails(t *testing.T) {
	tmp := t.TempDir()
	cfg := config.Default()
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	args := []string{"verscrape", "--dir", filepath.Join(tmp, "absent"), "scrape"}
	err := testutils.RunCLITestAllowError(t, appCli, args, tmp)
	if err == nil {
		t.Fatal("expected error for nonexistent scrape directory")
	}
	if !strings.Contains(err.Error(), "scrape directory") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestScrapeCmd_InvalidConfigFails(t *testing.T) {
	tmp := t.TempDir()
	cfg := &config.Config{Tools: []config.ToolConfig{{Name: "X", File: "v_x.txt", Pattern: `([`}}}
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	err := testutils.RunCLITestAllowError(t, appCli, []string{"verscrape", "scrape"}, tmp)
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}
