package doctor

import (
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/indaco/verscrape/internal/config"
	"github.com/indaco/verscrape/internal/testutils"
)

func TestDoctorCmd_AllSnapshotsPresent(t *testing.T) {
	tmp := t.TempDir()
	testutils.WriteSnapshot(t, tmp, "v_tool.txt", "tool 2.0.1\n")

	cfg := &config.Config{
		Tools: []config.ToolConfig{
			{Name: "Tool", File: "v_tool.txt", Pattern: `tool (\S+)`},
		},
	}
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, []string{"verscrape", "--dir", tmp, "doctor"}, tmp)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	if !strings.Contains(output, "Configuration valid: 1 tool(s)") {
		t.Errorf("missing validation line:\n%s", output)
	}
	if !strings.Contains(output, "All snapshots yield a version.") {
		t.Errorf("missing all-clear line:\n%s", output)
	}
	if !strings.Contains(output, "v2.0.1") {
		t.Errorf("missing scraped version:\n%s", output)
	}
}

func TestDoctorCmd_MissingSnapshotIsWarning(t *testing.T) {
	tmp := t.TempDir()
	cfg := config.Default()
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, []string{"verscrape", "--dir", tmp, "doctor"}, tmp)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	if !strings.Contains(output, "6 tool(s) would report the N/A placeholder.") {
		t.Errorf("missing placeholder summary:\n%s", output)
	}
}

func TestDoctorCmd_StrictFailsOnPlaceholders(t *testing.T) {
	tmp := t.TempDir()
	testutils.WriteSnapshot(t, tmp, "v_samtools.txt", "samtools 1.9\n")

	cfg := config.Default()
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	err := testutils.RunCLITestAllowError(t, appCli, []string{"verscrape", "--dir", tmp, "--strict", "doctor"}, tmp)
	if err == nil {
		t.Fatal("expected strict doctor to fail when placeholders remain")
	}
	if !strings.Contains(err.Error(), "5 of 6 tools") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDoctorCmd_FlagsVersionBelowMinimum(t *testing.T) {
	tmp := t.TempDir()
	testutils.WriteSnapshot(t, tmp, "v_samtools.txt", "samtools 1.9\n")

	cfg := &config.Config{
		Tools: []config.ToolConfig{
			{Name: "Samtools", File: "v_samtools.txt", Pattern: `samtools (\S+)`, Min: "1.10"},
		},
	}
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, []string{"verscrape", "--dir", tmp, "doctor"}, tmp)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	if !strings.Contains(output, "below the minimum 1.10") {
		t.Errorf("missing minimum-version warning:\n%s", output)
	}
}

func TestDoctorCmd_VersionMeetsMinimum(t *testing.T) {
	tmp := t.TempDir()
	testutils.WriteSnapshot(t, tmp, "v_samtools.txt", "samtools 1.10\n")

	cfg := &config.Config{
		Tools: []config.ToolConfig{
			{Name: "Samtools", File: "v_samtools.txt", Pattern: `samtools (\S+)`, Min: "1.9"},
		},
	}
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, []string{"verscrape", "--dir", tmp, "doctor"}, tmp)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	if strings.Contains(output, "below the minimum") {
		t.Errorf("unexpected minimum-version warning:\n%s", output)
	}
}

func TestDoctorCmd_InvalidConfig(t *testing.T) {
	tmp := t.TempDir()
	cfg := &config.Config{
		Tools: []config.ToolConfig{
			{Name: "Broken", File: "v_broken.txt", Pattern: `no capture group`},
		},
	}
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	err := testutils.RunCLITestAllowError(t, appCli, []string{"verscrape", "doctor"}, tmp)
	if err == nil {
		t.Fatal("expected error for pattern without capturing group")
	}
	if !strings.Contains(err.Error(), "capturing group") {
		t.Errorf("unexpected error: %v", err)
	}
}
