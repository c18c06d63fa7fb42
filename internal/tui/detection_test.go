package tui

import (
	"os"
	"testing"
)

func TestIsInteractive_CIEnvironment(t *testing.T) {
	t.Setenv("CI", "true")
	if IsInteractive() {
		t.Error("IsInteractive() should be false when CI is set")
	}
}

func TestIsTTY_PipedStdout(t *testing.T) {
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	t.Cleanup(func() {
		os.Stdout = orig
		w.Close()
		r.Close()
	})

	if IsTTY() {
		t.Error("IsTTY() should be false for a pipe")
	}
	if IsInteractive() {
		t.Error("IsInteractive() should be false for a pipe")
	}
}
