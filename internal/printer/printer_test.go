package printer

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// TestRenderFunctions verifies that all render functions return the input
// text, styled or not.
func TestRenderFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string) string
		input    string
	}{
		{"Faint", Faint, "test text"},
		{"Bold", Bold, "test text"},
		{"Success", Success, "test text"},
		{"Error", Error, "test text"},
		{"Warning", Warning, "test text"},
		{"Info", Info, "test text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.function(tt.input)
			if result == "" {
				t.Errorf("%s() returned empty string", tt.name)
			}
			// The styled output may or may not contain ANSI codes depending
			// on terminal detection, but it must contain the original text.
			if !strings.Contains(result, tt.input) {
				t.Errorf("%s() result does not contain input text. got %q, want to contain %q", tt.name, result, tt.input)
			}
		})
	}
}

// TestSetNoColor verifies that disabling color yields the bare text.
func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })

	for name, fn := range map[string]func(string) string{
		"Faint":   Faint,
		"Bold":    Bold,
		"Success": Success,
		"Error":   Error,
		"Warning": Warning,
		"Info":    Info,
	} {
		if got := fn("plain"); got != "plain" {
			t.Errorf("%s(plain) with color disabled = %q, want plain", name, got)
		}
	}
}

// TestPrintFunctions verifies that print functions emit the text with a
// trailing newline.
func TestPrintFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string)
		stderr   bool
	}{
		{"PrintFaint", PrintFaint, false},
		{"PrintBold", PrintBold, false},
		{"PrintSuccess", PrintSuccess, false},
		{"PrintError", PrintError, true},
		{"PrintWarning", PrintWarning, false},
		{"PrintInfo", PrintInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &os.Stdout
			if tt.stderr {
				target = &os.Stderr
			}

			old := *target
			r, w, _ := os.Pipe()
			*target = w

			tt.function("test text")

			w.Close()
			*target = old

			var buf bytes.Buffer
			_, _ = io.Copy(&buf, r)
			output := buf.String()

			if !strings.Contains(output, "test text") {
				t.Errorf("%s() output does not contain input text: %q", tt.name, output)
			}
			if !strings.HasSuffix(output, "\n") {
				t.Errorf("%s() output does not end with newline", tt.name)
			}
		})
	}
}

func TestFprintln(t *testing.T) {
	var buf bytes.Buffer
	Fprintln(&buf, "hello")
	if buf.String() != "hello\n" {
		t.Errorf("Fprintln wrote %q", buf.String())
	}
}
