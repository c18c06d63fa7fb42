package semver

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{name: "full version", input: "1.2.3", want: Version{Major: 1, Minor: 2, Patch: 3}},
		{name: "v prefix", input: "v1.2.3", want: Version{Major: 1, Minor: 2, Patch: 3}},
		{name: "two components", input: "1.9", want: Version{Major: 1, Minor: 9}},
		{name: "major only", input: "21", want: Version{Major: 21}},
		{name: "edge suffix", input: "21.04.0-edge", want: Version{Major: 21, Minor: 4, Patch: 0, Suffix: "edge"}},
		{name: "pre-release", input: "1.0.0-rc.1", want: Version{Major: 1, Patch: 0, Suffix: "rc.1"}},
		{name: "surrounding whitespace", input: " 1.9 \n", want: Version{Major: 1, Minor: 9}},
		{name: "empty", input: "", wantErr: true},
		{name: "not a version", input: "samtools", wantErr: true},
		{name: "too long", input: strings.Repeat("1", 200), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %+v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidVersion) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidVersion", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1.9", "v1.9"},
		{"1.9\n", "v1.9"},
		{"v1.9", "v1.9"},
		{"V2.0", "V2.0"},
		{"21.04.0-edge", "v21.04.0-edge"},
		{"", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersion_String(t *testing.T) {
	v := Version{Major: 1, Minor: 2, Patch: 3, Suffix: "rc.1"}
	if got := v.String(); got != "1.2.3-rc.1" {
		t.Errorf("String() = %q, want %q", got, "1.2.3-rc.1")
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "equal", a: "1.2.3", b: "1.2.3", want: 0},
		{name: "major wins", a: "2.0.0", b: "1.9.9", want: 1},
		{name: "minor wins", a: "1.3.0", b: "1.2.9", want: 1},
		{name: "patch wins", a: "1.2.2", b: "1.2.3", want: -1},
		{name: "suffix before release", a: "1.0.0-rc.1", b: "1.0.0", want: -1},
		{name: "suffix lexical", a: "1.0.0-alpha", b: "1.0.0-beta", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.a)
			if err != nil {
				t.Fatal(err)
			}
			b, err := Parse(tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
