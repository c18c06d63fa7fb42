package config

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	valid := ToolConfig{Name: "Samtools", File: "v_samtools.txt", Pattern: `samtools (\S+)`}

	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name: "default table",
			cfg:  Default(),
		},
		{
			name: "valid single tool",
			cfg:  &Config{Tools: []ToolConfig{valid}},
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
		{
			name:    "no tools",
			cfg:     &Config{},
			wantErr: true,
		},
		{
			name: "empty name",
			cfg: &Config{Tools: []ToolConfig{
				{File: "v_x.txt", Pattern: `(\S+)`},
			}},
			wantErr: true,
		},
		{
			name: "empty file",
			cfg: &Config{Tools: []ToolConfig{
				{Name: "X", Pattern: `(\S+)`},
			}},
			wantErr: true,
		},
		{
			name: "duplicate names",
			cfg: &Config{Tools: []ToolConfig{
				valid,
				{Name: "Samtools", File: "other.txt", Pattern: `(\S+)`},
			}},
			wantErr: true,
		},
		{
			name: "pattern does not compile",
			cfg: &Config{Tools: []ToolConfig{
				{Name: "X", File: "v_x.txt", Pattern: `([`},
			}},
			wantErr: true,
		},
		{
			name: "pattern without capturing group",
			cfg: &Config{Tools: []ToolConfig{
				{Name: "X", File: "v_x.txt", Pattern: `samtools \S+`},
			}},
			wantErr: true,
		},
		{
			name: "regex format without pattern",
			cfg: &Config{Tools: []ToolConfig{
				{Name: "X", File: "v_x.txt", Format: "regex"},
			}},
			wantErr: true,
		},
		{
			name: "unknown format",
			cfg: &Config{Tools: []ToolConfig{
				{Name: "X", File: "v_x.txt", Format: "xml", Field: "version"},
			}},
			wantErr: true,
		},
		{
			name: "structured format without field",
			cfg: &Config{Tools: []ToolConfig{
				{Name: "X", File: "package.json", Format: "json"},
			}},
			wantErr: true,
		},
		{
			name: "structured format with field",
			cfg: &Config{Tools: []ToolConfig{
				{Name: "X", File: "package.json", Format: "json", Field: "version"},
			}},
		},
		{
			name: "raw format needs neither",
			cfg: &Config{Tools: []ToolConfig{
				{Name: "X", File: "v_x.txt", Format: "raw"},
			}},
		},
		{
			name: "valid min version",
			cfg: &Config{Tools: []ToolConfig{
				{Name: "X", File: "v_x.txt", Pattern: `(\S+)`, Min: "1.9"},
			}},
		},
		{
			name: "invalid min version",
			cfg: &Config{Tools: []ToolConfig{
				{Name: "X", File: "v_x.txt", Pattern: `(\S+)`, Min: "not-a-version"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
