package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/indaco/verscrape/internal/core"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = ".verscrape.yaml"

// ConfigFilePerm defines secure file permissions for config files
// (owner read/write only).
const ConfigFilePerm = core.PermOwnerRW

// ToolConfig describes one tool whose version is scraped.
type ToolConfig struct {
	// Name is the display name of the tool (e.g. "Samtools").
	Name string `yaml:"name"`

	// File is the path of the tool-output snapshot, relative to the scrape
	// directory (e.g. "v_samtools.txt").
	File string `yaml:"file"`

	// Format selects the extraction strategy: regex, raw, json, yaml, toml.
	// Empty means regex when Pattern is set, raw otherwise.
	Format string `yaml:"format,omitempty"`

	// Pattern is the regex with one capturing group for the version
	// (regex format only).
	Pattern string `yaml:"pattern,omitempty"`

	// Field is the dot-notation path to the version value
	// (json/yaml/toml formats only).
	Field string `yaml:"field,omitempty"`

	// Min is the minimum acceptable version. Doctor flags scraped versions
	// below it.
	Min string `yaml:"min,omitempty"`
}

// ReportConfig controls the emitted report section and artifacts.
type ReportConfig struct {
	ID          string `yaml:"id,omitempty"`
	SectionName string `yaml:"section_name,omitempty"`
	SectionHref string `yaml:"section_href,omitempty"`
	Description string `yaml:"description,omitempty"`

	// TSV is the tab-separated output filename. The default keeps the
	// historical "software_versions.csv" name for MultiQC compatibility,
	// tab-separated despite the extension.
	TSV string `yaml:"tsv,omitempty"`

	// MQC is the optional MultiQC section output filename.
	MQC string `yaml:"mqc,omitempty"`

	// HTMLClass is the CSS class of the emitted definition list.
	HTMLClass string `yaml:"html_class,omitempty"`
}

// Config is the main configuration structure for verscrape.
type Config struct {
	Tools  []ToolConfig `yaml:"tools"`
	Report ReportConfig `yaml:"report,omitempty"`

	// Theme selects the prompt theme. Empty or unknown names fall back to
	// the default verscrape theme.
	Theme string `yaml:"theme,omitempty"`
}

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// FileWriter abstracts file writing operations for testability.
type FileWriter interface {
	WriteFile(file *os.File, data []byte) (int, error)
}

// ConfigSaver handles configuration saving with injected dependencies.
type ConfigSaver struct {
	marshaler  core.Marshaler
	fileOpener FileOpener
	fileWriter FileWriter
}

type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

type osFileWriter struct{}

func (w *osFileWriter) WriteFile(file *os.File, data []byte) (int, error) {
	return file.Write(data)
}

type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewConfigSaver(marshaler core.Marshaler, opener FileOpener, writer FileWriter) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if opener == nil {
		opener = &osFileOpener{}
	}
	if writer == nil {
		writer = &osFileWriter{}
	}
	return &ConfigSaver{
		marshaler:  marshaler,
		fileOpener: opener,
		fileWriter: writer,
	}
}

// Save saves the configuration to the default config file.
func (s *ConfigSaver) Save(cfg *Config) error {
	return s.SaveTo(cfg, DefaultConfigFile)
}

// SaveTo saves the configuration to the specified file path.
func (s *ConfigSaver) SaveTo(cfg *Config, configFile string) error {
	file, err := s.fileOpener.OpenFile(configFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open config file %q: %w", configFile, err)
	}
	defer file.Close()

	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	if _, err := s.fileWriter.WriteFile(file, data); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}

var defaultConfigSaver = NewConfigSaver(nil, nil, nil)

// LoadConfigFn and SaveConfigFn are function variables so tests can stub
// config access.
var (
	LoadConfigFn = loadConfig
	SaveConfigFn = func(cfg *Config) error {
		return defaultConfigSaver.Save(cfg)
	}
)

// loadConfig resolves the configuration with the following priority:
// VERSCRAPE_CONFIG env var, .verscrape.yaml in the working directory,
// then the built-in default tool table.
func loadConfig() (*Config, error) {
	configFile := DefaultConfigFile
	if envPath := os.Getenv("VERSCRAPE_CONFIG"); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid VERSCRAPE_CONFIG: path traversal not allowed, use absolute path instead")
		}
		configFile = cleanPath
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) && configFile == DefaultConfigFile {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", configFile, err)
	}

	cfg.Report = cfg.Report.withDefaults()
	return &cfg, nil
}

// withDefaults fills empty report settings with the historical defaults.
func (r ReportConfig) withDefaults() ReportConfig {
	def := Default().Report
	if r.ID == "" {
		r.ID = def.ID
	}
	if r.SectionName == "" {
		r.SectionName = def.SectionName
	}
	if r.SectionHref == "" {
		r.SectionHref = def.SectionHref
	}
	if r.Description == "" {
		r.Description = def.Description
	}
	if r.TSV == "" {
		r.TSV = def.TSV
	}
	if r.HTMLClass == "" {
		r.HTMLClass = def.HTMLClass
	}
	return r
}
