// Package config handles limon configuration: an optional YAML file, the
// environment and command-line overrides.
// Supports environment variable expansion in string values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rashpile/limon/internal/state"
)

// Output formats.
const (
	FormatPlain = "plain"
	FormatPango = "pango"
	FormatTerm  = "term"
)

// Config holds all application configuration.
type Config struct {
	Format       string         `yaml:"format"`
	IconFont     string         `yaml:"icon_font"`
	TextFont     string         `yaml:"text_font"`
	IconFontSize int            `yaml:"icon_font_size"`
	TextFontSize int            `yaml:"text_font_size"`
	RuntimeDir   string         `yaml:"runtime_dir"`
	State        StateConfig    `yaml:"state"`
	Paths        PathsConfig    `yaml:"paths"`
	Defaults     DefaultsConfig `yaml:"defaults"`
	Items        []ItemConfig   `yaml:"items"`
}

// StateConfig selects where rate counters are kept between runs.
type StateConfig struct {
	Backend state.Backend `yaml:"backend"`
	Path    string        `yaml:"path"` // SQLite database, relative to runtime_dir
}

// PathsConfig holds the kernel filesystem mounts readers use.
type PathsConfig struct {
	Proc string `yaml:"proc"`
	Sys  string `yaml:"sys"`
}

// DefaultsConfig holds limits for command items.
type DefaultsConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	MaxOutput int           `yaml:"max_output"`
	Workdir   string        `yaml:"workdir"` // empty: inherit limon's working directory
}

// ItemConfig is one line of output.
type ItemConfig struct {
	Metric    string   `yaml:"metric"`
	Args      []string `yaml:"args"`
	Icon      string   `yaml:"icon"`       // overrides the icon of static metrics
	PreSpaces int      `yaml:"pre_spaces"` // extra padding left of the icon
}

// DefaultItems is the pipeline used when neither the file nor the command
// line names any items.
func DefaultItems() []ItemConfig {
	return []ItemConfig{
		{Metric: "loadavg"},
		{Metric: "cpu"},
		{Metric: "mem"},
		{Metric: "zram"},
		{Metric: "radeon_vram"},
		{Metric: "traffic", Args: []string{"wlan0"}},
		{Metric: "network_speed", Args: []string{"wlan0"}},
		{Metric: "radeon_temperature"},
		{Metric: "amd_k10_temperature"},
		{Metric: "ata_hddtemp", Args: []string{"/dev/sda"}},
	}
}

// Default returns configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults(os.Getenv)
	return cfg
}

// Load reads configuration from the YAML file at path.
// Supports ${ENV_VAR} expansion in string values. A missing file is an error;
// callers that treat the file as optional check for os.ErrNotExist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOptional is Load, falling back to Default when path does not exist.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// setDefaults applies default values for unset fields. The runtime
// directory is resolved here, once per process.
func (c *Config) setDefaults(getenv func(string) string) {
	if c.Format == "" {
		c.Format = FormatPango
	}

	if c.IconFont == "" {
		c.IconFont = "FontAwesome"
	}

	if c.TextFont == "" {
		c.TextFont = "VCR OSD Mono"
	}

	if c.IconFontSize == 0 {
		c.IconFontSize = 12
	}

	if c.TextFontSize == 0 {
		c.TextFontSize = 11
	}

	if c.RuntimeDir == "" {
		c.RuntimeDir = state.ResolveDir(getenv)
	}

	if c.State.Backend == "" {
		c.State.Backend = state.BackendFile
	}

	if c.State.Path == "" {
		c.State.Path = ".limon-state.db"
	}

	if c.Paths.Proc == "" {
		c.Paths.Proc = "/proc"
	}

	if c.Paths.Sys == "" {
		c.Paths.Sys = "/sys"
	}

	if c.Defaults.Timeout == 0 {
		c.Defaults.Timeout = 2 * time.Second
	}

	if c.Defaults.MaxOutput == 0 {
		c.Defaults.MaxOutput = 200
	}

	if len(c.Items) == 0 {
		c.Items = DefaultItems()
	}
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatPlain, FormatPango, FormatTerm:
	default:
		return fmt.Errorf("format must be one of %s, %s, %s; got %q", FormatPlain, FormatPango, FormatTerm, c.Format)
	}

	switch c.State.Backend {
	case state.BackendFile, state.BackendSQLite:
	default:
		return fmt.Errorf("state.backend must be %q or %q; got %q", state.BackendFile, state.BackendSQLite, c.State.Backend)
	}

	for i, item := range c.Items {
		if item.Metric == "" {
			return fmt.Errorf("items[%d]: metric is required", i)
		}
		if item.PreSpaces < 0 {
			return fmt.Errorf("items[%d]: pre_spaces must not be negative", i)
		}
	}

	return nil
}

// StatePath returns the SQLite state database path.
func (c *Config) StatePath() string {
	return c.ExpandPath(c.RuntimeDir, c.State.Path)
}

// ExpandPath resolves path relative to dir unless it is absolute.
func (c *Config) ExpandPath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// ParseItem parses a command-line item of the form metric[:arg[,arg...]].
// Everything after "command:" is one shell snippet and is not split.
func ParseItem(s string) (ItemConfig, error) {
	name, rest, hasArgs := strings.Cut(s, ":")
	if name == "" {
		return ItemConfig{}, fmt.Errorf("item %q: metric is required", s)
	}

	item := ItemConfig{Metric: name}
	switch {
	case !hasArgs:
	case name == "command":
		item.Args = []string{rest}
	default:
		item.Args = strings.Split(rest, ",")
	}
	return item, nil
}

// envVarPattern matches ${VAR} or $VAR patterns.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandEnvVars replaces ${VAR} and $VAR with environment variable values.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var name string
		if match[1] == '{' {
			name = match[2 : len(match)-1]
		} else {
			name = match[1:]
		}
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}
