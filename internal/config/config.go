// Package config provides configuration management for taskgen.
// It supports YAML or TOML configuration files, environment variables, and
// sensible defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/klauern/taskgen/internal/util"
)

// Config represents the complete taskgen configuration.
type Config struct {
	// Source configures where task files live and how they are named
	Source SourceConfig `yaml:"source" toml:"source"`

	// Stubs configures where project stubs are looked up
	Stubs StubsConfig `yaml:"stubs" toml:"stubs"`

	// Output configures display preferences
	Output OutputConfig `yaml:"output" toml:"output"`
}

// SourceConfig holds task file settings.
type SourceConfig struct {
	// Path is the default destination directory for generated task files
	Path string `yaml:"path" toml:"path"`
	// Suffix is appended to every task file name
	Suffix string `yaml:"suffix" toml:"suffix"`
}

// StubsConfig holds stub lookup settings.
type StubsConfig struct {
	// ProjectRoot is the directory containing src/Stubs
	ProjectRoot string `yaml:"project_root" toml:"project_root"`
}

// OutputConfig holds display preferences.
type OutputConfig struct {
	// Color controls color output (auto, always, never)
	Color string `yaml:"color" toml:"color"`
	// Verbose enables verbose output
	Verbose bool `yaml:"verbose" toml:"verbose"`
}

// Color modes accepted by OutputConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Path:   "tasks",
			Suffix: "Tasks.php",
		},
		Stubs: StubsConfig{
			ProjectRoot: ".",
		},
		Output: OutputConfig{
			Color: ColorAuto,
		},
	}
}

// configFileName is the name of the config file.
const configFileName = "config.yaml"

// FilePath returns the path to the config file.
func FilePath() string {
	return filepath.Join(util.TaskgenConfigPath(), configFileName)
}

// Load loads the configuration from the default file, merging with defaults.
// If the config file doesn't exist, returns default configuration.
func Load() (*Config, error) {
	cfg, err := LoadFromPath(FilePath())
	if os.IsNotExist(err) {
		cfg = Default()
		cfg.applyEnvironment()
		return cfg, cfg.Validate()
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path. Files ending in
// .toml are decoded as TOML, everything else as YAML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	// #nosec G304 - path is provided by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.applyEnvironment()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to the config file.
func (c *Config) Save() error {
	return c.SaveToPath(FilePath())
}

// SaveToPath writes the configuration as YAML to a specific path.
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// #nosec G306 - config file should be readable by user
	return os.WriteFile(path, data, 0o644)
}

// Validate checks values that would otherwise fail late in a run.
func (c *Config) Validate() error {
	if c.Source.Suffix == "" {
		return fmt.Errorf("source.suffix must not be empty")
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be one of %s, %s, %s: got %q",
			ColorAuto, ColorAlways, ColorNever, c.Output.Color)
	}
	return nil
}

// applyEnvironment applies environment variable overrides.
// Environment variables follow the pattern TASKGEN_<SECTION>_<KEY>.
func (c *Config) applyEnvironment() {
	if v := os.Getenv("TASKGEN_SOURCE_PATH"); v != "" {
		c.Source.Path = v
	}
	if v := os.Getenv("TASKGEN_SOURCE_SUFFIX"); v != "" {
		c.Source.Suffix = v
	}
	if v := os.Getenv("TASKGEN_STUBS_PROJECT_ROOT"); v != "" {
		c.Stubs.ProjectRoot = v
	}
	if v := os.Getenv("TASKGEN_OUTPUT_COLOR"); v != "" {
		c.Output.Color = strings.ToLower(v)
	}
	if v := os.Getenv("TASKGEN_OUTPUT_VERBOSE"); v != "" {
		c.Output.Verbose = parseBool(v)
	}
}

// parseBool parses a boolean from common string representations.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// SourceDir returns the default destination directory, expanded against baseDir.
func (c *Config) SourceDir(baseDir string) string {
	return util.ExpandPath(c.Source.Path, baseDir)
}

// ProjectRoot returns the stub project root, expanded against baseDir.
func (c *Config) ProjectRoot(baseDir string) string {
	return util.ExpandPath(c.Stubs.ProjectRoot, baseDir)
}

// Exists returns true if a config file exists.
func Exists() bool {
	_, err := os.Stat(FilePath())
	return err == nil
}
