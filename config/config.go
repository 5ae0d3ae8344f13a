package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spiffcs/punchcard/internal/biduration"
	"github.com/spiffcs/punchcard/internal/log"
	"gopkg.in/yaml.v3"
)

// Defaults applied when neither config file sets a value.
const (
	DefaultOutput     = "text"
	DefaultTimeLayout = "2006-01-02 15:04"
	DefaultColor      = "auto"
	DefaultWorkers    = 4
)

// ConfigDirEnv overrides the global config directory.
const ConfigDirEnv = "PUNCHCARD_CONFIG_DIR"

// Config represents the application configuration
type Config struct {
	Output     string `yaml:"output,omitempty" json:"output,omitempty"`
	TimeLayout string `yaml:"time_layout,omitempty" json:"time_layout,omitempty"`
	Color      string `yaml:"color,omitempty" json:"color,omitempty"`
	Workers    int    `yaml:"workers,omitempty" json:"workers,omitempty"`

	// DefaultOffset is applied by clock when no offset is given and no
	// prompt can be shown.
	DefaultOffset *biduration.BiDuration `yaml:"default_offset,omitempty" json:"default_offset,omitempty"`
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".punchcard"
	}
	return filepath.Join(configDir, "punchcard")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".punchcard.yaml"
}

// Load loads the configuration from disk.
// It first loads the global config, then merges any local .punchcard.yaml
// on top (local values take precedence).
func Load() (*Config, error) {
	return LoadFrom(ConfigPath(), LocalConfigPath())
}

// LoadFrom loads and merges the given global and local config files.
// Missing files are skipped.
func LoadFrom(globalPath, localPath string) (*Config, error) {
	cfg := &Config{}

	global, err := readConfig(globalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load global config: %w", err)
	}
	if global != nil {
		log.Info("loaded config", "path", globalPath)
		cfg = global
	}

	local, err := readConfig(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load local config: %w", err)
	}
	if local != nil {
		log.Info("loaded config", "path", localPath)
		cfg = mergeConfig(cfg, local)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfig merges local config on top of global config.
// Local values take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	result := *global

	if local.Output != "" {
		result.Output = local.Output
	}
	if local.TimeLayout != "" {
		result.TimeLayout = local.TimeLayout
	}
	if local.Color != "" {
		result.Color = local.Color
	}
	if local.Workers != 0 {
		result.Workers = local.Workers
	}
	if local.DefaultOffset != nil {
		result.DefaultOffset = local.DefaultOffset
	}

	return &result
}

func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.TimeLayout == "" {
		c.TimeLayout = DefaultTimeLayout
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
}

// Validate checks enumerated fields. Empty fields are unset and valid.
func (c *Config) Validate() error {
	switch c.Output {
	case "", "text", "table", "json", "yaml", "markdown":
	default:
		return fmt.Errorf("invalid output: %s (must be text, table, json, yaml or markdown)", c.Output)
	}
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color: %s (must be auto, always or never)", c.Color)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers: %d (must be at least 1)", c.Workers)
	}
	return nil
}

// LoadGlobal reads only the global config file, without defaults, so it
// can be edited and saved back.
func LoadGlobal() (*Config, error) {
	cfg, err := readConfig(ConfigPath())
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &Config{}
	}
	return cfg, nil
}

// Set assigns a config value by key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "output":
		c.Output = value
	case "time_layout":
		c.TimeLayout = value
	case "color":
		c.Color = value
	case "workers":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid workers: %s (must be at least 1)", value)
		}
		c.Workers = n
	case "default_offset":
		if value == "" {
			c.DefaultOffset = nil
			break
		}
		b, err := biduration.Parse(value)
		if err != nil {
			return fmt.Errorf("invalid default_offset: %w", err)
		}
		c.DefaultOffset = &b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return c.Validate()
}

// Keys lists the keys accepted by Set.
func Keys() []string {
	return []string{"output", "time_layout", "color", "workers", "default_offset"}
}

// Save saves the configuration to the global config file
func (c *Config) Save() error {
	return c.SaveAs(ConfigPath())
}

// SaveAs writes the configuration as YAML to path.
func (c *Config) SaveAs(path string) error {
	data, err := c.ToYAML()
	if err != nil {
		return err
	}
	return SaveTo(path, data)
}

// DefaultConfig returns a fully populated config with all default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// ToYAML returns the config as a YAML string
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ConfigPathInfo contains information about config file paths
type ConfigPathInfo struct {
	GlobalPath   string
	GlobalExists bool
	LocalPath    string
	LocalExists  bool
}

// GetConfigPaths returns path info for both global and local configs
func GetConfigPaths() ConfigPathInfo {
	globalPath := ConfigPath()
	localPath := LocalConfigPath()

	// Get absolute path for local config
	absLocalPath, err := filepath.Abs(localPath)
	if err != nil {
		absLocalPath = localPath
	}

	_, globalErr := os.Stat(globalPath)
	_, localErr := os.Stat(localPath)

	return ConfigPathInfo{
		GlobalPath:   globalPath,
		GlobalExists: globalErr == nil,
		LocalPath:    absLocalPath,
		LocalExists:  localErr == nil,
	}
}

// MinimalConfig returns a minimal config template with comments
func MinimalConfig() string {
	return `# punchcard configuration file
# See: punchcard config defaults  (for all available options)

# Output format: text, table, json, yaml or markdown
output: text

# Go time layout for printed timestamps
# time_layout: "2006-01-02 15:04"

# Color mode: auto, always or never
# color: auto

# Offset applied by 'punchcard clock' when none is given
# default_offset: 5m ago
`
}

// SaveTo writes content to a specific path, creating directories as needed
func SaveTo(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
