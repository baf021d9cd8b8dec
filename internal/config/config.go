package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"foldersort/internal/errors"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It names the base directory, the extensions to organize and the
// logging settings.
type Config struct {
	Directories Directories `yaml:"directories"`
	Organize    Organize    `yaml:"organize"`
	Settings    Settings    `yaml:"settings"`
}

// Directories holds the working locations.
type Directories struct {
	Base string `yaml:"base"` // Directory whose files get organized
}

// Organize lists what to organize.
type Organize struct {
	Extensions []string          `yaml:"extensions"` // Extensions organized when none are given on the command line
	Presets    map[string]string `yaml:"presets"`    // Extra or overriding label -> extension presets
}

// Settings holds behavioural switches.
type Settings struct {
	DryRun   bool   `yaml:"dry_run"`   // If true, report moves without performing them
	LogLevel string `yaml:"log_level"` // debug, info, warn or error
	LogJSON  bool   `yaml:"log_json"`  // Emit JSON log lines
	LogFile  string `yaml:"log_file"`  // Also append log lines to this file
}

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// DefaultPath returns ~/.config/foldersort/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "foldersort", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if tempCfg.Directories.Base != "" {
		cfg.Directories.Base = tempCfg.Directories.Base
	}
	if len(tempCfg.Organize.Extensions) > 0 {
		cfg.Organize.Extensions = tempCfg.Organize.Extensions
	}
	for label, ext := range tempCfg.Organize.Presets {
		cfg.Organize.Presets[label] = ext
	}
	cfg.Settings.DryRun = tempCfg.Settings.DryRun
	if tempCfg.Settings.LogLevel != "" {
		cfg.Settings.LogLevel = tempCfg.Settings.LogLevel
	}
	cfg.Settings.LogJSON = tempCfg.Settings.LogJSON
	cfg.Settings.LogFile = tempCfg.Settings.LogFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Directories.Base = "."
	cfg.Organize.Extensions = []string{}
	cfg.Organize.Presets = map[string]string{}
	cfg.Settings.DryRun = false
	cfg.Settings.LogLevel = "info"
	return cfg
}

// New returns a configuration holding the defaults.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if strings.TrimSpace(c.Directories.Base) == "" {
		return errors.NewConfigError("base directory is required", "directories.base", errors.InvalidConfig, nil)
	}

	for i, ext := range c.Organize.Extensions {
		if err := checkExtension(ext); err != nil {
			return errors.NewConfigError(fmt.Sprintf("extension %d: %s", i, err), "organize.extensions", errors.InvalidConfig, nil)
		}
	}

	for label, ext := range c.Organize.Presets {
		if strings.TrimSpace(label) == "" {
			return errors.NewConfigError("preset label cannot be empty", "organize.presets", errors.InvalidConfig, nil)
		}
		// An empty extension removes a default preset.
		if ext == "" {
			continue
		}
		if err := checkExtension(ext); err != nil {
			return errors.NewConfigError(fmt.Sprintf("preset %s: %s", label, err), "organize.presets", errors.InvalidConfig, nil)
		}
	}

	if c.Settings.LogLevel != "" && !validLogLevels[strings.ToLower(c.Settings.LogLevel)] {
		return errors.NewConfigError("invalid log level", "settings.log_level", errors.InvalidConfig, fmt.Errorf("unknown level %q", c.Settings.LogLevel))
	}

	return nil
}

func checkExtension(ext string) error {
	switch {
	case ext == "":
		return fmt.Errorf("extension is empty")
	case strings.Trim(ext, ".") == "":
		return fmt.Errorf("extension %q has no name", ext)
	case strings.ContainsAny(ext, `/\`):
		return fmt.Errorf("extension %q contains a path separator", ext)
	}
	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig(base string) *Config {
	cfg := defaultConfig()
	cfg.Directories.Base = base
	cfg.Organize.Extensions = []string{".txt", ".pdf"}
	return cfg
}
