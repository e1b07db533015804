// Package config loads tasknest configuration from a YAML file.
//
// Resolution order: an explicit --config path, otherwise
// XDG_CONFIG_HOME/tasknest/config.yaml (falling back to
// $HOME/.config/tasknest). A missing file is not an error - defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tasknest/internal/task"
)

const (
	// AppName is the application directory name under the config root.
	AppName = "tasknest"

	// ConfigFile is the configuration filename.
	ConfigFile = "config.yaml"
)

// Storage backend names accepted in the config file.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds the resolved application configuration.
type Config struct {
	// Backend selects the durable slot implementation: "file" or "sqlite".
	Backend string `yaml:"backend"`

	// DataPath overrides where the slot lives. Empty means the default
	// location next to the config file (tasks.json or tasks.db).
	DataPath string `yaml:"data_path"`

	// DefaultPriority is the priority used when `add` is run without
	// an explicit --priority flag.
	DefaultPriority string `yaml:"default_priority"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend:         BackendFile,
		DefaultPriority: string(task.PriorityMedium),
	}
}

// Load reads configuration from path, or from the default location when
// path is empty. A missing file yields Default(). The loaded config is
// validated before being returned.
func Load(path string) (Config, error) {
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), ConfigFile)
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for values outside the accepted sets.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("invalid backend %q: must be %q or %q", c.Backend, BackendFile, BackendSQLite)
	}

	if _, err := task.ParsePriority(c.DefaultPriority); err != nil {
		return fmt.Errorf("default_priority: %w", err)
	}
	return nil
}

// ResolveDataPath returns the slot location, applying the backend-specific
// default filename when DataPath is unset.
func (c Config) ResolveDataPath() string {
	if c.DataPath != "" {
		return c.DataPath
	}
	name := "tasks.json"
	if c.Backend == BackendSQLite {
		name = "tasks.db"
	}
	return filepath.Join(DefaultConfigDir(), name)
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}
