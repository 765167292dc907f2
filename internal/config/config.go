// Package config loads matwork settings from a YAML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir  string        `yaml:"data_dir"`
	Database string        `yaml:"database"`
	Log      LogConfig     `yaml:"log"`
	Player   PlayerConfig  `yaml:"player"`
	Presets  PresetsConfig `yaml:"presets"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type PlayerConfig struct {
	TickInterval Duration `yaml:"tick_interval"`
	Autostart    bool     `yaml:"autostart"`
}

type PresetsConfig struct {
	IncludeTest bool `yaml:"include_test"`
}

// Duration lets YAML carry values such as "1s" or "500ms".
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(node.Value))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in settings rooted at ~/.matwork.
func Default() *Config {
	dataDir := ".matwork"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".matwork")
	}
	return &Config{
		DataDir:  dataDir,
		Database: "matwork.db",
		Log:      LogConfig{Level: "info", File: "matwork.log"},
		Player:   PlayerConfig{TickInterval: Duration(time.Second), Autostart: true},
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(Default().DataDir, "config.yaml")
}

// Load reads config from a YAML file over the defaults, then applies
// environment variable overrides:
//
//	MATWORK_DATA_DIR, MATWORK_DATABASE, MATWORK_LOG_LEVEL,
//	MATWORK_TICK_INTERVAL, MATWORK_ENV=development, MATWORK_AUTOSTART
//
// A missing file is not an error. Unparseable duration or boolean overrides are.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("MATWORK_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("MATWORK_DATABASE"); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv("MATWORK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("MATWORK_TICK_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("MATWORK_TICK_INTERVAL: %w", err)
		}
		cfg.Player.TickInterval = Duration(d)
	}
	if v := os.Getenv("MATWORK_ENV"); v != "" {
		cfg.Presets.IncludeTest = strings.EqualFold(v, "development")
	}
	if v := os.Getenv("MATWORK_AUTOSTART"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MATWORK_AUTOSTART: %w", err)
		}
		cfg.Player.Autostart = b
	}
	return nil
}

func (c *Config) validate() error {
	var problems []string
	if strings.TrimSpace(c.DataDir) == "" {
		problems = append(problems, "data_dir is required")
	}
	if strings.TrimSpace(c.Database) == "" {
		problems = append(problems, "database is required")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q must be debug, info, warn or error", c.Log.Level))
	}
	if c.Player.TickInterval.Std() <= 0 {
		problems = append(problems, "player.tick_interval must be positive")
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// DatabasePath resolves the database file, relative names living in DataDir.
func (c *Config) DatabasePath() string {
	return c.resolve(c.Database)
}

// LogPath resolves the log file. An empty name disables file logging.
func (c *Config) LogPath() string {
	if c.Log.File == "" {
		return ""
	}
	return c.resolve(c.Log.File)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
