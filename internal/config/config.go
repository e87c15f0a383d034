package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/thoscut/iwscan/internal/cell"
	"github.com/thoscut/iwscan/internal/render"
)

// Config holds the defaults the command line starts from. Every value can be
// overridden by a flag; the file itself is optional.
type Config struct {
	Scan    ScanConfig    `toml:"scan"`
	Output  OutputConfig  `toml:"output"`
	Logging LoggingConfig `toml:"logging"`
}

type ScanConfig struct {
	Command string `toml:"command"`
}

type OutputConfig struct {
	Format     string `toml:"format"`
	Show       string `toml:"show"`
	SortBy     string `toml:"sort_by"`
	OmitLabels bool   `toml:"omit_labels"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Keys lists the dotted keys accepted by Get and Set.
var Keys = []string{
	"scan.command",
	"output.format",
	"output.show",
	"output.sort_by",
	"output.omit_labels",
	"logging.level",
	"logging.format",
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "iwscan", "config.toml")
}

// Load reads the configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads the configuration from a specific file. A missing file
// yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(expandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Command: "iwlist",
		},
		Output: OutputConfig{
			Format: string(render.List),
			Show:   cell.Keys(render.DefaultShow),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Validate checks values that flags would otherwise reject late.
func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, err := cell.ParseFields([]string{c.Output.Show}); err != nil {
		return fmt.Errorf("output.show: %w", err)
	}
	if _, err := cell.ParseFields([]string{c.Output.SortBy}); err != nil {
		return fmt.Errorf("output.sort_by: %w", err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	return nil
}

// Save writes the configuration to the default location.
func (c *Config) Save() error {
	return c.SaveTo(DefaultPath())
}

// SaveTo writes the configuration to a specific file, creating its
// directory if needed.
func (c *Config) SaveTo(path string) error {
	path = expandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Set updates a configuration value by dotted key path.
// The config is left unchanged when the new value does not validate.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "scan.command":
		next.Scan.Command = value
	case "output.format":
		next.Output.Format = value
	case "output.show":
		next.Output.Show = value
	case "output.sort_by":
		next.Output.SortBy = value
	case "output.omit_labels":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("output.omit_labels: %w", err)
		}
		next.Output.OmitLabels = b
	case "logging.level":
		next.Logging.Level = value
	case "logging.format":
		next.Logging.Format = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Get returns a configuration value by dotted key path.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "scan.command":
		return c.Scan.Command, nil
	case "output.format":
		return c.Output.Format, nil
	case "output.show":
		return c.Output.Show, nil
	case "output.sort_by":
		return c.Output.SortBy, nil
	case "output.omit_labels":
		return strconv.FormatBool(c.Output.OmitLabels), nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
