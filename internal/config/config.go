// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hy4ri/campus-tui/internal/todo"
)

// AppName names the config and data directories.
const AppName = "campus-tui"

// Config represents the application configuration.
type Config struct {
	Auth          AuthConfig          `yaml:"auth"`
	UI            UIConfig            `yaml:"ui"`
	Data          DataConfig          `yaml:"data"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Log           LogConfig           `yaml:"log"`
}

// AuthConfig holds the optional bearer token for a remote backend.
type AuthConfig struct {
	Token string `yaml:"token,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode             bool   `yaml:"vim_mode"`
	DefaultFilter       string `yaml:"default_filter,omitempty"`
	DefaultSort         string `yaml:"default_sort,omitempty"`
	DateFormat          string `yaml:"date_format,omitempty"`
	CalendarDefaultView string `yaml:"calendar_default_view,omitempty"` // "compact" or "expanded"
}

// DataConfig selects where collections come from.
type DataConfig struct {
	// FixturesDir overrides the bundled fixtures with a directory.
	FixturesDir string `yaml:"fixtures_dir,omitempty"`
	// Latency is the artificial fixture delay, e.g. "500ms".
	Latency string `yaml:"latency,omitempty"`
	// BaseURL switches to the HTTP backend.
	BaseURL string `yaml:"base_url,omitempty"`
}

// NotificationsConfig controls desktop notifications.
type NotificationsConfig struct {
	Desktop      bool `yaml:"desktop"`
	DueReminders bool `yaml:"due_reminders"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	// File is the log path. Relative paths live in the config directory.
	// Empty disables logging.
	File string `yaml:"file"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			VimMode:             true,
			DefaultFilter:       string(todo.FilterAll),
			DefaultSort:         string(todo.SortPriority),
			DateFormat:          todo.DefaultDateFormat,
			CalendarDefaultView: "compact",
		},
		Data: DataConfig{
			Latency: "500ms",
		},
		Notifications: NotificationsConfig{
			Desktop:      false,
			DueReminders: true,
		},
		Log: LogConfig{
			File: "debug.log",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", AppName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads and validates the configuration at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes cfg to path.
func SaveFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate rejects settings the app cannot honour.
func (c *Config) Validate() error {
	if _, err := todo.ParseFilterMode(c.UI.DefaultFilter); err != nil {
		return fmt.Errorf("ui.default_filter: %w", err)
	}
	if _, err := todo.ParseSortKey(c.UI.DefaultSort); err != nil {
		return fmt.Errorf("ui.default_sort: %w", err)
	}
	switch c.UI.CalendarDefaultView {
	case "", "compact", "expanded":
	default:
		return fmt.Errorf("ui.calendar_default_view: unknown view %q", c.UI.CalendarDefaultView)
	}
	if _, err := c.Latency(); err != nil {
		return fmt.Errorf("data.latency: %w", err)
	}
	if c.Data.BaseURL != "" && c.Data.FixturesDir != "" {
		return fmt.Errorf("data.base_url and data.fixtures_dir are mutually exclusive")
	}
	return nil
}

// FilterMode returns the configured initial filter.
func (c *Config) FilterMode() todo.FilterMode {
	m, err := todo.ParseFilterMode(c.UI.DefaultFilter)
	if err != nil {
		return todo.FilterAll
	}
	return m
}

// SortKey returns the configured initial sort key.
func (c *Config) SortKey() todo.SortKey {
	k, err := todo.ParseSortKey(c.UI.DefaultSort)
	if err != nil {
		return todo.SortPriority
	}
	return k
}

// DateFormat returns the layout for due-date labels.
func (c *Config) DateFormat() string {
	if c.UI.DateFormat == "" {
		return todo.DefaultDateFormat
	}
	return c.UI.DateFormat
}

// Latency parses the fixture delay. Empty means no delay.
func (c *Config) Latency() (time.Duration, error) {
	if c.Data.Latency == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Data.Latency)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative latency %s", d)
	}
	return d, nil
}

// LogPath resolves the debug log location, or "" when logging is off.
func (c *Config) LogPath() (string, error) {
	if c.Log.File == "" {
		return "", nil
	}
	if filepath.IsAbs(c.Log.File) {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Log.File), nil
}

// UsesRemote reports whether collections come from an HTTP backend.
func (c *Config) UsesRemote() bool {
	return c.Data.BaseURL != ""
}
