package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Backend BackendConfig `toml:"backend"`
	UI      UIConfig      `toml:"ui"`
	Batch   BatchConfig   `toml:"batch"`
	Log     LogConfig     `toml:"log"`
}

// BackendConfig locates the download backend.
type BackendConfig struct {
	URL     string `toml:"url"`
	Timeout string `toml:"timeout"`
}

// UIConfig contains progress indicator settings shared by the TUI and plain output.
type UIConfig struct {
	HideDelay string `toml:"hide_delay"`
}

// BatchConfig paces multi-URL runs.
type BatchConfig struct {
	RateLimit float64 `toml:"rate_limit"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys absent from the file keep the values of [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports the first malformed value as [ErrInvalidConfig].
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Backend.URL) == "" {
		return fmt.Errorf("%w: backend.url is empty", ErrInvalidConfig)
	}
	if _, err := c.RequestTimeout(); err != nil {
		return err
	}
	if _, err := c.HideDelay(); err != nil {
		return err
	}
	if c.Batch.RateLimit < 0 {
		return fmt.Errorf("%w: batch.rate_limit must not be negative", ErrInvalidConfig)
	}
	return nil
}

// RequestTimeout parses backend.timeout. Zero means no client-side timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	return parseDuration("backend.timeout", c.Backend.Timeout)
}

// HideDelay parses ui.hide_delay.
func (c *Config) HideDelay() (time.Duration, error) {
	return parseDuration("ui.hide_delay", c.UI.HideDelay)
}

func parseDuration(key, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, key)
	}
	return d, nil
}
