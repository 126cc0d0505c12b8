// Package config loads runtime settings for the image editor server.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional YAML file named by IMAGE_EDITOR_CONFIG, a .env file in the working
// directory, and IMAGE_EDITOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/image-editor-mcp/internal/editor"
	"github.com/ironsheep/image-editor-mcp/internal/imaging"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable holding the YAML file path.
const EnvConfigFile = "IMAGE_EDITOR_CONFIG"

const envPrefix = "IMAGE_EDITOR_"

// Config is the complete runtime configuration.
type Config struct {
	LogLevel           string `yaml:"log_level"`
	LogFormat          string `yaml:"log_format"` // console | json
	HistoryLimit       int    `yaml:"history_limit"`
	MaxPixels          int    `yaml:"max_pixels"`
	ClearRedoOnEdit    bool   `yaml:"clear_redo_on_edit"`
	ResetHistoryOnLoad bool   `yaml:"reset_history_on_load"`
	StrictNoImage      bool   `yaml:"strict_no_image"`
	PreviewMaxSize     int    `yaml:"preview_max_size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "console",
		ClearRedoOnEdit:    true,
		ResetHistoryOnLoad: true,
		StrictNoImage:      true,
		MaxPixels:          imaging.DefaultMaxPixels,
		PreviewMaxSize:     512,
	}
}

// Load builds the configuration from all sources. A missing .env file is
// ignored; a missing YAML file is an error only when IMAGE_EDITOR_CONFIG is
// set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.mergeEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(envPrefix + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"HISTORY_LIMIT", &c.HistoryLimit},
		{"MAX_PIXELS", &c.MaxPixels},
		{"PREVIEW_MAX_SIZE", &c.PreviewMaxSize},
	}
	for _, f := range ints {
		if v, ok := get(f.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", envPrefix, f.key, err)
			}
			*f.dst = n
		}
	}
	bools := []struct {
		key string
		dst *bool
	}{
		{"CLEAR_REDO_ON_EDIT", &c.ClearRedoOnEdit},
		{"RESET_HISTORY_ON_LOAD", &c.ResetHistoryOnLoad},
		{"STRICT_NO_IMAGE", &c.StrictNoImage},
	}
	for _, f := range bools {
		if v, ok := get(f.key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", envPrefix, f.key, err)
			}
			*f.dst = b
		}
	}
	return nil
}

// Validate rejects values no component can honour.
func (c *Config) Validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must be >= 0, got %d", c.HistoryLimit)
	}
	if c.MaxPixels < 1 {
		return fmt.Errorf("max_pixels must be >= 1, got %d", c.MaxPixels)
	}
	if c.PreviewMaxSize < 0 {
		return fmt.Errorf("preview_max_size must be >= 0, got %d", c.PreviewMaxSize)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json, got %q", c.LogFormat)
	}
	return nil
}

// Console reports whether logs should be human-readable.
func (c *Config) Console() bool { return c.LogFormat != "json" }

// SessionOptions translates the history settings into editor options.
func (c *Config) SessionOptions() []editor.Option {
	return []editor.Option{
		editor.WithHistoryLimit(c.HistoryLimit),
		editor.WithMaxPixels(c.MaxPixels),
		editor.WithClearRedoOnEdit(c.ClearRedoOnEdit),
		editor.WithResetHistoryOnLoad(c.ResetHistoryOnLoad),
		editor.WithStrictNoImage(c.StrictNoImage),
	}
}
