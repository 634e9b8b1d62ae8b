// Package config loads slpstats settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/pable/go-slp-stats/internal/aggregator"
	"github.com/pable/go-slp-stats/internal/highlight"
	"github.com/pable/go-slp-stats/internal/parser"
	"github.com/pable/go-slp-stats/internal/summary"
)

// Config represents the application configuration.
type Config struct {
	Input      InputConfig      `toml:"input"`
	Output     OutputConfig     `toml:"output"`
	Highlights HighlightsConfig `toml:"highlights"`
	Log        LogConfig        `toml:"log"`
}

// InputConfig says where match records are read from.
type InputConfig struct {
	Dir       string `toml:"dir"`       // directory holding exported records
	Extension string `toml:"extension"` // record file extension
}

// OutputConfig says where results are written.
type OutputConfig struct {
	Path   string `toml:"path"`   // output file
	Format string `toml:"format"` // "json" or "yaml"
}

// HighlightsConfig shapes the recap.
type HighlightsConfig struct {
	Fixed                 []string `toml:"fixed"`
	RandomCount           int      `toml:"random_count"`
	SelfDestructThreshold float64  `toml:"self_destruct_threshold"`
	Seed                  uint64   `toml:"seed"` // 0 = random each run
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	hl := highlight.DefaultOptions()
	return &Config{
		Input: InputConfig{
			Dir:       ".",
			Extension: parser.DefaultExt,
		},
		Output: OutputConfig{
			Path:   "output.json",
			Format: summary.FormatJSON,
		},
		Highlights: HighlightsConfig{
			Fixed:                 hl.Fixed,
			RandomCount:           hl.RandomCount,
			SelfDestructThreshold: hl.SelfDestructThreshold,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the config at path over the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks the configuration for values the pipeline cannot use.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case summary.FormatJSON, summary.FormatYAML:
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}
	if c.Input.Extension == "" {
		return errors.New("input extension must not be empty")
	}
	if c.Highlights.RandomCount < 0 {
		return fmt.Errorf("highlights random_count must be >= 0, got %d", c.Highlights.RandomCount)
	}
	for _, id := range c.Highlights.Fixed {
		if _, ok := aggregator.Lookup(id); !ok {
			return fmt.Errorf("highlights: unknown stat %q", id)
		}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// HighlightOptions converts the highlights section.
func (c *Config) HighlightOptions() highlight.Options {
	return highlight.Options{
		Fixed:                 c.Highlights.Fixed,
		RandomCount:           c.Highlights.RandomCount,
		SelfDestructThreshold: c.Highlights.SelfDestructThreshold,
	}
}
