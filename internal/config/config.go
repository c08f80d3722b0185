package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPath is read when no config file is named; it may be absent.
const DefaultPath = "dcf77.toml"

type Config struct {
	Language string `toml:"language"`
	Pivot    int    `toml:"pivot"`
	Format   string `toml:"format"`
	LogLevel string `toml:"log_level"`
}

var formats = []string{"text", "yaml", "json"}

var levels = []string{"trace", "debug", "info", "warn", "error"}

func Default() Config {
	return Config{
		Language: "en",
		Pivot:    2000,
		Format:   "text",
		LogLevel: "info",
	}
}

// Load reads path over the defaults. An empty path reads DefaultPath if it
// exists.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if !md.IsDefined("pivot") {
		cfg.Pivot = Default().Pivot
	}
	applyDefaults(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if strings.TrimSpace(cfg.Language) == "" {
		cfg.Language = def.Language
	}
	if strings.TrimSpace(cfg.Format) == "" {
		cfg.Format = def.Format
	}
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = def.LogLevel
	}
	Normalize(cfg)
}

// Normalize folds the case of the enumerated settings so that file values
// and command line overrides compare alike.
func Normalize(cfg *Config) {
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
}

func Validate(cfg Config) error {
	if !contains(formats, cfg.Format) {
		return fmt.Errorf("format must be one of %s, got %q", strings.Join(formats, ", "), cfg.Format)
	}
	if !contains(levels, cfg.LogLevel) {
		return fmt.Errorf("log_level must be one of %s, got %q", strings.Join(levels, ", "), cfg.LogLevel)
	}
	if cfg.Pivot < 0 {
		return fmt.Errorf("pivot must not be negative, got %d", cfg.Pivot)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
