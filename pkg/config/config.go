// Package config loads cupstack settings from a TOML file.
//
// A missing file is not an error: [Load] falls back to [Default], and keys
// absent from the file keep their default values.
//
//	[tower]
//	width = 10
//	max_height = 20
//
//	[display]
//	scale = 10
//	origin_x = 50
//	origin_y = 50
//	limit = 800
//
//	[style]
//	palette = ["red", "blue", "green", "yellow", "magenta"]
//	lid_color = "black"
//	lidded_color = "black"
//
//	[log]
//	level = "info"
//
//	[cache]
//	enabled = true
//	ttl = "168h"
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cupstack/pkg/errors"
	"github.com/matzehuels/cupstack/pkg/tower"
)

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Config is the full settings tree.
type Config struct {
	Tower   TowerConfig   `toml:"tower"`
	Display DisplayConfig `toml:"display"`
	Style   StyleConfig   `toml:"style"`
	Log     LogConfig     `toml:"log"`
	Cache   CacheConfig   `toml:"cache"`
}

// TowerConfig holds the tower bounds, in tower units.
type TowerConfig struct {
	Width     int `toml:"width"`
	MaxHeight int `toml:"max_height"`
}

// DisplayConfig maps tower units onto pixels.
type DisplayConfig struct {
	Scale   int `toml:"scale"`
	OriginX int `toml:"origin_x"`
	OriginY int `toml:"origin_y"`
	Limit   int `toml:"limit"`
}

// StyleConfig holds the colors used for new cups and lids.
type StyleConfig struct {
	Palette     []string `toml:"palette"`
	LidColor    string   `toml:"lid_color"`
	LiddedColor string   `toml:"lidded_color"`
}

// LogConfig selects the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `toml:"level"`
}

// CacheConfig controls the rendered-artifact cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	TTL     string `toml:"ttl"`
}

// Default returns the built-in settings.
func Default() Config {
	g := tower.DefaultGeometry()
	return Config{
		Tower: TowerConfig{
			Width:     tower.DefaultWidth,
			MaxHeight: tower.DefaultMaxHeight,
		},
		Display: DisplayConfig{
			Scale:   g.Scale,
			OriginX: g.OriginX,
			OriginY: g.OriginY,
			Limit:   g.DisplayLimit,
		},
		Style: StyleConfig{
			Palette:     append([]string(nil), tower.DefaultPalette...),
			LidColor:    tower.DefaultLidColor,
			LiddedColor: tower.DefaultLiddedColor,
		},
		Log:   LogConfig{Level: "info"},
		Cache: CacheConfig{Enabled: true, TTL: "168h"},
	}
}

// Load reads the file at path on top of the defaults and validates the
// result. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Decode parses TOML into cfg, leaving unset keys untouched. Unknown keys are
// rejected so that typos do not pass silently.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return buf.Bytes(), nil
}

// Write stores cfg at path, creating parent directories.
func Write(path string, cfg Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create config dir")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write config %s", path)
	}
	return nil
}
