package config

import (
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cupstack/pkg/errors"
	"github.com/matzehuels/cupstack/pkg/tower"
)

// Validate checks every section and returns the first problem found.
func (c Config) Validate() error {
	if err := errors.ValidateBounds(c.Tower.Width, c.Tower.MaxHeight); err != nil {
		return err
	}
	if c.Display.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "display scale must be positive, got %d", c.Display.Scale)
	}
	if c.Display.Limit <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "display limit must be positive, got %d", c.Display.Limit)
	}
	if len(c.Style.Palette) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "style palette cannot be empty")
	}
	colors := append(slices.Clone(c.Style.Palette), c.Style.LidColor, c.Style.LiddedColor)
	for _, color := range colors {
		if err := errors.ValidateColor(color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "style")
		}
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, errors.Wrap(errors.ErrCodeInvalidConfig, err, "log level")
	}
	return lvl, nil
}

// CacheTTL parses the configured cache lifetime. An empty value means entries
// never expire.
func (c Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "cache ttl %q is not a valid duration", c.Cache.TTL)
	}
	return d, nil
}

// Geometry returns the display mapping.
func (c Config) Geometry() tower.Geometry {
	return tower.Geometry{
		Scale:        c.Display.Scale,
		OriginX:      c.Display.OriginX,
		OriginY:      c.Display.OriginY,
		DisplayLimit: c.Display.Limit,
	}
}

// TowerOptions returns the tower options that apply these settings. Canvas
// and notifier are left to the caller.
func (c Config) TowerOptions() []tower.Option {
	return []tower.Option{
		tower.WithGeometry(c.Geometry()),
		tower.WithPalette(c.Style.Palette),
		tower.WithLidColor(c.Style.LidColor),
		tower.WithLiddedColor(c.Style.LiddedColor),
	}
}

// NewTower builds an empty tower with the configured bounds and options.
func (c Config) NewTower(opts ...tower.Option) *tower.Tower {
	return tower.New(c.Tower.Width, c.Tower.MaxHeight, append(c.TowerOptions(), opts...)...)
}
