// Package cli implements the cupstack command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cupstack/pkg/buildinfo"
	"github.com/matzehuels/cupstack/pkg/cache"
	"github.com/matzehuels/cupstack/pkg/config"
	"github.com/matzehuels/cupstack/pkg/observability"
	"github.com/matzehuels/cupstack/pkg/tower"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "cupstack"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the default config file location.
	ConfigPath string

	// Session identifies this invocation in logs and JSON output.
	Session string

	// levelSet is true when the log level came from the command line and
	// must not be overridden by the config file.
	levelSet bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		Session: uuid.NewString(),
	}
}

// SetLogLevel updates the logger's level. A level set this way wins over
// the level in the config file.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.levelSet = level != LogInfo
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "cupstack simulates the stacking cups puzzle",
		Long:         `cupstack drives a tower of numbered cups and lids through scripts or an interactive session, and renders the result to SVG, PNG, PDF, JSON, DOT or the terminal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default "+defaultConfigHint()+")")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.replCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Settings & Tower Factory
// =============================================================================

// loadConfig reads the config file and applies its log level unless the
// level was set on the command line.
func (c *CLI) loadConfig() (config.Config, error) {
	path, err := c.configPath()
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if !c.levelSet {
		if lvl, err := cfg.LogLevel(); err == nil {
			c.Logger.SetLevel(lvl)
		}
	}
	c.Logger.Debug("Loaded config", "path", path, "session", c.Session)
	return cfg, nil
}

// newTower builds a tower from cfg that reports failures through the logger
// and traces every operation at debug level.
func (c *CLI) newTower(cfg config.Config, canvas tower.Canvas, notifier tower.Notifier) *tower.Tower {
	observability.SetTowerHooks(&logHooks{logger: c.Logger})
	observability.SetScriptHooks(&logHooks{logger: c.Logger})
	if notifier == nil {
		notifier = logNotifier{logger: c.Logger}
	}
	return cfg.NewTower(tower.WithCanvas(canvas), tower.WithNotifier(notifier))
}

// newCache opens the artifact cache, falling back to a null cache when
// caching is disabled or the directory is unusable.
func (c *CLI) newCache(cfg config.Config, noCache bool) cache.Cache {
	if noCache || !cfg.Cache.Enabled {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("Cache disabled", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// configPath returns the --config value or the default location.
func (c *CLI) configPath() (string, error) {
	if c.ConfigPath != "" {
		return c.ConfigPath, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, config.FileName), nil
}

// configDir returns the config directory using XDG standard (~/.config/cupstack/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/cupstack/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

func defaultConfigHint() string {
	return filepath.Join("$XDG_CONFIG_HOME", appName, config.FileName)
}
