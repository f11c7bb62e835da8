package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cupstack/pkg/config"
)

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the cupstack config file",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				printWarning("Config already exists: %s", path)
				printNextStep("Overwrite it with", "cupstack config init --force")
				return nil
			}
			if err := config.Write(path, config.Default()); err != nil {
				return err
			}
			printSuccess("Wrote default config")
			printFile(path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}
			fmt.Println(path)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if raw {
				data, err := config.Encode(cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			printConfig(cfg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "toml", false, "print as TOML")
	return cmd
}

func printConfig(cfg config.Config) {
	printKeyValue("width", strconv.Itoa(cfg.Tower.Width))
	printKeyValue("max height", strconv.Itoa(cfg.Tower.MaxHeight))
	printKeyValue("scale", strconv.Itoa(cfg.Display.Scale))
	printKeyValue("origin", fmt.Sprintf("%d,%d", cfg.Display.OriginX, cfg.Display.OriginY))
	printKeyValue("limit", strconv.Itoa(cfg.Display.Limit))
	printKeyValue("palette", strings.Join(cfg.Style.Palette, ", "))
	printKeyValue("lid color", cfg.Style.LidColor)
	printKeyValue("lidded", cfg.Style.LiddedColor)
	printKeyValue("log level", cfg.Log.Level)
	cacheState := "off"
	if cfg.Cache.Enabled {
		cacheState = "on, ttl " + cfg.Cache.TTL
	}
	printKeyValue("cache", cacheState)
}
