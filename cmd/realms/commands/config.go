package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rayners/fvtt-realms-and-reaches/config"
	"github.com/rayners/fvtt-realms-and-reaches/errors"
)

// ConfigCmd represents the config command group
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage realms configuration",
	Long: `Display and manage the realms configuration.

Configuration sources (in order of precedence):
1. Environment variables (REALMS_* prefix)
2. Explicit config file ($REALMS_CONFIG)
3. Project config (./realms.toml, searching up directories)
4. User config (~/.realms/realms.toml)
5. Default values

Examples:
  realms config show                   # Show current configuration
  realms config show --format json     # Show configuration in JSON format
  realms config init                   # Write the default user config
  realms config path                   # Show which files are consulted
  realms config validate               # Validate current configuration`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the merged realms configuration from all sources",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write the built-in defaults to the user config file
(~/.realms/realms.toml). Refuses to overwrite an existing file unless
--force is given; overwriting keeps rotating backups.`,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where configuration is loaded from",
	RunE:  runConfigPath,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runConfigValidate,
}

var (
	configFormat string
	configForce  bool
)

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configPathCmd)
	ConfigCmd.AddCommand(configValidateCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Println(string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Printf("# realms configuration\n%s", string(data))

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Printf("# realms configuration\n%s", string(data))

	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", configFormat)
	}

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.UserConfigPath()
	if path == "" {
		return errors.New("cannot determine home directory")
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return errors.Newf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := config.Save(config.Default(), path); err != nil {
		return err
	}

	pterm.Success.Printf("Wrote default configuration to %s\n", path)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Println("Configuration sources (later overrides earlier):")
	fmt.Printf("  1. [USER]    %s %s\n", config.UserConfigPath(), existsMarker(config.UserConfigPath()))

	if project := config.ProjectConfigPath(); project != "" {
		fmt.Printf("  2. [PROJECT] %s (present)\n", project)
	} else {
		fmt.Printf("  2. [PROJECT] %s (searching up directories, none found)\n", config.ConfigFileName)
	}

	explicit := os.Getenv(config.EnvConfigPath)
	if explicit == "" {
		fmt.Printf("  3. [ENV]     $%s (unset)\n", config.EnvConfigPath)
	} else {
		fmt.Printf("  3. [ENV]     $%s = %s %s\n", config.EnvConfigPath, explicit, existsMarker(explicit))
	}
	fmt.Println("  4. [ENV]     REALMS_* variables")

	fmt.Printf("\nEffective file: %s\n", config.EffectiveConfigPath())
	return nil
}

func existsMarker(path string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err == nil {
		return "(present)"
	}
	return "(not found)"
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	fmt.Println("✓ Configuration is valid")
	return nil
}
