package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rayners/fvtt-realms-and-reaches/errors"
)

// ConfigFileName is the file realms looks for in the project tree and in
// the user config directory.
const ConfigFileName = "realms.toml"

// UserConfigDirName is the per-user config directory under $HOME.
const UserConfigDirName = ".realms"

// EnvConfigPath names an explicit config file, overriding the search.
const EnvConfigPath = "REALMS_CONFIG"

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the realms configuration using Viper. The result is cached;
// call Reset to force a reload.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access.
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration from a provided Viper instance. Tests
// use it to stay isolated from user and project config files.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path, skipping the
// search and the environment.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("REALMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindEnvVars(v)

	SetDefaults(v)

	// Merge config files in precedence order: user -> project -> explicit
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// UserConfigPath returns ~/.realms/realms.toml, or "" when the home
// directory cannot be determined.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDirName, ConfigFileName)
}

// ProjectConfigPath returns the nearest project realms.toml found by
// walking up from the working directory, or "" when there is none.
func ProjectConfigPath() string {
	return findProjectConfig()
}

// findProjectConfig searches for realms.toml by walking up the directory
// tree from the working directory. Returns the first hit or "".
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			break
		}
		dir = parent
	}

	return ""
}

// EffectiveConfigPath returns the config file the search would settle on:
// $REALMS_CONFIG when set, else the nearest project realms.toml, else the
// user config path (which may not exist yet).
func EffectiveConfigPath() string {
	if explicit := os.Getenv(EnvConfigPath); explicit != "" {
		return explicit
	}
	if project := findProjectConfig(); project != "" {
		return project
	}
	return UserConfigPath()
}

// mergeConfigFiles merges configuration files into v, lowest precedence
// first: user config, then the nearest project config, then an explicit
// $REALMS_CONFIG file. Environment variables override all of them.
func mergeConfigFiles(v *viper.Viper) {
	configPaths := []string{}
	if user := UserConfigPath(); user != "" {
		configPaths = append(configPaths, user)
	}
	if project := findProjectConfig(); project != "" {
		configPaths = append(configPaths, project)
	}
	if explicit := os.Getenv(EnvConfigPath); explicit != "" {
		configPaths = append(configPaths, explicit)
	}

	for _, configPath := range configPaths {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}
		tempViper := viper.New()
		tempViper.SetConfigFile(configPath)
		tempViper.SetConfigType("toml")

		if err := tempViper.ReadInConfig(); err == nil {
			for key, value := range tempViper.AllSettings() {
				v.Set(key, value)
			}
		}
	}
}
