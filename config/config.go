// Package config loads and persists the realms configuration.
//
// Configuration is merged from TOML files and REALMS_* environment
// variables via Viper. File precedence (lowest to highest): user config in
// ~/.realms/realms.toml, a project realms.toml found by walking up from the
// working directory, then an explicit file named by $REALMS_CONFIG.
// Environment variables override all files.
package config

import (
	"fmt"

	"github.com/rayners/fvtt-realms-and-reaches/realm/codec"
)

// Config is the root realms configuration.
type Config struct {
	Author     string          `mapstructure:"author" toml:"author" yaml:"author"` // default author stamped on created regions and exports
	Log        LogConfig       `mapstructure:"log" toml:"log" yaml:"log"`
	Import     ImportConfig    `mapstructure:"import" toml:"import" yaml:"import"`
	Namespaces NamespaceConfig `mapstructure:"namespaces" toml:"namespaces" yaml:"namespaces"`
}

// LogConfig configures log output.
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" yaml:"json"`                // structured JSON instead of console output
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" yaml:"verbosity"` // baseline verbosity, 0..4 (CLI -v flags add to it)
}

// ImportConfig configures document import behavior.
type ImportConfig struct {
	DefaultPolicy string `mapstructure:"default_policy" toml:"default_policy" yaml:"default_policy"` // skip, merge, or replace
}

// NamespaceConfig configures extra tag namespaces.
type NamespaceConfig struct {
	Packs []string `mapstructure:"packs" toml:"packs" yaml:"packs"` // paths to namespace pack TOML files
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// ImportPolicy returns the configured default import policy, falling back to
// the codec default when the configured string does not parse. Validate
// reports the parse error; this accessor never fails.
func (c *Config) ImportPolicy() codec.Policy {
	p, err := codec.ParsePolicy(c.Import.DefaultPolicy)
	if err != nil {
		return codec.DefaultPolicy
	}
	return p
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Author: %s, Log: {JSON: %t, Verbosity: %d}, Import: {DefaultPolicy: %s}, Packs: %d}",
		c.Author, c.Log.JSON, c.Log.Verbosity, c.Import.DefaultPolicy, len(c.Namespaces.Packs))
}
